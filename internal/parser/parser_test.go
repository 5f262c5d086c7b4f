package parser

import (
	"testing"

	"github.com/lumelang/lume/internal/ast"
)

func TestParseNamespaceAndUses(t *testing.T) {
	input := `
namespace App\Http;

use App\Models\User;
use App\Support\Collection as Coll;

class Controller {}
`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	if file.Namespace == nil || file.Namespace.Name.Value != `App\Http` {
		t.Errorf("expected namespace App\\Http")
	}
	if len(file.Uses) != 2 {
		t.Fatalf("expected 2 uses, got %d", len(file.Uses))
	}
	if file.Uses[0].Name.Value != `App\Models\User` {
		t.Errorf("expected use App\\Models\\User, got %s", file.Uses[0].Name.Value)
	}
	if file.Uses[1].Alias == nil || file.Uses[1].Alias.Name != "Coll" {
		t.Errorf("expected alias Coll")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	input := `
function add(int $a, int $b = 0): int {
	return $a + $b;
}`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	decl, ok := file.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected FunctionDecl, got %T", file.Declarations[0])
	}
	if decl.Name.Name != "add" {
		t.Errorf("expected function add, got %s", decl.Name.Name)
	}
	if len(decl.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(decl.Params))
	}
	if decl.ReturnType == nil || decl.ReturnType.String() != "int" {
		t.Errorf("expected return type int")
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"if elseif else", `if ($a) { } elseif ($b) { } else { }`},
		{"while", `while ($i < 10) { $i = $i + 1; }`},
		{"do while", `do { $i = $i + 1; } while ($i < 10);`},
		{"for", `for ($i = 0; $i < 10; $i++) { }`},
		{"foreach", `foreach ($items as $item) { echo $item; }`},
		{"foreach with key", `foreach ($items as $k => $v) { }`},
		{"try catch finally", `try { f(); } catch (A | B $e) { } finally { }`},
		{"throw", `throw new Error("boom");`},
		{"echo multiple", `echo $a, $b;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(tt.input, "test.lume")
			if err != nil {
				t.Fatalf("parser error: %v", err)
			}
			if len(file.Statements) != 1 {
				t.Errorf("expected 1 statement, got %d", len(file.Statements))
			}
		})
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`$a = 1 + 2 * 3;`, "($a = (1 + (2 * 3)))"},
		{`$a = (1 + 2) * 3;`, "($a = ((1 + 2) * 3))"},
		{`$x = $a ?? $b ?? $c;`, "($x = ($a ?? ($b ?? $c)))"},
		{`$x = $a ?: $b;`, "($x = ($a ?: $b))"},
		{`$x = $ok ? 1 : 2;`, "($x = ($ok ? 1 : 2))"},
		{`$x = "a" . "b";`, `($x = ("a" . "b"))`},
		{`$x = $a <=> $b;`, "($x = ($a <=> $b))"},
		{`$x = !$a && $b;`, "($x = ((!$a) && $b))"},
		{`$x = $a instanceof Foo;`, "($x = ($a instanceof Foo))"},
		{`$x = $obj->name;`, "($x = $obj->name)"},
		{`$x = $obj?->name;`, "($x = $obj?->name)"},
		{`$x = Foo::BAR;`, "($x = Foo::BAR)"},
		{`$x = self::make();`, "($x = self::make())"},
	}

	for _, tt := range tests {
		file, err := Parse(tt.input, "test.lume")
		if err != nil {
			t.Errorf("%s: parser error: %v", tt.input, err)
			continue
		}

		stmt, ok := file.Statements[0].(*ast.ExpressionStmt)
		if !ok {
			t.Errorf("%s: expected ExpressionStmt, got %T", tt.input, file.Statements[0])
			continue
		}
		if got := stmt.Expr.String(); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestParseNewExpressions(t *testing.T) {
	input := `$u = new User(1, "ok");`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	assign := file.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	newExpr, ok := assign.Value.(*ast.NewExpr)
	if !ok {
		t.Fatalf("expected NewExpr, got %T", assign.Value)
	}
	if !newExpr.HasArgs || len(newExpr.Args) != 2 {
		t.Errorf("expected 2 constructor args")
	}
}

func TestParseAnonymousClass(t *testing.T) {
	input := `
$handler = new class extends Base implements Handler {
	public function handle() { return 1; }
};`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	assign := file.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	newExpr := assign.Value.(*ast.NewExpr)
	anon, ok := newExpr.Class.(*ast.AnonymousClassExpr)
	if !ok {
		t.Fatalf("expected AnonymousClassExpr, got %T", newExpr.Class)
	}
	if anon.Extends == nil || anon.Extends.Value != "Base" {
		t.Errorf("expected extends Base")
	}
	if len(anon.Members) != 1 {
		t.Errorf("expected 1 member, got %d", len(anon.Members))
	}
}

func TestParseClosures(t *testing.T) {
	input := `$f = function (int $x) use ($base, &$total): int { return $x + $base; };`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	assign := file.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	closure, ok := assign.Value.(*ast.ClosureExpr)
	if !ok {
		t.Fatalf("expected ClosureExpr, got %T", assign.Value)
	}
	if len(closure.Uses) != 2 {
		t.Fatalf("expected 2 captures, got %d", len(closure.Uses))
	}
	if closure.Uses[1].Var.Name != "total" || !closure.Uses[1].ByRef {
		t.Errorf("expected &$total capture")
	}
}

func TestParseArrowFunction(t *testing.T) {
	input := `$f = fn (int $x): int => $x * 2;`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	assign := file.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	arrow, ok := assign.Value.(*ast.ArrowFnExpr)
	if !ok {
		t.Fatalf("expected ArrowFnExpr, got %T", assign.Value)
	}
	if arrow.Expr == nil {
		t.Errorf("expected arrow body expression")
	}
}

func TestParseArrayLiterals(t *testing.T) {
	input := `$a = [1, "k" => 2, ...$rest];`

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}

	assign := file.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	arr, ok := assign.Value.(*ast.ArrayLit)
	if !ok {
		t.Fatalf("expected ArrayLit, got %T", assign.Value)
	}
	if len(arr.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(arr.Entries))
	}
	if arr.Entries[1].Key == nil {
		t.Errorf("expected keyed second entry")
	}
	if !arr.Entries[2].Spread {
		t.Errorf("expected spread third entry")
	}
}

func TestParseTypeAnnotations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`class A { public int $x = 0; }`, "int"},
		{`class A { public ?string $x = null; }`, "?string"},
		{`class A { public int|string $x = 0; }`, "int|string"},
		{`class A { public Countable&Stringable $x; }`, "Countable&Stringable"},
		{`class A { public \App\Models\User $x; }`, `\App\Models\User`},
	}

	for _, tt := range tests {
		file, err := Parse(tt.input, "test.lume")
		if err != nil {
			t.Errorf("%s: parser error: %v", tt.input, err)
			continue
		}

		decl := file.Declarations[0].(*ast.ClassDecl)
		prop := decl.Members[0].(*ast.PropertyDecl)
		if got := prop.Type.String(); got != tt.expected {
			t.Errorf("%s: expected type %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestFailFastReturnsFirstError(t *testing.T) {
	// 第一处错误之后还有第二处，快速失败只报第一处
	input := `
class A { public readonly $x; }
class B { public never $y; }
`

	_, err := Parse(input, "test.lume")
	if err == nil {
		t.Fatalf("expected parse error")
	}

	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Pos.Line != 2 {
		t.Errorf("expected error on line 2, got line %d", parseErr.Pos.Line)
	}
}

func TestErrorPositions(t *testing.T) {
	input := `class A { use T1, T2,; }`

	_, err := Parse(input, "test.lume")
	if err == nil {
		t.Fatalf("expected parse error")
	}

	parseErr := err.(*ParseError)
	if parseErr.Pos.Line != 1 {
		t.Errorf("expected line 1, got %d", parseErr.Pos.Line)
	}
	// 错误应指向多余的逗号
	if parseErr.Pos.Column != 21 {
		t.Errorf("expected column 21, got %d", parseErr.Pos.Column)
	}
}
