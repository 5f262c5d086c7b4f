package parser

import (
	"strings"
	"testing"

	"github.com/lumelang/lume/internal/ast"
)

// parseOne 解析源代码并返回唯一的顶层声明
func parseOne(t *testing.T, input string) ast.Declaration {
	t.Helper()

	file, err := Parse(input, "test.lume")
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	if len(file.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(file.Declarations))
	}
	return file.Declarations[0]
}

// parseFail 解析必须失败，返回错误消息
func parseFail(t *testing.T, input string) string {
	t.Helper()

	_, err := Parse(input, "test.lume")
	if err == nil {
		t.Fatalf("expected parse error, got none")
	}
	return err.Error()
}

func expectContains(t *testing.T, msg, want string) {
	t.Helper()
	if !strings.Contains(msg, want) {
		t.Errorf("error %q does not contain %q", msg, want)
	}
}

// ============================================================================
// 类成员
// ============================================================================

func TestParseClassMembers(t *testing.T) {
	input := `
class User {
	const VERSION = 1;
	public const ROLE = "admin";

	private int $id = 0;
	protected readonly string $name;
	public static ?User $instance = null;

	public function __construct(int $id) {
		$this->id = $id;
	}

	public static function create(): User {
		return new User(0);
	}
}`

	d := parseOne(t, input)
	decl, ok := d.(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected ClassDecl, got %T", d)
	}

	if decl.Name.Name != "User" {
		t.Errorf("expected class User, got %s", decl.Name.Name)
	}
	if len(decl.Members) != 7 {
		t.Fatalf("expected 7 members, got %d", len(decl.Members))
	}

	if _, ok := decl.Members[0].(*ast.ClassConstDecl); !ok {
		t.Errorf("member 0: expected ClassConstDecl, got %T", decl.Members[0])
	}

	prop, ok := decl.Members[3].(*ast.PropertyDecl)
	if !ok {
		t.Fatalf("member 3: expected PropertyDecl, got %T", decl.Members[3])
	}
	if !prop.Modifiers.HasReadonly() {
		t.Errorf("expected readonly property")
	}
	if prop.Modifiers.VisibilityKind() != ast.VisibilityProtected {
		t.Errorf("expected protected, got %v", prop.Modifiers.VisibilityKind())
	}

	method, ok := decl.Members[5].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("member 5: expected MethodDecl, got %T", decl.Members[5])
	}
	if method.Name.Name != "__construct" {
		t.Errorf("expected __construct, got %s", method.Name.Name)
	}
	if method.Body == nil {
		t.Errorf("expected method body")
	}
}

func TestParseClassHeader(t *testing.T) {
	input := `
abstract class Repository extends Base implements Countable, Stringable {
}`

	decl := parseOne(t, input).(*ast.ClassDecl)

	if !decl.Modifiers.HasAbstract() {
		t.Errorf("expected abstract class")
	}
	if decl.Extends == nil || decl.Extends.Value != "Base" {
		t.Errorf("expected extends Base")
	}
	if len(decl.Implements) != 2 {
		t.Errorf("expected 2 interfaces, got %d", len(decl.Implements))
	}
}

func TestParseAbstractMethod(t *testing.T) {
	input := `
abstract class Shape {
	abstract public function area(): float;
}`

	decl := parseOne(t, input).(*ast.ClassDecl)
	method := decl.Members[0].(*ast.MethodDecl)

	if !method.Modifiers.HasAbstract() {
		t.Errorf("expected abstract method")
	}
	if method.Body != nil {
		t.Errorf("abstract method must not have a body")
	}
}

func TestParseConstructorPromotion(t *testing.T) {
	input := `
class Point {
	public function __construct(
		private readonly int $x,
		private readonly int $y,
		int $z = 0,
	) {}
}`

	decl := parseOne(t, input).(*ast.ClassDecl)
	method := decl.Members[0].(*ast.MethodDecl)

	if len(method.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(method.Params))
	}
	if method.Params[0].Promoted.IsEmpty() {
		t.Errorf("expected promoted first param")
	}
	if !method.Params[0].Promoted.HasReadonly() {
		t.Errorf("expected readonly promotion")
	}
	if method.Params[2].Promoted != nil {
		t.Errorf("expected plain third param")
	}
	if method.Params[2].Default == nil {
		t.Errorf("expected default value on third param")
	}
}

func TestPromotionOutsideConstructor(t *testing.T) {
	input := `
class Point {
	public function move(private int $dx) {}
}`

	msg := parseFail(t, input)
	expectContains(t, msg, "cannot use `private` as a parameter modifier")
}

// ============================================================================
// 属性校验
// ============================================================================

func TestPropertyValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"static readonly",
			`class A { public static readonly int $x; }`,
			"static property `A::x` cannot be readonly",
		},
		{
			"readonly with default",
			`class A { public readonly int $x = 1; }`,
			"readonly property `A::x` cannot have a default value",
		},
		{
			"callable type",
			`class A { public callable $fn; }`,
			"property `A::fn` cannot have type `callable`",
		},
		{
			"callable inside union",
			`class A { public callable|int $fn; }`,
			"property `A::fn` cannot have type `callable|int`",
		},
		{
			"never type",
			`class A { public never $x; }`,
			"property `A::x` cannot have type `never`",
		},
		{
			"void type",
			`class A { public void $x; }`,
			"property `A::x` cannot have type `void`",
		},
		{
			"readonly without type",
			`class A { public readonly $x; }`,
			"readonly property `A::x` must have a type",
		},
		{
			"static readonly without terminator",
			`class A { readonly static $x }`,
			"static property `A::x` cannot be readonly",
		},
		{
			"callable type without terminator",
			`class A { public callable $fn }`,
			"property `A::fn` cannot have type `callable`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseFail(t, tt.input)
			expectContains(t, msg, tt.want)
		})
	}
}

func TestAnonymousClassPropertyError(t *testing.T) {
	input := `$x = new class { public readonly $broken; };`

	msg := parseFail(t, input)
	expectContains(t, msg, "readonly property `class@anonymous::broken` must have a type")
}

func TestNullableReadonlyProperty(t *testing.T) {
	input := `class A { public readonly ?string $name; }`

	decl := parseOne(t, input).(*ast.ClassDecl)
	prop := decl.Members[0].(*ast.PropertyDecl)

	if _, ok := prop.Type.(*ast.NullableType); !ok {
		t.Errorf("expected NullableType, got %T", prop.Type)
	}
}

// ============================================================================
// 接口
// ============================================================================

func TestParseInterfaceMembers(t *testing.T) {
	input := `
interface Collection extends Countable, Traversable {
	const EMPTY = 0;
	public function count(): int;
	public static function of(): Collection;
}`

	decl := parseOne(t, input).(*ast.InterfaceDecl)

	if len(decl.Extends) != 2 {
		t.Errorf("expected 2 parent interfaces, got %d", len(decl.Extends))
	}
	if len(decl.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(decl.Members))
	}

	method := decl.Members[1].(*ast.MethodDecl)
	if method.Body != nil {
		t.Errorf("interface method must not have a body")
	}
}

func TestInterfaceMethodWithBody(t *testing.T) {
	input := `interface I { public function f() { return 1; } }`

	msg := parseFail(t, input)
	expectContains(t, msg, "unexpected token `{`")
}

func TestInterfaceRejectsModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			`interface I { private function f(); }`,
			"cannot use `private` as a interface method modifier",
		},
		{
			`interface I { abstract function f(); }`,
			"cannot use `abstract` as a interface method modifier",
		},
		{
			`interface I { protected const X = 1; }`,
			"cannot use `protected` as a interface constant modifier",
		},
	}

	for _, tt := range tests {
		msg := parseFail(t, tt.input)
		expectContains(t, msg, tt.want)
	}
}

func TestInterfaceRejectsProperty(t *testing.T) {
	input := `interface I { public int $x; }`

	msg := parseFail(t, input)
	expectContains(t, msg, "expected one of {`function`, `const`}")
}

// ============================================================================
// 枚举
// ============================================================================

func TestParseUnitEnum(t *testing.T) {
	input := `
enum Direction {
	case North;
	case South;

	const DEFAULT = "north";

	public function opposite(): Direction {
		return self::North;
	}
}`

	decl := parseOne(t, input).(*ast.EnumDecl)

	if decl.IsBacked() {
		t.Errorf("expected unit enum")
	}
	if len(decl.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(decl.Members))
	}

	c := decl.Members[0].(*ast.EnumCase)
	if c.Name.Name != "North" {
		t.Errorf("expected case North, got %s", c.Name.Name)
	}
	if c.Value != nil {
		t.Errorf("unit enum case must not carry a value")
	}
}

func TestParseBackedEnum(t *testing.T) {
	input := `
enum Suit: string implements HasColor {
	case Hearts = 'H';
	case Spades = 'S';
}`

	decl := parseOne(t, input).(*ast.EnumDecl)

	if !decl.IsBacked() {
		t.Fatalf("expected backed enum")
	}
	if decl.Backing.String() != "string" {
		t.Errorf("expected string backing, got %s", decl.Backing.String())
	}
	if len(decl.Implements) != 1 {
		t.Errorf("expected 1 interface, got %d", len(decl.Implements))
	}

	c := decl.Members[0].(*ast.EnumCase)
	if c.Value == nil {
		t.Fatalf("backed enum case must carry a value")
	}
	lit, ok := c.Value.(*ast.StringLit)
	if !ok {
		t.Fatalf("expected StringLit value, got %T", c.Value)
	}
	if lit.Value != "H" {
		t.Errorf("expected value H, got %s", lit.Value)
	}
}

func TestEnumCasePolicy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"unit enum with value",
			`enum Direction { case North = 1; }`,
			"case `North` of unit enum `Direction` must not have a value",
		},
		{
			"backed enum without value",
			`enum Suit: string { case Hearts; }`,
			"case `Hearts` of backed enum `Suit` must have a value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseFail(t, tt.input)
			expectContains(t, msg, tt.want)
		})
	}
}

func TestBackedEnumCaseMissingEquals(t *testing.T) {
	// 缺值错误只在名称后直接收束时触发，其他 token 按缺 `=` 报
	input := `enum Suit: string { case Hearts "H"; }`

	msg := parseFail(t, input)
	expectContains(t, msg, "expected one of {`=`}")
}

func TestEnumCaseKeywordName(t *testing.T) {
	input := `enum Token { case function; case echo; }`

	decl := parseOne(t, input).(*ast.EnumDecl)

	first := decl.Members[0].(*ast.EnumCase)
	if first.Name.Name != "function" {
		t.Errorf("expected case function, got %s", first.Name.Name)
	}
	second := decl.Members[1].(*ast.EnumCase)
	if second.Name.Name != "echo" {
		t.Errorf("expected case echo, got %s", second.Name.Name)
	}
}

func TestEnumRejectsAbstractMethod(t *testing.T) {
	input := `enum E { abstract public function f(); }`

	msg := parseFail(t, input)
	expectContains(t, msg, "cannot use `abstract` as a enum method modifier")
}

func TestEnumRejectsProperty(t *testing.T) {
	input := `enum E { public int $x; }`

	msg := parseFail(t, input)
	expectContains(t, msg, "expected one of {`case`, `function`, `const`}")
}

// ============================================================================
// trait 导入
// ============================================================================

func TestParseTraitUse(t *testing.T) {
	input := `
class Service {
	use Loggable;
	use Cacheable, Serializable;
}`

	decl := parseOne(t, input).(*ast.ClassDecl)

	first := decl.Members[0].(*ast.TraitUseStmt)
	if len(first.Traits) != 1 || first.Traits[0].Value != "Loggable" {
		t.Errorf("expected use Loggable")
	}

	second := decl.Members[1].(*ast.TraitUseStmt)
	if len(second.Traits) != 2 {
		t.Errorf("expected 2 traits, got %d", len(second.Traits))
	}
}

func TestTraitUseTrailingComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"before semicolon", `class A { use T1, T2,; }`},
		{"before brace", `class A { use T1, { } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseFail(t, tt.input)
			expectContains(t, msg, "unexpected token `,`")
		})
	}
}

func TestParseTraitAdaptations(t *testing.T) {
	input := `
class Mixed {
	use A, B {
		A::hello insteadof B;
		B::hello as privateHello;
		sayHi as protected;
		A::bye as private farewell;
	}
}`

	decl := parseOne(t, input).(*ast.ClassDecl)
	use := decl.Members[0].(*ast.TraitUseStmt)

	if len(use.Adaptations) != 4 {
		t.Fatalf("expected 4 adaptations, got %d", len(use.Adaptations))
	}

	prec, ok := use.Adaptations[0].(*ast.TraitPrecedence)
	if !ok {
		t.Fatalf("adaptation 0: expected TraitPrecedence, got %T", use.Adaptations[0])
	}
	if prec.Trait.Value != "A" || prec.Method.Name != "hello" {
		t.Errorf("expected A::hello, got %s::%s", prec.Trait.Value, prec.Method.Name)
	}
	if len(prec.InsteadOf) != 1 || prec.InsteadOf[0].Value != "B" {
		t.Errorf("expected insteadof B")
	}

	alias, ok := use.Adaptations[1].(*ast.TraitAlias)
	if !ok {
		t.Fatalf("adaptation 1: expected TraitAlias, got %T", use.Adaptations[1])
	}
	if alias.Alias.Name != "privateHello" {
		t.Errorf("expected alias privateHello, got %s", alias.Alias.Name)
	}
	if alias.Visibility != nil {
		t.Errorf("expected no visibility change")
	}

	visibility, ok := use.Adaptations[2].(*ast.TraitVisibilityChange)
	if !ok {
		t.Fatalf("adaptation 2: expected TraitVisibilityChange, got %T", use.Adaptations[2])
	}
	if visibility.Trait != nil {
		t.Errorf("expected unqualified method")
	}
	if visibility.Visibility.Kind != ast.VisibilityProtected {
		t.Errorf("expected protected")
	}

	both, ok := use.Adaptations[3].(*ast.TraitAlias)
	if !ok {
		t.Fatalf("adaptation 3: expected TraitAlias, got %T", use.Adaptations[3])
	}
	if both.Visibility == nil || both.Visibility.Kind != ast.VisibilityPrivate {
		t.Errorf("expected private visibility on alias")
	}
	if both.Alias.Name != "farewell" {
		t.Errorf("expected alias farewell, got %s", both.Alias.Name)
	}
}

func TestTraitPrecedenceTrailingComma(t *testing.T) {
	input := `
class Mixed {
	use A, B, C {
		A::hello insteadof B, C,;
	}
}`

	msg := parseFail(t, input)
	expectContains(t, msg, "unexpected token `,`")
}

func TestTraitDeclaration(t *testing.T) {
	input := `
trait Loggable {
	protected array $logs = [];

	public function log(string $message) {
		$this->logs[] = $message;
	}
}`

	decl := parseOne(t, input).(*ast.TraitDecl)

	if decl.Name.Name != "Loggable" {
		t.Errorf("expected trait Loggable, got %s", decl.Name.Name)
	}
	if len(decl.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(decl.Members))
	}
}

// ============================================================================
// 属性标注
// ============================================================================

func TestParseAttributes(t *testing.T) {
	input := `
#[Entity]
#[Table("users", 64)]
class User {
	#[Column]
	public int $id = 0;

	#[Deprecated, Internal]
	public function legacy() {}
}`

	decl := parseOne(t, input).(*ast.ClassDecl)

	if len(decl.Attributes) != 2 {
		t.Fatalf("expected 2 attribute groups, got %d", len(decl.Attributes))
	}
	if decl.Attributes[0].Attrs[0].Name.Value != "Entity" {
		t.Errorf("expected Entity attribute")
	}

	prop := decl.Members[0].(*ast.PropertyDecl)
	if len(prop.Attributes) != 1 {
		t.Errorf("expected 1 attribute group on property, got %d", len(prop.Attributes))
	}

	method := decl.Members[1].(*ast.MethodDecl)
	if len(method.Attributes) != 1 {
		t.Fatalf("expected 1 attribute group on method, got %d", len(method.Attributes))
	}
	if len(method.Attributes[0].Attrs) != 2 {
		t.Errorf("expected 2 attributes in group, got %d", len(method.Attributes[0].Attrs))
	}
}

func TestAttributesForceMethodMember(t *testing.T) {
	// 带属性标注的成员只能是方法，不会再按 token 路由到
	// case/const/use 分支
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"enum case",
			`enum Level { #[Label("low")] case Low; }`,
			"unexpected token `case`, expected one of {`function`}",
		},
		{
			"interface constant",
			`interface I { #[A] const X = 1; }`,
			"unexpected token `const`, expected one of {`function`}",
		},
		{
			"enum constant",
			`enum Level { #[A] const X = 1; }`,
			"unexpected token `const`, expected one of {`function`}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseFail(t, tt.input)
			expectContains(t, msg, tt.want)
		})
	}
}

func TestAttributesOnInterfaceMethod(t *testing.T) {
	input := `
interface Handler {
	#[Internal]
	public function handle(): int;
}`

	decl := parseOne(t, input).(*ast.InterfaceDecl)
	method := decl.Members[0].(*ast.MethodDecl)

	if len(method.Attributes) != 1 {
		t.Errorf("expected 1 attribute group on method, got %d", len(method.Attributes))
	}
}

func TestAttributesOnEnumMethod(t *testing.T) {
	input := `
enum Level {
	case Low;

	#[Deprecated]
	public function label(): string {
		return "low";
	}
}`

	decl := parseOne(t, input).(*ast.EnumDecl)
	method := decl.Members[1].(*ast.MethodDecl)

	if len(method.Attributes) != 1 {
		t.Errorf("expected 1 attribute group on method, got %d", len(method.Attributes))
	}
}

func TestAttributeBeforeTraitUse(t *testing.T) {
	// 属性标注不属于 use，带属性时落入属性分支并在 `use` 处报错，
	// 不会留到下一个成员
	input := `class C { #[A] use T; public string $n; }`

	msg := parseFail(t, input)
	expectContains(t, msg, "expected variable")
}

func TestAttributeBeforeClassConstant(t *testing.T) {
	input := `class C { #[A] const X = 1; }`

	msg := parseFail(t, input)
	expectContains(t, msg, "expected variable")
}
