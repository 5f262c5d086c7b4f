package lexer

import (
	"testing"

	"github.com/lumelang/lume/internal/token"
)

// scan 扫描源码并去掉末尾的 EOF
func scan(t *testing.T, source string) []token.Token {
	t.Helper()
	l := New(source, "test.lume")
	tokens := l.ScanTokens()
	if l.HasErrors() {
		t.Fatalf("lexer errors: %v", l.Errors())
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		t.Fatalf("expected EOF as last token")
	}
	return tokens[:len(tokens)-1]
}

func TestScanKeywordsAndIdents(t *testing.T) {
	tokens := scan(t, `class User extends Base implements Printable`)

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.CLASS, "class"},
		{token.IDENT, "User"},
		{token.EXTENDS, "extends"},
		{token.IDENT, "Base"},
		{token.IMPLEMENTS, "implements"},
		{token.IDENT, "Printable"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tokens[i].Type)
		}
		if tokens[i].Literal != exp.literal {
			t.Errorf("token %d: expected literal %q, got %q", i, exp.literal, tokens[i].Literal)
		}
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		input string
		typ   token.TokenType
	}{
		{"+", token.PLUS},
		{"+=", token.PLUS_ASSIGN},
		{"++", token.INCREMENT},
		{"-", token.MINUS},
		{"->", token.ARROW},
		{"--", token.DECREMENT},
		{"*", token.STAR},
		{"**", token.POW},
		{"=", token.ASSIGN},
		{"==", token.EQ},
		{"===", token.IDENTICAL},
		{"=>", token.DOUBLE_ARROW},
		{"!", token.NOT},
		{"!=", token.NE},
		{"!==", token.NOT_IDENTICAL},
		{"<", token.LT},
		{"<=", token.LE},
		{"<=>", token.SPACESHIP},
		{"<<", token.LEFT_SHIFT},
		{">>", token.RIGHT_SHIFT},
		{"?", token.QUESTION},
		{"??", token.NULL_COALESCE},
		{"??=", token.COALESCE_ASSIGN},
		{"?->", token.SAFE_ARROW},
		{"::", token.DOUBLE_COLON},
		{":", token.COLON},
		{".", token.DOT},
		{".=", token.DOT_ASSIGN},
		{"...", token.ELLIPSIS},
		{"&", token.BIT_AND},
		{"&&", token.AND},
		{"|", token.BIT_OR},
		{"||", token.OR},
		{"\\", token.BACKSLASH},
		{"#[", token.ATTRIBUTE},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		if len(tokens) != 1 {
			t.Errorf("%q: expected 1 token, got %d", tt.input, len(tokens))
			continue
		}
		if tokens[0].Type != tt.typ {
			t.Errorf("%q: expected %s, got %s", tt.input, tt.typ, tokens[0].Type)
		}
	}
}

func TestScanVariables(t *testing.T) {
	tokens := scan(t, `$name = $user123;`)

	if tokens[0].Type != token.VARIABLE || tokens[0].Literal != "$name" {
		t.Errorf("expected $name variable, got %s %q", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[2].Type != token.VARIABLE || tokens[2].Literal != "$user123" {
		t.Errorf("expected $user123 variable, got %s %q", tokens[2].Type, tokens[2].Literal)
	}
}

func TestScanIntegers(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"123", 123},
		{"1_000_000", 1000000},
		{"0x1A", 26},
		{"0xff", 255},
		{"0xFF_FF", 65535},
		{"0b1010", 10},
		{"0b1111_0000", 240},
		{"0o777", 511},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		if tokens[0].Type != token.INT {
			t.Errorf("%q: expected INT, got %s", tt.input, tokens[0].Type)
			continue
		}
		if v := tokens[0].Value.(int64); v != tt.expected {
			t.Errorf("%q: expected %d, got %d", tt.input, tt.expected, v)
		}
	}
}

func TestScanFloats(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1_000.5", 1000.5},
		{"1.5e10", 1.5e10},
		{"2E-3", 2e-3},
		{"1e6", 1e6},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		if tokens[0].Type != token.FLOAT {
			t.Errorf("%q: expected FLOAT, got %s", tt.input, tokens[0].Type)
			continue
		}
		if v := tokens[0].Value.(float64); v != tt.expected {
			t.Errorf("%q: expected %g, got %g", tt.input, tt.expected, v)
		}
	}
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`'world'`, "world"},
		{`""`, ""},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
		{`"dollar\$x"`, "dollar$x"},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		if tokens[0].Type != token.STRING {
			t.Errorf("%q: expected STRING, got %s", tt.input, tokens[0].Type)
			continue
		}
		if v := tokens[0].Value.(string); v != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.expected, v)
		}
	}
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"line comment", "// ignored\n$x", 1},
		{"hash comment", "# ignored\n$x", 1},
		{"block comment", "/* ignored */ $x", 1},
		{"nested block comment", "/* outer /* inner */ outer */ $x", 1},
		{"comment between tokens", "$a /* mid */ $b", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if len(tokens) != tt.count {
				t.Errorf("expected %d tokens, got %d", tt.count, len(tokens))
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	source := "$a = 1;\n$bb = 22;"
	tokens := scan(t, source)

	checks := []struct {
		index  int
		line   int
		column int
	}{
		{0, 1, 1}, // $a
		{1, 1, 4}, // =
		{2, 1, 6}, // 1
		{4, 2, 1}, // $bb
		{6, 2, 7}, // 22
	}

	for _, c := range checks {
		pos := tokens[c.index].Pos
		if pos.Line != c.line || pos.Column != c.column {
			t.Errorf("token %d: expected %d:%d, got %d:%d",
				c.index, c.line, c.column, pos.Line, pos.Column)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unterminated string", `"abc`, "unterminated string"},
		{"string across newline", "\"abc\ndef\"", "unterminated string"},
		{"unterminated comment", "/* abc", "unterminated block comment"},
		{"bare dollar", "$ ;", "expected variable name after '$'"},
		{"double dot", "$a ..", "unexpected '..'"},
		{"bad exponent", "1e+", "invalid number: expected exponent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input, "test.lume")
			l.ScanTokens()
			if !l.HasErrors() {
				t.Fatalf("expected lexer error")
			}
			if got := l.Errors()[0].Message; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestScanAttributeMarker(t *testing.T) {
	tokens := scan(t, "#[Route]\nclass C {}")

	if tokens[0].Type != token.ATTRIBUTE {
		t.Fatalf("expected ATTRIBUTE, got %s", tokens[0].Type)
	}
	if tokens[1].Type != token.IDENT || tokens[1].Literal != "Route" {
		t.Errorf("expected Route identifier")
	}
}

func TestScanUnicodeIdentifiers(t *testing.T) {
	tokens := scan(t, "$名前 = 1;")

	if tokens[0].Type != token.VARIABLE || tokens[0].Literal != "$名前" {
		t.Errorf("expected unicode variable, got %s %q", tokens[0].Type, tokens[0].Literal)
	}
}
