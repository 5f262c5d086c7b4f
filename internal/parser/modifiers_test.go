package parser

import "testing"

func TestDuplicateModifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"duplicate static",
			`class A { static static function f() {} }`,
			"duplicate modifier `static`",
		},
		{
			"duplicate final",
			`class A { final final function f() {} }`,
			"duplicate modifier `final`",
		},
		{
			"duplicate readonly",
			`class A { public readonly readonly int $x; }`,
			"duplicate modifier `readonly`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectContains(t, parseFail(t, tt.input), tt.want)
		})
	}
}

func TestMultipleVisibility(t *testing.T) {
	tests := []string{
		`class A { public private function f() {} }`,
		`class A { protected public int $x = 0; }`,
		`class A { private protected const X = 1; }`,
	}

	for _, input := range tests {
		expectContains(t, parseFail(t, input), "multiple visibility modifiers are not allowed")
	}
}

func TestFinalWithAbstract(t *testing.T) {
	tests := []string{
		`final abstract class A {}`,
		`abstract final class A {}`,
		`class A { final abstract function f(); }`,
	}

	for _, input := range tests {
		expectContains(t, parseFail(t, input), "modifiers `final` and `abstract` cannot be used together")
	}
}

func TestModifierContexts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"readonly method",
			`class A { public readonly function f() {} }`,
			"cannot use `readonly` as a method modifier",
		},
		{
			"static class",
			`static class A {}`,
			"cannot use `static` as a class modifier",
		},
		{
			"abstract property",
			`class A { abstract int $x; }`,
			"cannot use `abstract` as a property modifier",
		},
		{
			"static constant",
			`class A { static const X = 1; }`,
			"cannot use `static` as a constant modifier",
		},
		{
			"abstract enum method",
			`enum E { abstract function f(); }`,
			"cannot use `abstract` as a enum method modifier",
		},
		{
			"static promoted property",
			`class A { function __construct(static int $x) {} }`,
			"cannot use `static` as a promoted property modifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectContains(t, parseFail(t, tt.input), tt.want)
		})
	}
}

func TestValidModifierCombinations(t *testing.T) {
	tests := []string{
		`abstract class A { abstract protected function f(); }`,
		`final class B { final public function f() {} }`,
		`class C { private static int $count = 0; }`,
		`class D { protected readonly string $name; public function __construct() { } }`,
		`class E { final public const X = 1; }`,
		`interface I { public static function f(); }`,
		`enum F { final public function f() {} }`,
	}

	for _, input := range tests {
		if _, err := Parse(input, "test.lume"); err != nil {
			t.Errorf("%s: unexpected error: %v", input, err)
		}
	}
}
