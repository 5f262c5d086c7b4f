package i18n

var messagesEN = map[string]string{
	// ========== Lexer ==========
	ErrUnexpectedChar:      "unexpected character '%c'",
	ErrUnexpectedDoubleDot: "unexpected '..'",
	ErrUnterminatedComment: "unterminated block comment",
	ErrUnterminatedString:  "unterminated string",
	ErrExpectedVarName:     "expected variable name after '$'",
	ErrInvalidHexNumber:    "invalid hex number: %s",
	ErrInvalidBinaryNumber: "invalid binary number: %s",
	ErrInvalidOctalNumber:  "invalid octal number: %s",
	ErrInvalidExponent:     "invalid number: expected exponent",
	ErrInvalidFloat:        "invalid float number: %s",
	ErrInvalidInteger:      "invalid integer: %s",

	// ========== Parser ==========
	ErrUnexpectedToken:    "unexpected token `%s`, expected one of {%s}",
	ErrExpectedExpression: "expected expression",
	ErrExpectedType:       "expected type",
	ErrExpectedIdent:      "expected identifier",
	ErrExpectedVariable:   "expected variable",

	// Enums
	ErrCaseValueForUnitEnum:          "case `%s` of unit enum `%s` must not have a value",
	ErrMissingCaseValueForBackedEnum: "case `%s` of backed enum `%s` must have a value",

	// Properties
	ErrStaticReadonlyProperty:         "static property `%s::%s` cannot be readonly",
	ErrReadonlyPropertyHasDefault:     "readonly property `%s::%s` cannot have a default value",
	ErrForbiddenTypeInProperty:        "property `%s::%s` cannot have type `%s`",
	ErrMissingTypeForReadonlyProperty: "readonly property `%s::%s` must have a type",

	// Modifiers
	ErrMultipleVisibility:  "multiple visibility modifiers are not allowed",
	ErrDuplicateModifier:   "duplicate modifier `%s`",
	ErrModifierNotAllowed:  "cannot use `%s` as a %s modifier",
	ErrFinalWithAbstract:   "modifiers `final` and `abstract` cannot be used together",
	ErrReadonlyWithDefault: "readonly promoted property cannot have a default value",

	// ========== CLI ==========
	MsgParseOK:      "parsed %s",
	MsgCheckOK:      "no errors found",
	MsgInitCreated:  "created %s",
	MsgInitExists:   "%s already exists",
	MsgCheckedFiles: "checked %d file(s), %d with errors",
}
