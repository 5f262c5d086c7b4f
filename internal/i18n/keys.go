package i18n

// 消息 ID 常量
//
// ID 按模块分组：lexer、parser、cli。
// en.go 和 zh.go 中的消息表以这些 ID 为键。
const (
	// ========== Lexer ==========
	ErrUnexpectedChar      = "lexer.unexpected_char"
	ErrUnexpectedDoubleDot = "lexer.unexpected_double_dot"
	ErrUnterminatedComment = "lexer.unterminated_comment"
	ErrUnterminatedString  = "lexer.unterminated_string"
	ErrExpectedVarName     = "lexer.expected_var_name"
	ErrInvalidHexNumber    = "lexer.invalid_hex_number"
	ErrInvalidBinaryNumber = "lexer.invalid_binary_number"
	ErrInvalidOctalNumber  = "lexer.invalid_octal_number"
	ErrInvalidExponent     = "lexer.invalid_exponent"
	ErrInvalidFloat        = "lexer.invalid_float"
	ErrInvalidInteger      = "lexer.invalid_integer"

	// ========== Parser ==========
	ErrUnexpectedToken    = "parser.unexpected_token"
	ErrExpectedExpression = "parser.expected_expression"
	ErrExpectedType       = "parser.expected_type"
	ErrExpectedIdent      = "parser.expected_ident"
	ErrExpectedVariable   = "parser.expected_variable"

	// 枚举
	ErrCaseValueForUnitEnum          = "parser.case_value_for_unit_enum"
	ErrMissingCaseValueForBackedEnum = "parser.missing_case_value_for_backed_enum"

	// 属性
	ErrStaticReadonlyProperty         = "parser.static_readonly_property"
	ErrReadonlyPropertyHasDefault     = "parser.readonly_property_has_default"
	ErrForbiddenTypeInProperty        = "parser.forbidden_type_in_property"
	ErrMissingTypeForReadonlyProperty = "parser.missing_type_for_readonly_property"

	// 修饰符
	ErrMultipleVisibility  = "parser.multiple_visibility_modifiers"
	ErrDuplicateModifier   = "parser.duplicate_modifier"
	ErrModifierNotAllowed  = "parser.modifier_not_allowed"
	ErrFinalWithAbstract   = "parser.final_with_abstract"
	ErrReadonlyWithDefault = "parser.promoted_readonly_with_default"

	// ========== CLI ==========
	MsgParseOK      = "cli.parse_ok"
	MsgCheckOK      = "cli.check_ok"
	MsgInitCreated  = "cli.init_created"
	MsgInitExists   = "cli.init_exists"
	MsgCheckedFiles = "cli.checked_files"
)
