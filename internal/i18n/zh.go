package i18n

var messagesZH = map[string]string{
	// ========== 词法分析 ==========
	ErrUnexpectedChar:      "意外字符 '%c'",
	ErrUnexpectedDoubleDot: "意外的 '..'",
	ErrUnterminatedComment: "未闭合的块注释",
	ErrUnterminatedString:  "未闭合的字符串",
	ErrExpectedVarName:     "'$' 后面需要变量名",
	ErrInvalidHexNumber:    "无效的十六进制数: %s",
	ErrInvalidBinaryNumber: "无效的二进制数: %s",
	ErrInvalidOctalNumber:  "无效的八进制数: %s",
	ErrInvalidExponent:     "无效的数字: 缺少指数部分",
	ErrInvalidFloat:        "无效的浮点数: %s",
	ErrInvalidInteger:      "无效的整数: %s",

	// ========== 语法分析 ==========
	ErrUnexpectedToken:    "意外的 token `%s`，期望 {%s} 之一",
	ErrExpectedExpression: "需要表达式",
	ErrExpectedType:       "需要类型",
	ErrExpectedIdent:      "需要标识符",
	ErrExpectedVariable:   "需要变量",

	// 枚举
	ErrCaseValueForUnitEnum:          "无值枚举 `%[2]s` 的成员 `%[1]s` 不能携带值",
	ErrMissingCaseValueForBackedEnum: "有值枚举 `%[2]s` 的成员 `%[1]s` 必须携带值",

	// 属性
	ErrStaticReadonlyProperty:         "静态属性 `%s::%s` 不能是 readonly",
	ErrReadonlyPropertyHasDefault:     "readonly 属性 `%s::%s` 不能有默认值",
	ErrForbiddenTypeInProperty:        "属性 `%s::%s` 不能使用类型 `%s`",
	ErrMissingTypeForReadonlyProperty: "readonly 属性 `%s::%s` 必须声明类型",

	// 修饰符
	ErrMultipleVisibility:  "不允许多个可见性修饰符",
	ErrDuplicateModifier:   "重复的修饰符 `%s`",
	ErrModifierNotAllowed:  "`%s` 不能用作%s修饰符",
	ErrFinalWithAbstract:   "`final` 和 `abstract` 修饰符不能同时使用",
	ErrReadonlyWithDefault: "readonly 构造器提升属性不能有默认值",

	// ========== CLI ==========
	MsgParseOK:      "已解析 %s",
	MsgCheckOK:      "未发现错误",
	MsgInitCreated:  "已创建 %s",
	MsgInitExists:   "%s 已存在",
	MsgCheckedFiles: "已检查 %d 个文件，其中 %d 个有错误",
}
