package languages

// 关键字表：includedOperators 中的保留字作为 Halstead 操作符计数，
// excludedOperands 中的保留字永远不计为操作数。
// 两张表有交集但不相同；同时不在前者、却在后者中的词直接丢弃。

var cIncludedOperators = []string{
	"auto", "extern", "register", "static", "typedef", "const", "final",
	"volatile", "break", "case", "continue", "default", "do", "if", "else",
	"enum", "for", "goto", "new", "return", "sizeof", "struct", "switch",
	"union", "while",
}

var cExcludedOperands = []string{
	"auto", "break", "case", "const", "continue", "default", "do", "else",
	"enum", "extern", "for", "goto", "if", "register", "return", "signed",
	"sizeof", "static", "struct", "switch", "typedef", "union", "unsigned",
	"void", "volatile", "while",
	// 基本类型名
	"char", "double", "float", "int", "long", "short",
}

var cppIncludedOperators = []string{
	"auto", "extern", "register", "static", "typedef", "virtual", "mutable",
	"inline", "const", "friend", "volatile", "final", "break", "case",
	"continue", "default", "do", "if", "else", "enum", "for", "goto", "new",
	"return", "asm", "operator", "private", "protected", "public", "sizeof",
	"struct", "switch", "union", "while", "this", "namespace", "using", "try",
	"catch", "throw", "abstract", "concrete", "const_cast", "static_cast",
	"dynamic_cast", "reinterpret_cast", "typeid", "template", "explicit",
	"true", "false", "typename",
}

var cppExcludedOperands = []string{
	"one", "of", "abstract", "continue", "for", "new", "switch", "assert",
	"default", "if", "package", "synchronized", "do", "goto", "private",
	"this", "break", "implements", "protected", "throw", "else", "import",
	"public", "throws", "case", "enum", "instanceof", "return", "transient",
	"catch", "extends", "short", "try", "final", "interface", "static",
	"void", "class", "finally", "strictfp", "volatile", "const", "native",
	"super", "while",
	// 基本类型名
	"bool", "char", "double", "float", "int", "long", "signed", "unsigned",
	"wchar_t",
}

// Java 的操作符表沿用 C++ 的控制流/声明关键字集合。
var javaIncludedOperators = []string{
	"break", "case", "continue", "default", "do", "if", "else", "enum", "for",
	"goto", "new", "return", "asm", "operator", "private", "protected",
	"public", "sizeof", "struct", "switch", "union", "while", "this",
	"namespace", "using", "try", "catch", "throw", "abstract", "concrete",
	"const_cast", "static_cast", "dynamic_cast", "reinterpret_cast", "typeid",
	"template", "explicit", "true", "false", "typename",
}

var javaExcludedOperands = []string{
	"one", "of", "abstract", "continue", "for", "new", "switch", "assert",
	"default", "if", "package", "synchronized", "do", "goto", "private",
	"this", "break", "implements", "protected", "throw", "else", "import",
	"public", "throws", "case", "enum", "instanceof", "return", "transient",
	"catch", "extends", "try", "final", "interface", "static", "void",
	"class", "finally", "strictfp", "volatile", "const", "native", "super",
	"while",
	// 基本类型名
	"boolean", "byte", "char", "double", "float", "int", "long", "short",
}

// builtinProfiles 返回全部内置语言画像。
func builtinProfiles() []*Profile {
	return []*Profile{
		newProfile("C", []string{".c", ".h"}, cIncludedOperators, cExcludedOperands),
		newProfile("C++", []string{".cpp", ".hpp"}, cppIncludedOperators, cppExcludedOperands),
		newProfile("Java", []string{".java", ".javah"}, javaIncludedOperators, javaExcludedOperands),
	}
}
