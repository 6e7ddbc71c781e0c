package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		inBlock bool
		want    LineClass
	}{
		{
			name: "plain code",
			line: "x = y + 1;",
			want: LineClass{Code: true, CodeOnly: "x = y + 1;"},
		},
		{
			name: "line comment only",
			line: "// comment only",
			want: LineClass{Comment: true},
		},
		{
			name: "code with trailing line comment",
			line: "int x = 5; // trailing",
			want: LineClass{Code: true, Comment: true, CodeOnly: "int x = 5;"},
		},
		{
			name: "single character before line comment is not code",
			line: "} // end",
			want: LineClass{Comment: true},
		},
		{
			name: "code before unterminated block comment",
			line: "int x = 1; /* start",
			want: LineClass{InBlockComment: true, Code: true, Comment: true, CodeOnly: "int x = 1;"},
		},
		{
			name: "self contained block comment",
			line: "/* note */",
			want: LineClass{Comment: true},
		},
		{
			name: "code after self contained block comment",
			line: "/* note */ return 0;",
			want: LineClass{Code: true, Comment: true, CodeOnly: "return 0;"},
		},
		{
			name: "short trailing code is ignored",
			line: "/* note */ }",
			want: LineClass{Comment: true},
		},
		{
			name:    "inside block without close",
			line:    "middle",
			inBlock: true,
			want:    LineClass{InBlockComment: true, Comment: true},
		},
		{
			name:    "closing block comment",
			line:    "end */",
			inBlock: true,
			want:    LineClass{Comment: true},
		},
		{
			name:    "closing block comment with trailing code",
			line:    "end */ x++;",
			inBlock: true,
			want:    LineClass{Comment: true, Code: true, CodeOnly: "x++;"},
		},
		{
			name: "stray close marker",
			line: "a */ foo(bar);",
			want: LineClass{Comment: true, Code: true, CodeOnly: "foo(bar);"},
		},
		{
			name: "cut happens one before the first star",
			line: "a*b /* c",
			want: LineClass{InBlockComment: true, Comment: true},
		},
		{
			name: "star at line start",
			line: "*/* weird",
			want: LineClass{Comment: true, Code: true, CodeOnly: "* weird"},
		},
		{
			name: "after uses the last close marker",
			line: "/* a */ /* b */ y = 2;",
			want: LineClass{Comment: true, Code: true, CodeOnly: "y = 2;"},
		},
		{
			name:    "open and close while already in block keeps flag",
			line:    "x */ y /* z */",
			inBlock: true,
			want:    LineClass{InBlockComment: true, Comment: true},
		},
		{
			name: "whitespace only line is code",
			line: "   ",
			want: LineClass{Code: true, CodeOnly: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLine(tt.line, tt.inBlock))
		})
	}
}

// TestClassifyLineBlockSequence 验证跨三行的块注释状态传递。
func TestClassifyLineBlockSequence(t *testing.T) {
	lines := []string{"/* start", "middle", "end */"}
	expectedFlags := []bool{true, true, false}

	inBlock := false
	for i, line := range lines {
		class := ClassifyLine(line, inBlock)
		assert.True(t, class.Comment, "line %d should be comment", i)
		assert.False(t, class.Code, "line %d should not be code", i)
		assert.Empty(t, class.CodeOnly)
		assert.Equal(t, expectedFlags[i], class.InBlockComment, "flag after line %d", i)
		inBlock = class.InBlockComment
	}
}
