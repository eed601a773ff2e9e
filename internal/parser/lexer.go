package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var NeksisLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Keywords and Identifiers (order matters)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Numeric literals (float must come before integer)
		{Name: "Float", Pattern: `[0-9]+\.[0-9]+`, Action: nil},
		{Name: "Integer", Pattern: `0x[0-9a-fA-F]+|[0-9]+`, Action: nil},

		// String literals
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`, Action: nil},

		// Operators
		{Name: "Operator", Pattern: `(\|\||&&|==|!=|<=|>=|\+=|-=|\*=|/=|%=|->|=|[-+*/%<>!])`, Action: nil},

		// Punctuation (must come after operators)
		{Name: "Punctuation", Pattern: `[{}():,;]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
