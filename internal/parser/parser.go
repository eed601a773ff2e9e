package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"neksis/internal/ast"
)

// ParseError describes a syntax or literal error found while parsing.
type ParseError struct {
	Position ast.Position
	Message  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

var programParser = participle.MustBuild[Program](
	participle.Lexer(NeksisLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

// ParseSource parses source text into an AST with node metadata assigned.
// A nil program is returned only when the text could not be parsed at all.
func ParseSource(filename, source string) (*ast.Program, []ParseError) {
	parsed, err := programParser.ParseString(filename, source)
	if err != nil {
		return nil, []ParseError{convertError(filename, err)}
	}

	l := &lowerer{}
	program := l.lowerProgram(parsed)

	visitor := ast.NewMetadataVisitor(source)
	visitor.AssignMetadata(program, 0)

	return program, l.errs
}

// ParseFile reads and parses a single source file.
func ParseFile(path string) (*ast.Program, []ParseError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, errs := ParseSource(path, string(source))
	return program, errs, nil
}

func convertError(filename string, err error) ParseError {
	if pe, ok := err.(participle.Error); ok {
		pos := pe.Position()
		return ParseError{
			Position: ast.Position{Filename: pos.Filename, Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
			Message:  pe.Message(),
		}
	}

	return ParseError{
		Position: ast.Position{Filename: filename, Line: 1, Column: 1},
		Message:  err.Error(),
	}
}
