package optimizer

import (
	"errors"
	"fmt"

	"neksis/internal/ast"
)

// ErrDivisionByZero is the only fatal condition in the pipeline: constant
// folding met a literal division or modulo by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Error wraps a pass failure with the source position it occurred at.
type Error struct {
	Pos ast.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("optimizer error: %s at %s:%d:%d",
		e.Err, e.Pos.Filename, e.Pos.Line, e.Pos.Column)
}

func (e *Error) Unwrap() error {
	return e.Err
}
