package ast

type AssignType int

// regenerate assigntype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=AssignType
const (
	// Special / error
	ILLEGAL_ASSIGN AssignType = iota
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
)

// Token returns the surface syntax for the assignment operator.
func (a AssignType) Token() string {
	switch a {
	case ASSIGN:
		return "="
	case PLUS_ASSIGN:
		return "+="
	case MINUS_ASSIGN:
		return "-="
	case STAR_ASSIGN:
		return "*="
	case SLASH_ASSIGN:
		return "/="
	case PERCENT_ASSIGN:
		return "%="
	default:
		return a.String()
	}
}
