package runtime

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the fatal failures a program run can hit. Every kind
// aborts the run; none is locally recovered.
type ErrorKind int

const (
	ErrDuplicateDeclaration ErrorKind = iota
	ErrUndefinedSymbol
	ErrNotCallable
	ErrArityMismatch
	ErrVoidValueInExpression
	ErrDivisionByZero
	ErrStackExhaustion
	ErrTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDuplicateDeclaration:
		return "duplicate-declaration"
	case ErrUndefinedSymbol:
		return "undefined-symbol"
	case ErrNotCallable:
		return "not-callable"
	case ErrArityMismatch:
		return "arity-mismatch"
	case ErrVoidValueInExpression:
		return "void-value-in-expression"
	case ErrDivisionByZero:
		return "division-by-zero"
	case ErrStackExhaustion:
		return "stack-exhaustion"
	case ErrTypeMismatch:
		return "type-mismatch"
	default:
		return fmt.Sprintf("unknown_error_%d", int(k))
	}
}

// Error carries the kind of a fatal failure plus the offending name or
// operator where one exists. It is surfaced unmodified to the caller of the
// interpreter; the only cleanup performed during unwinding is the restore
// of the caller scope configuration at call boundaries.
type Error struct {
	Kind ErrorKind
	Name string // offending identifier, empty when not applicable
	Op   string // offending operator, empty when not applicable
	msg  string
}

func (e *Error) Error() string { return e.msg }

// KindOf extracts the error kind when err is (or wraps) a runtime Error.
func KindOf(err error) (ErrorKind, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind, true
	}
	return 0, false
}

// KindFromName resolves the kind names used by run manifests back to their
// ErrorKind. Names match what String returns.
func KindFromName(name string) (ErrorKind, bool) {
	for k := ErrDuplicateDeclaration; k <= ErrTypeMismatch; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func NewDuplicateDeclarationError(name string) *Error {
	return &Error{
		Kind: ErrDuplicateDeclaration,
		Name: name,
		msg:  fmt.Sprintf("symbol '%s' already declared", name),
	}
}

func NewUndefinedSymbolError(name string) *Error {
	return &Error{
		Kind: ErrUndefinedSymbol,
		Name: name,
		msg:  fmt.Sprintf("undefined symbol '%s'", name),
	}
}

func NewNotCallableError(name string) *Error {
	return &Error{
		Kind: ErrNotCallable,
		Name: name,
		msg:  fmt.Sprintf("'%s' is not a function", name),
	}
}

func NewArityMismatchError(name string, want, got int) *Error {
	return &Error{
		Kind: ErrArityMismatch,
		Name: name,
		msg:  fmt.Sprintf("function '%s' expects %d arguments, got %d", name, want, got),
	}
}

func NewVoidValueInExpressionError(name string) *Error {
	return &Error{
		Kind: ErrVoidValueInExpression,
		Name: name,
		msg:  fmt.Sprintf("no return value from function '%s'", name),
	}
}

func NewDivisionByZeroError() *Error {
	return &Error{
		Kind: ErrDivisionByZero,
		Op:   "/",
		msg:  "division by zero",
	}
}

func NewStackExhaustionError(limit int) *Error {
	return &Error{
		Kind: ErrStackExhaustion,
		msg:  fmt.Sprintf("call depth limit exceeded (max %d)", limit),
	}
}

// NewNotAScalarError reports a function name used where a scalar value is
// required (reading it in an expression).
func NewNotAScalarError(name string) *Error {
	return &Error{
		Kind: ErrTypeMismatch,
		Name: name,
		msg:  fmt.Sprintf("'%s' is not a scalar", name),
	}
}

// NewAssignToFunctionError reports an assignment targeting a function
// binding.
func NewAssignToFunctionError(name string) *Error {
	return &Error{
		Kind: ErrTypeMismatch,
		Name: name,
		msg:  fmt.Sprintf("cannot assign to function '%s'", name),
	}
}
