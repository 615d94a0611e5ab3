package sexpr

import (
	"errors"
)

var (
	ErrUnclosedString       = errors.New("unclosed string")
	ErrExpectedClosingParen = errors.New("expected closing ')'")
	ErrNoMatchingOpenParen  = errors.New("')' has no matching '('")
	ErrParseInt             = errors.New("error while parsing int")
	ErrParseFloat           = errors.New("error while parsing float")
	ErrInvalidSymbol        = errors.New("invalid symbol")
	ErrInvalidString        = errors.New("invalid string")
)

// NumberError is returned when a digit run cannot be converted. Err is the
// conversion failure, usually a *strconv.NumError.
type NumberError struct {
	Float bool
	Err   error
}

func (e *NumberError) kind() error {
	if e.Float {
		return ErrParseFloat
	}
	return ErrParseInt
}

func (e *NumberError) Error() string {
	return e.kind().Error() + ", " + e.Err.Error()
}

func (e *NumberError) Unwrap() error { return e.Err }

// Is matches ErrParseInt or ErrParseFloat depending on the literal.
func (e *NumberError) Is(target error) bool {
	return target == e.kind()
}
