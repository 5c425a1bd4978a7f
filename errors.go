package quantities

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned by the quotient derivations when the
// divisor quantity is exactly zero.
var ErrDivisionByZero = errors.New("quantities: division by zero")

// ErrDurationOutOfRange is returned by the duration derivations when
// the result cannot be represented by a time.Duration.
var ErrDurationOutOfRange = errors.New("quantities: duration out of range")

// ParseError reports a quantity string that could not be parsed for a
// given unit symbol.
type ParseError struct {
	// Input is the original string handed to Parse.
	Input string
	// Symbol is the unit symbol of the kind being parsed.
	Symbol string

	err error
}

func newParseError(input, symbol string, err error) *ParseError {
	return &ParseError{Input: input, Symbol: symbol, err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("quantities: parsing %q as %q: %v", e.Input, e.Symbol, e.err)
}

func (e *ParseError) Unwrap() error {
	return e.err
}
