package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	integerLiteral = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)$`)
)

// MalformedNumberError is returned by the translators when the input is not a
// valid literal for the target value type.
type MalformedNumberError struct {
	Input string
	// Kind is "integer" or "decimal".
	Kind string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Kind)
}

// Unwrap lets callers match the error with errors.Is(err, ErrMalformedNumber).
func (e *MalformedNumberError) Unwrap() error {
	return ErrMalformedNumber
}

// IntegerValue is an arbitrary-precision integer bound for the words channel.
type IntegerValue struct {
	v *big.Int
}

// NewIntegerValue wraps a copy of n.
func NewIntegerValue(n *big.Int) IntegerValue {
	return IntegerValue{v: new(big.Int).Set(n)}
}

// BigInt returns a copy of the underlying integer.
func (i IntegerValue) BigInt() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

// String returns the canonical base-10 form, without a leading '+' or zeros.
func (i IntegerValue) String() string {
	if i.v == nil {
		return "0"
	}
	return i.v.String()
}

// DecimalValue is an arbitrary-precision decimal bound for the dollars channel.
type DecimalValue struct {
	d decimal.Decimal
}

// NewDecimalValue wraps d.
func NewDecimalValue(d decimal.Decimal) DecimalValue {
	return DecimalValue{d: d}
}

// Decimal returns the underlying decimal.
func (d DecimalValue) Decimal() decimal.Decimal {
	return d.d
}

// String returns the plain decimal form, keeping the input's scale so that
// "0.50" stays "0.50".
func (d DecimalValue) String() string {
	if exp := d.d.Exponent(); exp < 0 {
		return d.d.StringFixed(-exp)
	}
	return d.d.String()
}

// ToWordsRequest parses s as an arbitrary-precision integer: an optional sign
// followed by ASCII digits. Grouping separators, decimal points, underscores,
// and whitespace are rejected.
func ToWordsRequest(s string) (IntegerValue, error) {
	if !integerLiteral.MatchString(s) {
		return IntegerValue{}, &MalformedNumberError{Input: s, Kind: "integer"}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return IntegerValue{}, &MalformedNumberError{Input: s, Kind: "integer"}
	}
	return IntegerValue{v: n}, nil
}

// ToDollarsRequest parses s as an arbitrary-precision decimal: an optional
// sign, digits, and at most one decimal point. "5.", ".5" and "5.25" are
// accepted; exponents and separators are not.
func ToDollarsRequest(s string) (DecimalValue, error) {
	if !decimalLiteral.MatchString(s) {
		return DecimalValue{}, &MalformedNumberError{Input: s, Kind: "decimal"}
	}

	d, err := decimal.NewFromString(canonicalDecimal(s))
	if err != nil {
		return DecimalValue{}, &MalformedNumberError{Input: s, Kind: "decimal"}
	}
	return DecimalValue{d: d}, nil
}

// canonicalDecimal rewrites an already-validated literal into the
// "[-]digits[.digits]" form: "+.5" becomes "0.5" and "5." becomes "5".
func canonicalDecimal(s string) string {
	sign := ""
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = "-", s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")
	return sign + s
}
