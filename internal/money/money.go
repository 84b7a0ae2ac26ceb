// Package money formats and parses whole Chilean-peso amounts.
//
// Normalize is the routine applied to a money input on every keystroke: it keeps the
// digits of whatever was typed or pasted and regroups them with the es-CL thousands
// separator. It never fails and is idempotent, so it is safe to re-apply to its own
// output.
package money

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// groupingFormat is the go-humanize directive for es-CL "." grouping and no decimals.
const groupingFormat = "#.###,"

// maxGroupedDigits bounds the values that are regrouped. go-humanize goes through
// float64, which is exact below 2^53; past that the digits are returned ungrouped.
const maxGroupedDigits = 15

var ErrInvalidAmount = errors.New("invalid amount")

// Digits returns the ASCII digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Normalize converts raw, possibly half-edited input into grouped whole-peso digits.
//
//	Normalize("15000")   -> "15.000"
//	Normalize("$1.500")  -> "1.500"
//	Normalize("1..500")  -> "1.500"
//	Normalize("abc")     -> ""
func Normalize(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if d = strings.TrimLeft(d, "0"); d == "" {
		return "0"
	}
	if len(d) > maxGroupedDigits {
		return d
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return d
	}
	return humanize.FormatInteger(groupingFormat, int(n))
}

// Parse reads an amount typed in any of the forms Normalize accepts.
func Parse(s string) (int64, error) {
	d := Digits(s)
	if d == "" {
		return 0, ErrInvalidAmount
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// Format groups a whole-peso amount for display.
func Format(n int64) string {
	if n < 0 {
		return "-" + Normalize(strconv.FormatInt(-n, 10))
	}
	return Normalize(strconv.FormatInt(n, 10))
}

// FormatCLP is Format with the peso sign, as shown on the dashboard.
func FormatCLP(n int64) string {
	if n < 0 {
		return "-$" + Format(-n)
	}
	return "$" + Format(n)
}
