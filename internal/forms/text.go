package forms

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidDate = errors.New("invalid date")

// Upper uppercases s with Spanish casing rules (ñ -> Ñ, á -> Á).
func Upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

// UpperTrim is Upper for values that are about to be stored.
func UpperTrim(s string) string {
	return Upper(strings.TrimSpace(s))
}

// DateMask formats up to eight typed digits as DD-MM-YYYY, inserting the dashes as
// the user types: "1" -> "1", "171" -> "17-1", "17102026" -> "17-10-2026".
// Anything that is not a digit is dropped, so re-applying it is a no-op.
func DateMask(s string) string {
	var d []byte
	for i := 0; i < len(s) && len(d) < 8; i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			d = append(d, c)
		}
	}
	var b strings.Builder
	for i, c := range d {
		if i == 2 || i == 4 {
			b.WriteByte('-')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ParseDate converts a masked DD-MM-YYYY value to the stored YYYY-MM-DD form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse("02-01-2006", DateMask(s))
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format("2006-01-02"), nil
}

// DisplayDate turns a stored YYYY-MM-DD date back into DD-MM-YYYY. Values that do
// not parse are returned unchanged.
func DisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02-01-2006")
}
