package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a whole-peso amount. In JSON it is written as a number and read from
// either a number (15000) or a formatted string ("15.000", "$15.000").
type Amount int64

func (a Amount) String() string { return FormatCLP(int64(a)) }

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(a), 10)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		// Parse keeps digits only and would turn "-15.000" into 15000
		if strings.Contains(s, "-") {
			return fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
		}
		n, err := Parse(s)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		*a = Amount(n)
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("amount %s: %w", b, ErrInvalidAmount)
	}
	*a = Amount(n)
	return nil
}
