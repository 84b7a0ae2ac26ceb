package validate

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"phonedash/internal/domain"
)

var (
	reRUTBody = regexp.MustCompile(`^[0-9]{1,9}$`)
	reID      = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)
)

var (
	once sync.Once
	v    *validator.Validate
)

// FieldError describes one rejected field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned by Struct when one or more fields are rejected.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func engine() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
			_, ok := RUT(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("party_role", func(fl validator.FieldLevel) bool {
			r := fl.Field().String()
			return r == domain.RoleCustomer || r == domain.RoleSupplier
		})
	})
	return v
}

// Struct validates s against its `validate` tags. It returns Errors for rejected
// fields and any other error as is.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	case "len":
		return "debe tener " + fe.Param() + " caracteres"
	case "numeric":
		return "solo dígitos"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "datetime":
		return "fecha inválida, formato AAAA-MM-DD"
	case "rut":
		return "RUT inválido"
	case "party_role":
		return "debe ser " + domain.RoleCustomer + " o " + domain.RoleSupplier
	case "email":
		return "correo inválido"
	default:
		return "valor inválido"
	}
}

// RUT validates a Chilean RUT ("12.345.678-5", "12345678-5", "123456785") and
// returns it in the canonical "12345678-5" form.
func RUT(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(".", "", "-", "", " ", "").Replace(s)
	if len(s) < 2 {
		return "", false
	}
	body, dv := s[:len(s)-1], s[len(s)-1:]
	if !reRUTBody.MatchString(body) {
		return "", false
	}
	if checkDigit(body) != dv {
		return "", false
	}
	body = strings.TrimLeft(body, "0")
	if body == "" {
		return "", false
	}
	return body + "-" + dv, true
}

func checkDigit(body string) string {
	sum, mul := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mul
		mul++
		if mul > 7 {
			mul = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(r)
	}
}

// ID checks a catalog document id: lowercase, starting with a letter, at most 32
// characters. Surrounding spaces are dropped and upper case is folded.
func ID(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reID.MatchString(s)
}
