package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedash/internal/domain"
)

func TestRUT(t *testing.T) {
	got, ok := RUT("12.345.678-5")
	assert.True(t, ok)
	assert.Equal(t, "12345678-5", got)

	got, ok = RUT(" 11111111-1 ")
	assert.True(t, ok)
	assert.Equal(t, "11111111-1", got)

	for _, bad := range []string{"", "1", "12.345.678-9", "abc-1", "0-0", "1234567890-1"} {
		_, ok := RUT(bad)
		assert.False(t, ok, "RUT(%q)", bad)
	}
}

func TestRUTCheckDigitK(t *testing.T) {
	got, ok := RUT("6-k")
	assert.True(t, ok)
	assert.Equal(t, "6-K", got)
}

func TestStructSaleInput(t *testing.T) {
	assert.NoError(t, Struct(domain.SaleInput{Modelo: "X"}))

	err := Struct(domain.SaleInput{
		Tipo:       "tablet",
		IMEI:       "123",
		ClienteRUT: "12.345.678-9",
		Fecha:      "17-10-2026",
		Precio:     -1,
	})
	var verrs Errors
	require.ErrorAs(t, err, &verrs)

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "campo obligatorio", fields["modelo"])
	assert.Contains(t, fields, "tipo")
	assert.Contains(t, fields, "imei")
	assert.Equal(t, "RUT inválido", fields["cliente_rut"])
	assert.Contains(t, fields, "fecha")
	assert.Contains(t, fields, "precio")
}

func TestStructCompanyRoles(t *testing.T) {
	c := domain.Company{RUT: "11.111.111-1", RazonSocial: "Importadora", Roles: []string{domain.RoleSupplier}}
	assert.NoError(t, Struct(c))

	c.Roles = []string{"socio"}
	var verrs Errors
	require.ErrorAs(t, Struct(c), &verrs)
	assert.Equal(t, "debe ser cliente o proveedor", verrs[0].Message)
}

func TestStructPerson(t *testing.T) {
	p := domain.Person{
		RUT:       "12.345.678-5",
		Nombres:   "JOSÉ",
		Apellidos: "MUÑOZ",
		Email:     "jose@example.cl",
		Roles:     []string{domain.RoleCustomer, domain.RoleSupplier},
	}
	assert.NoError(t, Struct(p))

	p.Roles = nil
	p.Email = "no-es-correo"
	p.RUT = "12.345.678-9"
	var verrs Errors
	require.ErrorAs(t, Struct(p), &verrs)
	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "RUT inválido", fields["rut"])
	assert.Equal(t, "correo inválido", fields["email"])
	assert.Equal(t, "campo obligatorio", fields["roles"])
}

func TestID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"iphone", "iphone", true},
		{" Accesorio ", "accesorio", true},
		{"iphone_2", "iphone_2", true},
		{"", "", false},
		{"9iphone", "9iphone", false},
		{"../iphone", "../iphone", false},
		{"iphone x", "iphone x", false},
		{"abcdefghijklmnopqrstuvwxyz0123456", "abcdefghijklmnopqrstuvwxyz0123456", false},
	}
	for _, tc := range cases {
		got, ok := ID(tc.in)
		assert.Equal(t, tc.ok, ok, "ID(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ID(%q)", tc.in)
	}
}
