package domain

import "time"

// Roles a Company or Person can hold.
const (
	RoleCustomer = "cliente"
	RoleSupplier = "proveedor"
)

type Document struct {
	Nombre   string    `json:"nombre" validate:"required"`
	URL      string    `json:"url" validate:"required,url"`
	SubidoEn time.Time `json:"subido_en"`
}

// Company is a business identified by its RUT.
type Company struct {
	ID          string     `json:"id"`
	RUT         string     `json:"rut" validate:"required,rut"`
	RazonSocial string     `json:"razon_social" validate:"required,max=120"`
	Giro        string     `json:"giro,omitempty"`
	Direccion   string     `json:"direccion,omitempty"`
	Telefono    string     `json:"telefono,omitempty"`
	Email       string     `json:"email,omitempty" validate:"omitempty,email"`
	Documentos  []Document `json:"documentos,omitempty" validate:"dive"`
	Roles       []string   `json:"roles" validate:"required,min=1,dive,party_role"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Person is an individual customer or supplier.
type Person struct {
	ID         string     `json:"id"`
	RUT        string     `json:"rut" validate:"required,rut"`
	Nombres    string     `json:"nombres" validate:"required,max=80"`
	Apellidos  string     `json:"apellidos" validate:"required,max=80"`
	Telefono   string     `json:"telefono,omitempty"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	Documentos []Document `json:"documentos,omitempty" validate:"dive"`
	Roles      []string   `json:"roles" validate:"required,min=1,dive,party_role"`
	CreatedAt  time.Time  `json:"createdAt"`
}
