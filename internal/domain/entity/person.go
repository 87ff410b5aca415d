package entity

import "time"

// PersonRole papel de la persona en el libro.
type PersonRole string

const (
	PersonRoleSupplier PersonRole = "FORNECEDOR" // emisor de la nota
	PersonRoleBilled   PersonRole = "FATURADO"   // destinatario facturado
	PersonRoleClient   PersonRole = "CLIENTE"    // genérico, alta administrativa
)

// Valid indica si el rol es uno de los conocidos.
func (r PersonRole) Valid() bool {
	switch r {
	case PersonRoleSupplier, PersonRoleBilled, PersonRoleClient:
		return true
	}
	return false
}

// Person contraparte (proveedor o facturado). TaxID es CPF (11 dígitos) o CNPJ (14),
// guardado tal como vino en la nota; vacío si se desconoce.
type Person struct {
	ID        int64
	Role      PersonRole
	LegalName string
	TradeName string
	TaxID     string
	Active    bool
	CreatedAt time.Time
}
