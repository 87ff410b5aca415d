package memory

// Repositories agrupa todos los adaptadores sobre un mismo almacén.
type Repositories struct {
	Store           *Store
	Persons         *PersonRepository
	Classifications *ClassificationRepository
	Movements       *MovementRepository
	Installments    *InstallmentRepository
	Links           *LinkRepository
	History         *HistoryRepository
	Inspector       *SchemaInspector
	Tx              *TxRunner
}

// New crea un almacén vacío con todos sus repositorios.
func New() *Repositories {
	s := NewStore()
	r := &Repositories{
		Store:           s,
		Persons:         NewPersonRepository(s),
		Classifications: NewClassificationRepository(s),
		Movements:       NewMovementRepository(s),
		Installments:    NewInstallmentRepository(s),
		Links:           NewLinkRepository(s),
		History:         NewHistoryRepository(s),
		Inspector:       NewSchemaInspector(s),
	}
	r.Tx = NewTxRunner(s, r.Movements, r.Installments, r.Links)
	return r
}
