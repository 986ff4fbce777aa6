package repository

// EntityRepository define el puerto mínimo que necesita el servicio genérico
// de entidades: insertar y listar activos. Cada repositorio concreto
// (bodegas, productos) lo satisface estructuralmente.
type EntityRepository[E any] interface {
	Insert(e *E) error
	ListActive() ([]*E, error)
}
