package repository

import "github.com/tu-usuario/inventario-tiendas/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	// GetByName devuelve nil (sin error) cuando no existe tienda con ese nombre.
	GetByName(name string) (*entity.Store, error)
	Update(store *entity.Store) error
	List(limit, offset int) ([]*entity.Store, error)
	Delete(id string) error
}
