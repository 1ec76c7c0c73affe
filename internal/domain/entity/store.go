package entity

import "time"

// Store representa una tienda o sucursal con inventario propio (multi-tienda).
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
