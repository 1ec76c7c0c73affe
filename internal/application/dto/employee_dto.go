package dto

// CreateEmployeeRequest entrada para crear un empleado junto con su usuario.
type CreateEmployeeRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role"`
	FirstNames string `json:"first_names" validate:"required"`
	LastNames  string `json:"last_names" validate:"required"`
	DNI        string `json:"dni" validate:"required"`
	Shift      string `json:"shift"` // COMPLETA | MEDIA | PARCIAL
	StoreID    string `json:"store_id" validate:"required"`
}

// UpdateEmployeeRequest entrada para actualizar datos laborales.
type UpdateEmployeeRequest struct {
	FirstNames *string `json:"first_names"`
	LastNames  *string `json:"last_names"`
	DNI        *string `json:"dni"`
	Shift      *string `json:"shift"`
	StoreID    *string `json:"store_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username,omitempty"`
	FirstNames string `json:"first_names"`
	LastNames  string `json:"last_names"`
	DNI        string `json:"dni"`
	Shift      string `json:"shift"`
	StoreID    string `json:"store_id"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
