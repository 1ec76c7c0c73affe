package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste una ficha de empleado. DNI duplicado devuelve ErrDuplicate.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, first_names, last_names, dni, shift, store_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.UserID, employee.FirstNames, employee.LastNames,
		employee.DNI, employee.Shift, employee.StoreID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getOne(`
		SELECT id, user_id, first_names, last_names, dni, shift, store_id
		FROM employees WHERE id = $1`, id)
}

// GetByUserID obtiene la ficha asociada a un usuario (relación 1:1).
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	return r.getOne(`
		SELECT id, user_id, first_names, last_names, dni, shift, store_id
		FROM employees WHERE user_id = $1`, userID)
}

func (r *EmployeeRepo) getOne(query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.UserID, &e.FirstNames, &e.LastNames, &e.DNI, &e.Shift, &e.StoreID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza la ficha laboral de un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_names = $2, last_names = $3, dni = $4, shift = $5, store_id = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.FirstNames, employee.LastNames, employee.DNI,
		employee.Shift, employee.StoreID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// List lista empleados con paginación, ordenados por apellidos.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, user_id, first_names, last_names, dni, shift, store_id
		FROM employees ORDER BY last_names, first_names LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.FirstNames, &e.LastNames, &e.DNI, &e.Shift, &e.StoreID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una ficha de empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
