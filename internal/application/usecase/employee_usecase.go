package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase casos de uso de empleados. Crear un empleado crea también su
// usuario de acceso: ficha laboral y credenciales nacen juntas.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, userRepo: userRepo, storeRepo: storeRepo}
}

// Create da de alta usuario + empleado. Devuelve ErrUsernameTaken si el
// username ya existe; ErrNotFound si la tienda asignada no existe.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Username == "" || in.Password == "" || in.FirstNames == "" || in.LastNames == "" || in.DNI == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	shift := in.Shift
	if shift == "" {
		shift = entity.ShiftCompleta
	}
	if !entity.ValidShift(shift) {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		FirstNames: in.FirstNames,
		LastNames:  in.LastNames,
		DNI:        in.DNI,
		Shift:      shift,
		StoreID:    in.StoreID,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(employee)
	out.Username = user.Username
	return out, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	out := toEmployeeResponse(employee)
	if user, err := uc.userRepo.GetByID(employee.UserID); err == nil && user != nil {
		out.Username = user.Username
	}
	return out, nil
}

// Update actualiza la ficha laboral de un empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstNames != nil {
		employee.FirstNames = *in.FirstNames
	}
	if in.LastNames != nil {
		employee.LastNames = *in.LastNames
	}
	if in.DNI != nil {
		if *in.DNI == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.DNI = *in.DNI
	}
	if in.Shift != nil {
		if !entity.ValidShift(*in.Shift) {
			return nil, domain.ErrInvalidInput
		}
		employee.Shift = *in.Shift
	}
	if in.StoreID != nil {
		store, err := uc.storeRepo.GetByID(*in.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound
		}
		employee.StoreID = *in.StoreID
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out := toEmployeeResponse(e)
		if user, err := uc.userRepo.GetByID(e.UserID); err == nil && user != nil {
			out.Username = user.Username
		}
		items = append(items, *out)
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la ficha y desactiva el usuario asociado en lugar de borrarlo,
// para que los movimientos históricos conserven su autor.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	user, err := uc.userRepo.GetByID(employee.UserID)
	if err != nil || user == nil {
		return err
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		FirstNames: e.FirstNames,
		LastNames:  e.LastNames,
		DNI:        e.DNI,
		Shift:      e.Shift,
		StoreID:    e.StoreID,
	}
}
