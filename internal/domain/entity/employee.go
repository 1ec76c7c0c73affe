package entity

// Jornadas válidas para Employee.
const (
	ShiftCompleta = "COMPLETA"
	ShiftMedia    = "MEDIA"
	ShiftParcial  = "PARCIAL"
)

// ValidShift informa si s es una jornada conocida.
func ValidShift(s string) bool {
	return s == ShiftCompleta || s == ShiftMedia || s == ShiftParcial
}

// Employee información laboral de un usuario (relación 1:1 con User).
type Employee struct {
	ID         string
	UserID     string
	FirstNames string
	LastNames  string
	DNI        string // documento de identidad, único
	Shift      string // COMPLETA, MEDIA, PARCIAL
	StoreID    string // tienda asignada
}
