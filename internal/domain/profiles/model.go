package profiles

import "time"

// Role define los roles soportados en la urbanización.
// @Enum admin, resident, guard
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
	RoleGuard    Role = "guard"
)

// Profile representa el perfil de un usuario autenticado.
// El ID coincide con el user id del proveedor de identidad.
type Profile struct {
	ID string

	FullName    string
	Role        Role
	HouseNumber string

	UrbanizacionID string

	CreatedAt time.Time
}
