package auth

// Role es el rol con el que el usuario entra al tablero.
type Role string

const (
	RoleReception Role = "reception"
	RoleNurse     Role = "nurse"
	RoleDoctor    Role = "doctor"
	RolePharmacy  Role = "pharmacy"
	RoleLogistics Role = "logistics"
	RoleAdmin     Role = "admin"
)

// ParseRole devuelve false para roles desconocidos.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleReception, RoleNurse, RoleDoctor, RolePharmacy, RoleLogistics, RoleAdmin:
		return r, true
	}
	return "", false
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
