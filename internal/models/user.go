package models

const (
	RoleOpProv     = "op_prov"
	RoleSupervisor = "supervisor"
	RoleOpSatker   = "op_satker"
	RoleViewer     = "viewer"
)

// IsAdminRole reports whether the role belongs to the provincial administrators.
func IsAdminRole(role string) bool {
	return role == RoleOpProv || role == RoleSupervisor
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleOpProv, RoleSupervisor, RoleOpSatker, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID       int    `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	Password string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
	SatkerID *int   `db:"satker_id" json:"satker_id"`
}

// UserListItem is a user row joined with its satker name.
type UserListItem struct {
	User
	SatkerNama *string `db:"satker_nama" json:"satker_nama"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	SatkerID *int   `json:"satker_id"`
}

// CurrentUser is the authenticated caller as seen by the service layer.
type CurrentUser struct {
	ID       int
	Name     string
	Role     string
	SatkerID *int
}

// IsAdmin reports whether the caller is op_prov or supervisor.
func (u CurrentUser) IsAdmin() bool {
	return IsAdminRole(u.Role)
}

// OwnsSatker reports whether an op_satker caller belongs to satkerID.
func (u CurrentUser) OwnsSatker(satkerID int) bool {
	return u.SatkerID != nil && *u.SatkerID == satkerID
}
