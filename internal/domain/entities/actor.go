package entities

// Role identifies which portal the acting user comes from.
//
// Identity and role resolution belong to the auth service; the core receives
// an Actor with every mutation and validates the role against the permission
// table in work_order.go.

type Role string

const (
	RoleCustomer Role = "customer"
	RoleTech     Role = "tech"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTech, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Actor is an opaque reference to the user performing a mutation.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
