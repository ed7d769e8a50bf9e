package enum

// UserRole is a closed enumeration of account roles. Authorization checks
// must match on these constants, never on bare string literals.
type UserRole string

const (
	RoleOwner   UserRole = "OWNER"
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CASHIER"
)

// IsValid checks whether the role is a known value
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCashier:
		return true
	}
	return false
}

// CanManageBusiness reports whether the role may read or mutate business
// settings and branches.
func (r UserRole) CanManageBusiness() bool {
	switch r {
	case RoleOwner, RoleAdmin:
		return true
	case RoleCashier:
		return false
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
