package enum

import "testing"

func TestUserRoleIsValid(t *testing.T) {
	for _, role := range []UserRole{RoleOwner, RoleAdmin, RoleCashier} {
		if !role.IsValid() {
			t.Errorf("%s should be valid", role)
		}
	}
	for _, role := range []UserRole{"", "owner", "SUPERADMIN", "MANAGER"} {
		if role.IsValid() {
			t.Errorf("%q should be invalid", role)
		}
	}
}

func TestCanManageBusiness(t *testing.T) {
	cases := []struct {
		role UserRole
		want bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleCashier, false},
		{UserRole("MANAGER"), false},
	}
	for _, tc := range cases {
		if got := tc.role.CanManageBusiness(); got != tc.want {
			t.Errorf("CanManageBusiness(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
