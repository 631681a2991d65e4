package domain

import "testing"

func TestScopeForList_Admin(t *testing.T) {
	scope := ScopeForList("user_1", RoleAdmin)
	if !scope.All {
		t.Fatalf("expected unrestricted scope for admin, got owner %q", scope.OwnerID)
	}
}

func TestScopeForList_User(t *testing.T) {
	scope := ScopeForList("user_1", RoleUser)
	if scope.All {
		t.Fatalf("expected owner-restricted scope for user role")
	}
	if scope.OwnerID != "user_1" {
		t.Fatalf("expected scope owner user_1, got %q", scope.OwnerID)
	}
}

func TestScopeForList_EmptyUserIDStaysRestricted(t *testing.T) {
	for _, role := range []string{RoleUser, "", "superuser"} {
		scope := ScopeForList("", role)
		if scope.All {
			t.Fatalf("role %q with empty user id must not see every record", role)
		}
	}
}

func TestCanAccessStudent(t *testing.T) {
	record := &Student{ID: "s1", OwnerID: "user_1"}

	cases := []struct {
		name   string
		userID string
		role   string
		want   bool
	}{
		{"owner", "user_1", RoleUser, true},
		{"other user", "user_2", RoleUser, false},
		{"admin non-owner", "admin_1", RoleAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccessStudent(tc.userID, tc.role, record); got != tc.want {
				t.Fatalf("CanAccessStudent(%s, %s) = %v, want %v", tc.userID, tc.role, got, tc.want)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	if CanDeleteUser("admin_1", "admin_1") {
		t.Fatalf("self-deletion must be forbidden")
	}
	if !CanDeleteUser("admin_1", "user_2") {
		t.Fatalf("deleting a different account must be allowed")
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("admin and user must be valid roles")
	}
	if ValidRole("superuser") || ValidRole("") {
		t.Fatalf("unknown roles must be rejected")
	}
}
