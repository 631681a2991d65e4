package domain

// Scope is the record visibility granted to a caller for listing
// operations. Unrestricted visibility is explicit: the zero Scope is
// owner-restricted to the empty owner and matches nothing.
type Scope struct {
	All     bool
	OwnerID string
}

// ScopeForList resolves the visibility scope for a listing operation:
// admins see everything, everyone else sees only records they own.
func ScopeForList(userID, role string) Scope {
	if role == RoleAdmin {
		return Scope{All: true}
	}
	return Scope{OwnerID: userID}
}

// CanAccessStudent reports whether the caller may observe or mutate the
// given record. Admins always may; other callers only when they own it.
func CanAccessStudent(userID, role string, s *Student) bool {
	if role == RoleAdmin {
		return true
	}
	return s.OwnerID == userID
}

// CanDeleteUser enforces the self-deletion guard: an admin may delete any
// account except their own.
func CanDeleteUser(actingID, targetID string) bool {
	return actingID != targetID
}
