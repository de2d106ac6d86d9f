package permission

import "communityguestbook/internal/domain"

// StaticCheck is a domain.PermissionCheck backed by configuration. With an
// empty scope list every scope may offer the create form; otherwise only the
// listed scopes do. Enforcement of who may actually moderate happens at the
// auth middleware, not here.
type StaticCheck struct {
	allowAll bool
	scopes   map[int64]struct{}
}

// NewStaticCheck builds a StaticCheck from the configured scope IDs.
func NewStaticCheck(scopeIDs []int64) domain.PermissionCheck {
	if len(scopeIDs) == 0 {
		return &StaticCheck{allowAll: true}
	}
	scopes := make(map[int64]struct{}, len(scopeIDs))
	for _, id := range scopeIDs {
		scopes[id] = struct{}{}
	}
	return &StaticCheck{scopes: scopes}
}

func (c *StaticCheck) CanCreate(scopeID int64) bool {
	if c.allowAll {
		return true
	}
	_, ok := c.scopes[scopeID]
	return ok
}
