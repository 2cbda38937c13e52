package project

import "strings"

// Role is a member's permission level inside one project.
type Role string

const (
	RoleReader        Role = "Reader"
	RoleContributer   Role = "Contributer"
	RoleAdministrator Role = "Administrator"
	RoleOwner         Role = "Owner"
)

// Action is a capability checked against a member's role.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionInvite Action = "invite"
	ActionManage Action = "manage"
)

// ParseRole validates a role string. The zero Role signals an invalid input.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.TrimSpace(s)) {
	case RoleReader:
		return RoleReader, true
	case RoleContributer:
		return RoleContributer, true
	case RoleAdministrator:
		return RoleAdministrator, true
	case RoleOwner:
		return RoleOwner, true
	default:
		return "", false
	}
}

// Permits reports whether the role allows the action. An empty role (caller is
// not a member) denies everything.
func (r Role) Permits(action Action) bool {
	switch action {
	case ActionRead:
		switch r {
		case RoleReader, RoleContributer, RoleAdministrator, RoleOwner:
			return true
		}
		return false
	case ActionWrite:
		switch r {
		case RoleContributer, RoleAdministrator, RoleOwner:
			return true
		}
		return false
	case ActionInvite, ActionManage:
		return r == RoleAdministrator || r == RoleOwner
	default:
		return false
	}
}
