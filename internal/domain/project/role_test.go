package project

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Reader", RoleReader, true},
		{"Contributer", RoleContributer, true},
		{"Administrator", RoleAdministrator, true},
		{"Owner", RoleOwner, true},
		{"  Owner  ", RoleOwner, true},
		{"owner", "", false},
		{"Admin", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseRole(%q): got=(%q,%v) want=(%q,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRolePermits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleReader, ActionRead, true},
		{RoleReader, ActionWrite, false},
		{RoleReader, ActionInvite, false},
		{RoleReader, ActionManage, false},
		{RoleContributer, ActionRead, true},
		{RoleContributer, ActionWrite, true},
		{RoleContributer, ActionInvite, false},
		{RoleAdministrator, ActionWrite, true},
		{RoleAdministrator, ActionInvite, true},
		{RoleAdministrator, ActionManage, true},
		{RoleOwner, ActionRead, true},
		{RoleOwner, ActionManage, true},
		{Role(""), ActionRead, false},
		{Role(""), ActionManage, false},
	}
	for _, tc := range cases {
		if got := tc.role.Permits(tc.action); got != tc.want {
			t.Fatalf("%q.Permits(%q): got=%v want=%v", tc.role, tc.action, got, tc.want)
		}
	}
}
