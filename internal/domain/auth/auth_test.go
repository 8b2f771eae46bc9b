package auth

import "testing"

func TestDefaultCapabilities(t *testing.T) {
	cases := []struct {
		role    Role
		has     []Capability
		lacks   []Capability
		isAdmin bool
	}{
		{
			role:    RoleSystemAdmin,
			has:     []Capability{CapabilityAdminAll, CapabilityWriteUsers, CapabilityWriteQuotes},
			isAdmin: true,
		},
		{
			role:  RoleTPAStaff,
			has:   []Capability{CapabilityWriteEmployers, CapabilityWriteBrokers, CapabilityWriteQuotes, CapabilityReadUsers},
			lacks: []Capability{CapabilityWriteUsers, CapabilityAdminAll},
		},
		{
			role:  RoleTPAAdmin,
			has:   []Capability{CapabilityWriteUsers, CapabilityReadUsers},
			lacks: []Capability{CapabilityAdminAll},
		},
		{
			role:  RoleTPAUser,
			has:   []Capability{CapabilityReadEmployers, CapabilityReadBrokers, CapabilityWriteQuotes, CapabilityWriteDocuments},
			lacks: []Capability{CapabilityWriteEmployers, CapabilityWriteBrokers, CapabilityReadUsers},
		},
		{
			role:  RoleEmployer,
			has:   []Capability{CapabilityReadQuotes, CapabilityReadDocuments},
			lacks: []Capability{CapabilityWriteQuotes, CapabilityReadEmployers},
		},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			caps := DefaultCapabilities(tc.role)
			for _, c := range tc.has {
				if !caps.Has(c) {
					t.Fatalf("%s should have %s", tc.role, c)
				}
			}
			for _, c := range tc.lacks {
				if caps.Has(c) {
					t.Fatalf("%s should not have %s", tc.role, c)
				}
			}
			if caps.Has(CapabilityAdminAll) != tc.isAdmin {
				t.Fatalf("%s admin mismatch", tc.role)
			}
		})
	}

	t.Run("unknown role gets nothing", func(t *testing.T) {
		caps := DefaultCapabilities(Role("ghost"))
		if len(caps) != 0 {
			t.Fatalf("expected empty set, got %v", caps.List())
		}
	})

	t.Run("returned set is a copy", func(t *testing.T) {
		caps := DefaultCapabilities(RoleEmployer)
		caps[CapabilityAdminAll] = struct{}{}
		if DefaultCapabilities(RoleEmployer).Has(CapabilityAdminAll) {
			t.Fatalf("mutating the returned set leaked into the role table")
		}
	})
}

func TestNewActor_ExplicitPermissionsOverride(t *testing.T) {
	a := NewActor("u-1", "u@x.com", RoleEmployer, "tpa-1", "", "", []string{"write:quotes"})
	if !a.HasCapability(CapabilityWriteQuotes) {
		t.Fatalf("explicit permission not granted")
	}
	// Role defaults are replaced, not merged.
	if a.HasCapability(CapabilityReadDocuments) {
		t.Fatalf("role default should not survive an explicit permissions claim")
	}
}

func TestActor_CanAccessTenant(t *testing.T) {
	admin := NewActor("a", "a@x.com", RoleSystemAdmin, "", "", "", nil)
	staff := NewActor("s", "s@x.com", RoleTPAStaff, "tpa-1", "", "", nil)
	noTenant := NewActor("n", "n@x.com", RoleTPAStaff, "", "", "", nil)

	if !admin.CanAccessTenant("tpa-anything") {
		t.Fatalf("admin should access every tenant")
	}
	if !staff.CanAccessTenant("tpa-1") {
		t.Fatalf("staff should access own tenant")
	}
	if staff.CanAccessTenant("tpa-2") {
		t.Fatalf("staff should not cross tenants")
	}
	// An empty actor tenant never matches, even against an empty resource.
	if noTenant.CanAccessTenant("") {
		t.Fatalf("empty tenant must not match empty resource")
	}
}

func TestCapabilitySet_HasAny(t *testing.T) {
	s := NewCapabilitySet(CapabilityReadQuotes)
	if !s.HasAny(CapabilityWriteQuotes, CapabilityReadQuotes) {
		t.Fatalf("expected intersection")
	}
	if s.HasAny(CapabilityWriteUsers) {
		t.Fatalf("unexpected intersection")
	}
}
