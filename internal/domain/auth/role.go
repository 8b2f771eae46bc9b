package auth

// Role is the fixed set of actor roles recognized by the portal. Kyndly
// staff roles span every TPA; tpa_* roles are bound to a single TPA;
// broker and employer roles are bound further down the hierarchy.
type Role string

const (
	RoleSystemAdmin Role = "system_admin"
	RoleTPAStaff    Role = "tpa_staff"
	RoleTPAAdmin    Role = "tpa_admin"
	RoleTPAUser     Role = "tpa_user"
	RoleBroker      Role = "broker"
	RoleEmployer    Role = "employer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSystemAdmin, RoleTPAStaff, RoleTPAAdmin, RoleTPAUser, RoleBroker, RoleEmployer:
		return true
	}
	return false
}

// roleCapabilities is the static role -> capability table.
//
//	role          employers  brokers  quotes  documents  users
//	system_admin  R/W        R/W      R/W     R/W        R/W (+ admin:all)
//	tpa_staff     R/W        R/W      R/W     R/W        read-only
//	tpa_admin     R/W        R/W      R/W     R/W        R/W (scoped to own TPA)
//	tpa_user      R          R        R/W     R/W        none
//
// Broker and employer roles are narrower slices of tpa_user, matching the
// Cognito group behavior of the legacy portal.
var roleCapabilities = map[Role]CapabilitySet{
	RoleSystemAdmin: NewCapabilitySet(
		CapabilityAdminAll,
		CapabilityReadEmployers, CapabilityWriteEmployers,
		CapabilityReadBrokers, CapabilityWriteBrokers,
		CapabilityReadQuotes, CapabilityWriteQuotes,
		CapabilityReadDocuments, CapabilityWriteDocuments,
		CapabilityReadUsers, CapabilityWriteUsers,
	),
	RoleTPAStaff: NewCapabilitySet(
		CapabilityReadEmployers, CapabilityWriteEmployers,
		CapabilityReadBrokers, CapabilityWriteBrokers,
		CapabilityReadQuotes, CapabilityWriteQuotes,
		CapabilityReadDocuments, CapabilityWriteDocuments,
		CapabilityReadUsers,
	),
	RoleTPAAdmin: NewCapabilitySet(
		CapabilityReadEmployers, CapabilityWriteEmployers,
		CapabilityReadBrokers, CapabilityWriteBrokers,
		CapabilityReadQuotes, CapabilityWriteQuotes,
		CapabilityReadDocuments, CapabilityWriteDocuments,
		CapabilityReadUsers, CapabilityWriteUsers,
	),
	RoleTPAUser: NewCapabilitySet(
		CapabilityReadEmployers,
		CapabilityReadBrokers,
		CapabilityReadQuotes, CapabilityWriteQuotes,
		CapabilityReadDocuments, CapabilityWriteDocuments,
	),
	RoleBroker: NewCapabilitySet(
		CapabilityReadEmployers,
		CapabilityReadBrokers,
		CapabilityReadQuotes, CapabilityWriteQuotes,
		CapabilityReadDocuments, CapabilityWriteDocuments,
	),
	RoleEmployer: NewCapabilitySet(
		CapabilityReadQuotes,
		CapabilityReadDocuments,
	),
}

// DefaultCapabilities returns a copy of the capability set granted to r.
// Unknown roles get an empty set.
func DefaultCapabilities(r Role) CapabilitySet {
	caps, ok := roleCapabilities[r]
	if !ok {
		return CapabilitySet{}
	}
	return caps.clone()
}
