package auth

// Actor is the authenticated principal derived per-request from verified
// identity-token claims. It is never persisted by this service.
type Actor struct {
	Sub          string
	Email        string
	Role         Role
	TPAID        string
	BrokerID     string
	EmployerID   string
	Capabilities CapabilitySet
}

// NewActor builds an actor from decoded claims. When the token carries no
// explicit permissions, the role defaults apply.
func NewActor(sub, email string, role Role, tpaID, brokerID, employerID string, permissions []string) Actor {
	caps := DefaultCapabilities(role)
	if len(permissions) > 0 {
		caps = make(CapabilitySet, len(permissions))
		for _, p := range permissions {
			caps[Capability(p)] = struct{}{}
		}
	}
	return Actor{
		Sub:          sub,
		Email:        email,
		Role:         role,
		TPAID:        tpaID,
		BrokerID:     brokerID,
		EmployerID:   employerID,
		Capabilities: caps,
	}
}

// HasCapability reports whether the actor's granted set intersects the
// required set.
func (a Actor) HasCapability(required ...Capability) bool {
	return a.Capabilities.HasAny(required...)
}

// IsAdmin reports whether the actor holds the universal admin capability.
func (a Actor) IsAdmin() bool {
	return a.Capabilities.Has(CapabilityAdminAll)
}

// CanAccessTenant decides whether the actor may touch resources owned by
// resourceTPAID. Admins may touch everything; everyone else is confined to
// their own TPA.
func (a Actor) CanAccessTenant(resourceTPAID string) bool {
	if a.IsAdmin() {
		return true
	}
	return a.TPAID != "" && a.TPAID == resourceTPAID
}
