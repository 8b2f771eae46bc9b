package auth

import "sort"

// Capability is a single named permission granted to an actor via its role
// (or an explicit permissions claim). Authorization decisions are made by
// set intersection, never by string matching scattered across handlers.
type Capability string

const (
	// CapabilityAdminAll short-circuits every tenant-scope check.
	CapabilityAdminAll Capability = "admin:all"

	CapabilityReadEmployers  Capability = "read:employers"
	CapabilityWriteEmployers Capability = "write:employers"
	CapabilityReadBrokers    Capability = "read:brokers"
	CapabilityWriteBrokers   Capability = "write:brokers"
	CapabilityReadQuotes     Capability = "read:quotes"
	CapabilityWriteQuotes    Capability = "write:quotes"
	CapabilityReadDocuments  Capability = "read:documents"
	CapabilityWriteDocuments Capability = "write:documents"
	CapabilityReadUsers      Capability = "read:users"
	CapabilityWriteUsers     Capability = "write:users"
)

// CapabilitySet is an unordered set of capabilities.
type CapabilitySet map[Capability]struct{}

func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// HasAny reports whether the set intersects the required capabilities.
func (s CapabilitySet) HasAny(required ...Capability) bool {
	for _, c := range required {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// List returns the capabilities in deterministic order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s CapabilitySet) clone() CapabilitySet {
	out := make(CapabilitySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
