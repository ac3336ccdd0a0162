package security

import "sort"

// PermissionChecker tracks the capabilities granted to one script run.
// Plugin invocations are single-threaded, so it is not synchronized.
type PermissionChecker struct {
	capabilities map[Capability]bool
	owner        string
}

// NewPermissionChecker creates a checker with nothing granted.
func NewPermissionChecker(owner string) *PermissionChecker {
	return &PermissionChecker{
		capabilities: make(map[Capability]bool),
		owner:        owner,
	}
}

// Owner returns the name the checker was created for.
func (pc *PermissionChecker) Owner() string { return pc.owner }

// Grant grants a capability.
func (pc *PermissionChecker) Grant(c Capability) {
	pc.capabilities[c] = true
}

// Revoke revokes a capability.
func (pc *PermissionChecker) Revoke(c Capability) {
	delete(pc.capabilities, c)
}

// GrantAll grants multiple capabilities.
func (pc *PermissionChecker) GrantAll(caps []Capability) {
	for _, c := range caps {
		pc.capabilities[c] = true
	}
}

// HasCapability returns true if c or one of its parents is granted.
func (pc *PermissionChecker) HasCapability(c Capability) bool {
	if pc.capabilities[c] {
		return true
	}
	for granted := range pc.capabilities {
		if ImpliesCapability(granted, c) {
			return true
		}
	}
	return false
}

// CheckCapability returns an error if the capability is not granted.
func (pc *PermissionChecker) CheckCapability(c Capability) error {
	if !pc.HasCapability(c) {
		return NewCapabilityError(c, "", "not granted")
	}
	return nil
}

// Capabilities returns the granted capabilities, sorted.
func (pc *PermissionChecker) Capabilities() []Capability {
	caps := make([]Capability, 0, len(pc.capabilities))
	for c := range pc.capabilities {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}
