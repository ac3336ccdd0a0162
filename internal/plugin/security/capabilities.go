package security

import (
	"fmt"
	"sort"
	"strings"
)

// Capability represents a permission that a script can be granted.
type Capability string

// Capabilities known to the script API.
const (
	// CapabilityEditor grants every editor capability.
	CapabilityEditor Capability = "editor"

	// CapabilitySelection grants reading and editing selections.
	CapabilitySelection Capability = "editor.selection"

	// CapabilityDocument grants file and document operations.
	CapabilityDocument Capability = "editor.document"

	// CapabilityView grants focus and split control.
	CapabilityView Capability = "editor.view"

	// CapabilityCommand grants raw command-line execution.
	CapabilityCommand Capability = "editor.command"

	// CapabilityUI grants status line access.
	CapabilityUI Capability = "editor.ui"
)

// CapabilityInfo provides metadata about a capability.
type CapabilityInfo struct {
	Name        Capability
	Description string
	Parent      Capability
	RiskLevel   RiskLevel
}

// RiskLevel indicates how much damage a capability allows.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

var capabilityRegistry = map[Capability]CapabilityInfo{
	CapabilityEditor: {
		Name:        CapabilityEditor,
		Description: "Full editor access",
		RiskLevel:   RiskHigh,
	},
	CapabilitySelection: {
		Name:        CapabilitySelection,
		Description: "Read and edit selections",
		Parent:      CapabilityEditor,
		RiskLevel:   RiskMedium,
	},
	CapabilityDocument: {
		Name:        CapabilityDocument,
		Description: "Open, save and close documents",
		Parent:      CapabilityEditor,
		RiskLevel:   RiskMedium,
	},
	CapabilityView: {
		Name:        CapabilityView,
		Description: "Change focus and open splits",
		Parent:      CapabilityEditor,
		RiskLevel:   RiskLow,
	},
	CapabilityCommand: {
		Name:        CapabilityCommand,
		Description: "Execute arbitrary command lines",
		Parent:      CapabilityEditor,
		RiskLevel:   RiskHigh,
	},
	CapabilityUI: {
		Name:        CapabilityUI,
		Description: "Write the status line",
		Parent:      CapabilityEditor,
		RiskLevel:   RiskLow,
	},
}

// GetCapabilityInfo returns information about a capability.
func GetCapabilityInfo(c Capability) (CapabilityInfo, bool) {
	info, ok := capabilityRegistry[c]
	return info, ok
}

// IsValidCapability returns true if the capability is known.
func IsValidCapability(c Capability) bool {
	_, ok := capabilityRegistry[c]
	return ok
}

// ParseCapability converts a configured name into a Capability.
func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.TrimSpace(s))
	if !IsValidCapability(c) {
		return "", fmt.Errorf("unknown capability %q", s)
	}
	return c, nil
}

// AllCapabilities returns all known capabilities, sorted.
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityRegistry))
	for c := range capabilityRegistry {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// IsChildOf returns true if child is a child of parent.
func IsChildOf(child, parent Capability) bool {
	return strings.HasPrefix(string(child), string(parent)+".")
}

// ImpliesCapability returns true if having granted implies having required.
func ImpliesCapability(granted, required Capability) bool {
	if granted == required {
		return true
	}
	return IsChildOf(required, granted)
}

// CapabilityError represents a capability-related error.
type CapabilityError struct {
	Capability Capability
	Operation  string
	Message    string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("capability %q required for %s: %s", e.Capability, e.Operation, e.Message)
	}
	return fmt.Sprintf("capability %q: %s", e.Capability, e.Message)
}

// NewCapabilityError creates a new capability error.
func NewCapabilityError(c Capability, operation, message string) *CapabilityError {
	return &CapabilityError{
		Capability: c,
		Operation:  operation,
		Message:    message,
	}
}
