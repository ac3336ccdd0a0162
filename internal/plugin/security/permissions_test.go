package security

import (
	"errors"
	"testing"
)

func TestPermissionCheckerGrant(t *testing.T) {
	pc := NewPermissionChecker("run_script")
	if pc.Owner() != "run_script" {
		t.Errorf("Owner() = %q", pc.Owner())
	}

	if pc.HasCapability(CapabilitySelection) {
		t.Error("new checker should have no capabilities")
	}

	pc.Grant(CapabilitySelection)
	if !pc.HasCapability(CapabilitySelection) {
		t.Error("HasCapability(selection) = false after Grant")
	}
	if pc.HasCapability(CapabilityCommand) {
		t.Error("HasCapability(command) = true")
	}

	pc.Revoke(CapabilitySelection)
	if pc.HasCapability(CapabilitySelection) {
		t.Error("HasCapability(selection) = true after Revoke")
	}
}

func TestPermissionCheckerParentImpliesChildren(t *testing.T) {
	pc := NewPermissionChecker("test")
	pc.Grant(CapabilityEditor)

	for _, c := range []Capability{CapabilitySelection, CapabilityDocument, CapabilityView, CapabilityCommand, CapabilityUI} {
		if !pc.HasCapability(c) {
			t.Errorf("HasCapability(%q) = false with editor granted", c)
		}
	}
}

func TestPermissionCheckerCheckCapability(t *testing.T) {
	pc := NewPermissionChecker("test")
	pc.GrantAll([]Capability{CapabilityUI, CapabilityView})

	if err := pc.CheckCapability(CapabilityUI); err != nil {
		t.Errorf("CheckCapability(ui) error = %v", err)
	}

	err := pc.CheckCapability(CapabilityDocument)
	if err == nil {
		t.Fatal("CheckCapability(document) should fail")
	}
	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("error type = %T, want *CapabilityError", err)
	}
	if capErr.Capability != CapabilityDocument {
		t.Errorf("Capability = %q", capErr.Capability)
	}
}

func TestPermissionCheckerCapabilities(t *testing.T) {
	pc := NewPermissionChecker("test")
	pc.GrantAll([]Capability{CapabilityView, CapabilityUI, CapabilityDocument})

	got := pc.Capabilities()
	want := []Capability{CapabilityDocument, CapabilityUI, CapabilityView}
	if len(got) != len(want) {
		t.Fatalf("Capabilities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Capabilities()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
