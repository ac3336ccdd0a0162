package api

import (
	"testing"

	"github.com/dshills/helixpdk/internal/plugin/security"
)

func TestUIStatus(t *testing.T) {
	h, state := setup(t, security.CapabilityUI)

	run(t, state, `require("hx").ui.status("working")`)
	if !h.StatusSet || h.Status != "working" {
		t.Errorf("Status = %q (set %v)", h.Status, h.StatusSet)
	}

	run(t, state, `require("hx").ui.clear_status()`)
	if h.StatusSet {
		t.Error("status still set after clear_status")
	}
}

func TestUIStatusInvalidUTF8(t *testing.T) {
	h, state := setup(t, security.CapabilityUI)

	if err := state.DoString(`require("hx").ui.status("\255")`); err == nil {
		t.Error("invalid UTF-8 should fail")
	}
	if h.Allocs != 0 {
		t.Errorf("Allocs = %d, want 0", h.Allocs)
	}
}
