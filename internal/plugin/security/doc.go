// Package security provides the capability model for plugin scripts.
//
// A script only sees the hx API modules whose capability it was granted in
// the plugin configuration. Capabilities are hierarchical: granting
// "editor" implies every "editor.*" child.
//
//	checker := security.NewPermissionChecker("run_script")
//	checker.Grant(security.CapabilitySelection)
//	if err := checker.CheckCapability(security.CapabilityCommand); err != nil {
//	    // hx.cmd is not available
//	}
//
// Limits bound the resources of the Lua state a script runs in.
package security
