// Package config loads plugin settings from the host-provided config map.
//
// The map may carry a whole document under "helix.toml" (preferred) or
// "helix.yaml":
//
//	[log]
//	level = "debug"
//
//	[split]
//	direction = "horizontal"
//
//	[script]
//	capabilities = ["editor.selection", "editor.ui"]
//	default = "upper"
//
//	[script.sources]
//	upper = 'local hx = require("hx") ...'
//
//	[stats]
//	show_language = true
//
// The flat keys "log_level", "split" and "script" override log.level,
// split.direction and script.default. Unknown document fields are errors.
package config
