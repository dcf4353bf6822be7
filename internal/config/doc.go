// Package config provides configuration management for crmctl.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/crmctl/config.yaml)
//  3. Project configuration (./.crmctl/config.yaml)
//
// A single file can be given instead with LoadConfigFromPath. After files are
// merged, ApplyOverrides layers CRMCTL_* environment variables and bound
// command-line flags on top.
//
// # Configuration Structure
//
//	backend:
//	  baseURL: "http://127.0.0.1:5000"
//	  timeout: 0s          # 0 disables the per-request timeout
//	ui:
//	  searchDebounce: 0s   # 0 issues a search on every keystroke
//	  statusMessageDuration: 3s
//	  confirmDeletes: true
//	logging:
//	  level: info
package config
