// Package config loads the leadctl configuration file.
//
// The file is YAML at $XDG_CONFIG_HOME/leadctl/config.yaml by default:
//
//	backend:
//	  base_url: "https://leads.example.com"
//	  timeout: "15s"
//
//	logging:
//	  level: "info"
//	  format: "text"
//
// Values in the format ${VAR_NAME} are expanded from the environment
// before parsing. A missing file falls back to defaults; the LEADCTL_HOST
// environment variable overrides backend.base_url at the CLI layer.
package config
