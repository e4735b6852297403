// Package config loads and merges codedump configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CODEDUMP_PATTERN, CODEDUMP_OUTPUT, CODEDUMP_BACKEND, etc.)
//  3. Config file ($XDG_CONFIG_HOME/codedump/config.yaml, or --config)
//  4. Built-in defaults
//
// The defaults reproduce the fixed behavior of the original tool: "*.cs"
// files, written to Docs/EquipmentDamage_MVP_CodeDump.md under the
// repository root.
package config
