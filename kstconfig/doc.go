// Package kstconfig loads engine-wide defaults — BLIM guess/slip rates,
// the downset enumeration ceiling, and the default path-synthesis
// strategy order — from an optional YAML file, with functional-option
// overrides applied after the file so callers can still override a
// loaded value programmatically.
package kstconfig
