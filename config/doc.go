// Package config defines the pipeline configuration surface: per-stage agent
// parameters and per-platform profiles. Precedence is defaults, then YAML
// file, then environment overrides.
package config
