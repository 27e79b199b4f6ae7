// Package types holds the structured error type shared by the agent and
// pipeline layers.
package types
