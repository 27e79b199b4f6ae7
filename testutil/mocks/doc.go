// Package mocks provides mock provider implementations for tests: canned
// responses, error injection, and call recording for every capability the
// pipeline consumes.
package mocks
