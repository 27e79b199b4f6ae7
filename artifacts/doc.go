// Package artifacts persists provider-returned media bytes on the local
// filesystem and hands out opaque refs. It also offers the read-only probes
// that stage validation uses to check that a ref resolves to a usable
// resource.
package artifacts
