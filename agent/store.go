package agent

import "context"

// Store persists provider-returned media bytes and hands out opaque refs.
// Implemented by artifacts.FileStore.
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Prober resolves artifact refs read-only for validation. Implemented by
// artifacts.FileStore.
type Prober interface {
	// ProbeFile checks that ref resolves to an existing, non-empty file.
	ProbeFile(ref string) error

	// ProbeImage checks that ref resolves to a decodable image.
	ProbeImage(ref string) error
}
