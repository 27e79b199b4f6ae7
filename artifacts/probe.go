package artifacts

import (
	"fmt"
	"image"
	"os"

	// Decoders for the formats image providers return.
	_ "image/jpeg"
	_ "image/png"
)

// ProbeFile checks that ref resolves to an existing, non-empty regular file.
func (s *FileStore) ProbeFile(ref string) error {
	info, err := os.Stat(ref)
	if err != nil {
		return fmt.Errorf("artifact not resolvable: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("artifact %s is a directory", ref)
	}
	if info.Size() == 0 {
		return fmt.Errorf("artifact %s is empty", ref)
	}
	return nil
}

// ProbeImage checks that ref resolves to a decodable image. Only the header
// is decoded; the file is never modified.
func (s *FileStore) ProbeImage(ref string) error {
	if err := s.ProbeFile(ref); err != nil {
		return err
	}

	f, err := os.Open(ref)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", ref, err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("image %s is not decodable: %w", ref, err)
	}
	return nil
}
