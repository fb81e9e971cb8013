package qrcode

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes the PNG to filename, creating parent directories.
func SaveFile(img *Image, filename string) error {
	if img == nil {
		return fmt.Errorf("qrcode: nil image")
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("qrcode: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, img.png, 0o644); err != nil {
		return fmt.Errorf("qrcode: write %s: %w", filename, err)
	}
	return nil
}
