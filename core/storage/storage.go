package storage

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
)

// Storage persists files by relative path.
type Storage interface {
	// Put writes data at path, replacing any existing file. An empty
	// contentType is detected from the extension or the content.
	Put(ctx context.Context, path string, data []byte, contentType string) (*File, error)
	Exists(ctx context.Context, path string) bool
	Delete(ctx context.Context, path string) error
	// URL returns the public URL of path.
	URL(path string) string
}

// File describes a stored file.
type File struct {
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	MIMEType     string `json:"mime_type"`
	RelativePath string `json:"path"`
	AbsolutePath string `json:"-"` // empty for remote backends
}

// CleanPath normalizes a storage key and rejects traversal.
func CleanPath(p string) (string, error) {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	if p == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	clean := path.Clean(p)
	if clean == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return clean, nil
}

// SanitizeFilename strips directory components and characters unsafe in
// headers and file systems. Non-ASCII letters are kept.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, name)

	name = strings.TrimLeft(name, ".")
	if name == "" || name == "/" {
		return "file"
	}
	return name
}

// DetectContentType resolves a MIME type from the file extension, falling
// back to content sniffing.
func DetectContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}
