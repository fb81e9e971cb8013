package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var _ Storage = (*Local)(nil)

// Local stores files under a root directory.
type Local struct {
	root     string
	baseURL  string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// LocalOption configures Local.
type LocalOption func(*Local)

// WithBaseURL sets the URL prefix returned by URL.
func WithBaseURL(u string) LocalOption {
	return func(l *Local) {
		l.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithPermissions sets directory and file modes.
func WithPermissions(dir, file os.FileMode) LocalOption {
	return func(l *Local) {
		l.dirPerm = dir
		l.filePerm = file
	}
}

// NewLocal creates the root directory if needed.
func NewLocal(root string, opts ...LocalOption) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	l := &Local{root: abs, dirPerm: 0o755, filePerm: 0o644}
	for _, opt := range opts {
		opt(l)
	}

	if err := os.MkdirAll(abs, l.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create root: %v", ErrInvalidConfig, err)
	}
	return l, nil
}

// Root returns the absolute root directory.
func (l *Local) Root() string { return l.root }

func (l *Local) Put(ctx context.Context, p string, data []byte, contentType string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	key, err := CleanPath(p)
	if err != nil {
		return nil, err
	}
	dir, name := path.Split(key)
	key = path.Join(dir, SanitizeFilename(name))

	abs := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(abs), l.dirPerm); err != nil {
		return nil, classifyFSError(err)
	}

	// Write to a temp file first so readers never see a partial image.
	tmp, err := os.CreateTemp(filepath.Dir(abs), ".tmp-*")
	if err != nil {
		return nil, classifyFSError(err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Chmod(tmp.Name(), l.filePerm); err != nil {
		return nil, classifyFSError(err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return nil, classifyFSError(err)
	}

	if contentType == "" {
		contentType = DetectContentType(key, data)
	}

	return &File{
		Filename:     path.Base(key),
		Size:         int64(len(data)),
		MIMEType:     contentType,
		RelativePath: key,
		AbsolutePath: abs,
	}, nil
}

func (l *Local) Exists(ctx context.Context, p string) bool {
	key, err := CleanPath(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(l.root, filepath.FromSlash(key)))
	return err == nil && !info.IsDir()
}

func (l *Local) Delete(ctx context.Context, p string) error {
	key, err := CleanPath(p)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.root, filepath.FromSlash(key))); err != nil {
		return classifyFSError(err)
	}
	return nil
}

// URL joins the base URL and path. Without a base URL it returns a file:// URL.
func (l *Local) URL(p string) string {
	p = strings.TrimPrefix(p, "/")
	if l.baseURL != "" {
		return l.baseURL + "/" + p
	}
	return "file://" + filepath.ToSlash(filepath.Join(l.root, filepath.FromSlash(p)))
}

func classifyFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
}
