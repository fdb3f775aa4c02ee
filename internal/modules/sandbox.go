package modules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxReadSize caps module file reads at 1 MiB.
const maxReadSize = 1 << 20

var (
	// ErrNotAllowed is returned for paths outside the sandbox roots.
	ErrNotAllowed = errors.New("path not in allowed list")

	// ErrTooLarge is returned for files over the read cap.
	ErrTooLarge = errors.New("file too large")
)

// SandboxedFS restricts filesystem access to a fixed set of roots.
// Paths are resolved before comparison so ".." hops and symlinks cannot
// escape the sandbox.
type SandboxedFS struct {
	roots []string
}

// NewSandboxedFS resolves the given roots. Roots that cannot be resolved
// are dropped.
func NewSandboxedFS(roots ...string) *SandboxedFS {
	resolved := make([]string, 0, len(roots))
	for _, root := range roots {
		canon, err := canonicalPath(root)
		if err != nil {
			continue
		}
		resolved = append(resolved, canon)
	}
	return &SandboxedFS{roots: resolved}
}

// HasFile reports whether name exists as a regular file under any root.
func (s *SandboxedFS) HasFile(name string) bool {
	if strings.Contains(name, "..") {
		return false
	}
	for _, root := range s.roots {
		path := filepath.Join(root, name)
		if !s.isAllowed(path) {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}

// HasDir reports whether name exists as a directory under any root.
func (s *SandboxedFS) HasDir(name string) bool {
	if strings.Contains(name, "..") {
		return false
	}
	for _, root := range s.roots {
		path := filepath.Join(root, name)
		if !s.isAllowed(path) {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// ReadFile reads a file inside the sandbox, capped at maxReadSize.
func (s *SandboxedFS) ReadFile(path string) (string, error) {
	if !s.isAllowed(path) {
		return "", fmt.Errorf("read %s: %w", path, ErrNotAllowed)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxReadSize {
		return "", fmt.Errorf("read %s: %w (max %d bytes)", path, ErrTooLarge, maxReadSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isAllowed resolves path and checks it sits under one of the roots.
// Relative paths are taken against the first root.
func (s *SandboxedFS) isAllowed(path string) bool {
	if !filepath.IsAbs(path) {
		if len(s.roots) == 0 {
			return false
		}
		path = filepath.Join(s.roots[0], path)
	}
	canon, err := canonicalPath(path)
	if err != nil {
		// The path may not exist. Fall back to a lexical walk that
		// refuses to climb above the filesystem root.
		canon = normalizePath(path)
		if canon == "" {
			return false
		}
	}
	for _, root := range s.roots {
		if canon == root || strings.HasPrefix(canon, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// canonicalPath makes path absolute and resolves symlinks.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// normalizePath removes "." and ".." components without touching the
// filesystem. Returns "" when the path would escape above the root.
func normalizePath(path string) string {
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		switch part {
		case "", ".":
		case "..":
			if len(parts) == 0 {
				return ""
			}
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, part)
		}
	}
	return "/" + strings.Join(parts, "/")
}
