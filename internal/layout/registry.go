package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Registry maps the logical names to absolute directories under one
// project root. Construct it with Validate or Resolve; the root never
// changes afterwards.
type Registry struct {
	root  string
	paths map[string]string
}

// Validate resolves root to an absolute path and checks every required
// segment, including intermediates, for non-directory conflicts. It
// never touches the filesystem beyond stat calls; no partial registry
// is returned on error.
func Validate(root string) (*Registry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	r := &Registry{root: abs, paths: make(map[string]string, len(names))}
	for _, name := range names {
		r.paths[name] = filepath.Join(append([]string{abs}, segments[name]...)...)
	}

	for _, name := range names {
		if err := r.checkSegments(name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Resolve validates root and creates every missing directory, parents
// included. Resolving the same root twice is a no-op: existing
// directories and their contents are left alone.
func Resolve(root string) (*Registry, error) {
	r, err := Validate(root)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := os.MkdirAll(r.paths[name], 0o755); err != nil {
			return nil, fmt.Errorf("create %s directory: %w", name, err)
		}
	}
	return r, nil
}

// checkSegments walks each path component below the root looking for a
// non-directory squatting on a required segment.
func (r *Registry) checkSegments(name string) error {
	p := r.root
	for _, seg := range segments[name] {
		p = filepath.Join(p, seg)
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			return &ConflictError{Name: name, Path: p}
		}
	}
	return nil
}

// Root returns the absolute project root.
func (r *Registry) Root() string {
	return r.root
}

// Get returns the absolute directory for a logical name.
func (r *Registry) Get(name string) (string, error) {
	p, ok := r.paths[name]
	if !ok {
		return "", &UnknownNameError{Name: name}
	}
	return p, nil
}

// Names returns the logical names in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(names)
}

// All returns a copy of the full name to directory mapping.
func (r *Registry) All() map[string]string {
	m := make(map[string]string, len(r.paths))
	for k, v := range r.paths {
		m[k] = v
	}
	return m
}

// Missing returns the target directories that do not exist yet, in
// declaration order. Conflicting non-directory files surface as a
// ConflictError, the same as in Validate.
func (r *Registry) Missing() ([]string, error) {
	var missing []string
	for _, name := range names {
		info, err := os.Stat(r.paths[name])
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, r.paths[name])
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", r.paths[name], err)
		}
		if !info.IsDir() {
			return nil, &ConflictError{Name: name, Path: r.paths[name]}
		}
	}
	return missing, nil
}
