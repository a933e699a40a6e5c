package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk is a Store backed by a local directory. Files are stored flat under
// the root, keyed by the uuid minted at upload-URL generation time.
type Disk struct {
	root    string
	baseURL string
}

// NewDisk creates a disk store rooted at dir. baseURL is the externally
// reachable origin used to build upload and download URLs.
func NewDisk(dir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Disk{root: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// UploadPathPrefix is the route files are uploaded to; the upload key is
// appended as the final path segment.
const UploadPathPrefix = "/admin/api/v1/uploads/"

// FilePathPrefix is the public route stored files are served from.
const FilePathPrefix = "/api/v1/files/"

// GenerateUploadURL mints a fresh upload key and returns the absolute URL
// to PUT the file bytes to.
func (d *Disk) GenerateUploadURL(_ context.Context) (string, error) {
	return d.baseURL + UploadPathPrefix + uuid.NewString(), nil
}

// Put stores the file bytes under ref.
func (d *Disk) Put(_ context.Context, ref string, r io.Reader) error {
	path, err := d.path(ref)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to store file %q: %w", ref, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to store file %q: %w", ref, err)
	}
	return f.Close()
}

// URL resolves ref to its public URL, or ok=false when no file exists.
func (d *Disk) URL(_ context.Context, ref string) (string, bool) {
	path, err := d.path(ref)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return d.baseURL + FilePathPrefix + ref, true
}

// Open returns a reader over the stored file.
func (d *Disk) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	path, err := d.path(ref)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete releases the file named by ref. A reference whose file is already
// gone is treated as released: the invariant protected here is "no orphaned
// file", and a missing file cannot be orphaned.
func (d *Disk) Delete(_ context.Context, ref string) error {
	path, err := d.path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to release file %q: %w", ref, err)
	}
	return nil
}

// List returns the references of all stored files.
func (d *Disk) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory: %w", err)
	}
	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			refs = append(refs, e.Name())
		}
	}
	return refs, nil
}

// path maps a reference to its on-disk location, rejecting references that
// would escape the root.
func (d *Disk) path(ref string) (string, error) {
	if ref == "" || strings.ContainsAny(ref, "/\\") || strings.Contains(ref, "..") {
		return "", fmt.Errorf("invalid storage reference %q", ref)
	}
	return filepath.Join(d.root, ref), nil
}
