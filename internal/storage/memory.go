package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used by tests. It records every release in
// order and can be told to fail releases of specific references.
type Memory struct {
	mu      sync.Mutex
	files   map[string][]byte
	baseURL string

	// Released holds the references passed to Delete, in call order.
	Released []string
	// FailDelete lists references whose release should fail.
	FailDelete map[string]bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		files:      make(map[string][]byte),
		baseURL:    "http://storage.test",
		FailDelete: make(map[string]bool),
	}
}

// Seed stores a file under ref with placeholder contents.
func (m *Memory) Seed(refs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ref := range refs {
		m.files[ref] = []byte(ref)
	}
}

// GenerateUploadURL mints a fresh upload key.
func (m *Memory) GenerateUploadURL(_ context.Context) (string, error) {
	return m.baseURL + UploadPathPrefix + uuid.NewString(), nil
}

// Put stores the file bytes under ref.
func (m *Memory) Put(_ context.Context, ref string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[ref] = data
	return nil
}

// URL resolves ref, or ok=false when no file is stored under it.
func (m *Memory) URL(_ context.Context, ref string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[ref]; !ok {
		return "", false
	}
	return m.baseURL + FilePathPrefix + ref, true
}

// Open returns a reader over the stored file.
func (m *Memory) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[ref]
	if !ok {
		return nil, fmt.Errorf("no file stored under %q", ref)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete releases the file named by ref, recording the call.
func (m *Memory) Delete(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete[ref] {
		return fmt.Errorf("simulated release failure for %q", ref)
	}
	m.Released = append(m.Released, ref)
	delete(m.files, ref)
	return nil
}

// List returns the references of all stored files.
func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	refs := make([]string, 0, len(m.files))
	for ref := range m.files {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

// Has reports whether a file is stored under ref.
func (m *Memory) Has(ref string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[ref]
	return ok
}
