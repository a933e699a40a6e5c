// Package services provides business logic for content operations. Every
// mutation validates against its content type's schema, re-checks the admin
// capability itself, and releases replaced or orphaned stored files before
// committing the record change.
package services

import (
	"context"
	"errors"
	"sort"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/storage"
	"github.com/coopfed/portal/internal/validation"
)

// Content service errors
var (
	// ErrForbidden is returned when a mutation is attempted by a caller
	// without the admin role.
	ErrForbidden = errors.New("admin role required")
	// ErrStorageRelease is returned when releasing an owned file fails;
	// the enclosing mutation is aborted so no reference is orphaned or
	// mis-linked.
	ErrStorageRelease = errors.New("failed to release stored file")
)

// refOwner is implemented by content records that own storage references.
type refOwner interface {
	StorageRefs() map[string]string
}

// updateContent applies a partial update to one record. Validation of the
// whole field set completes before anything else happens; replaced storage
// references are released strictly before the patch is committed, and a
// release failure aborts the update with no fields applied. Fields whose
// reference is unchanged are dropped from the patch; an empty resulting
// patch is a no-op.
func updateContent[T any, PT interface {
	*T
	refOwner
}](ctx context.Context, repo *repos.ContentRepository[T], store storage.Store,
	schema validation.Schema, ident auth.Identity, id uint, fields map[string]interface{}) error {
	if !ident.IsAdmin() {
		return ErrForbidden
	}
	record, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	patch, err := schema.CleanPartial(fields)
	if err != nil {
		return err
	}

	toRelease := stageRefs(PT(record).StorageRefs(), patch)
	if len(patch) == 0 {
		return nil
	}
	if err := releaseRefs(ctx, store, toRelease); err != nil {
		return err
	}
	return repo.Patch(ctx, id, patch)
}

// deleteContent removes one record, releasing every owned file first. A
// release failure leaves the record in place: removing it first would
// orphan the file with no way to find it again.
func deleteContent[T any, PT interface {
	*T
	refOwner
}](ctx context.Context, repo *repos.ContentRepository[T], store storage.Store,
	ident auth.Identity, id uint) error {
	if !ident.IsAdmin() {
		return ErrForbidden
	}
	record, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := releaseRefs(ctx, store, PT(record).StorageRefs()); err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// stageRefs trims no-op storage-reference fields from the patch and returns
// the replaced references to release, keyed by field name.
func stageRefs(current map[string]string, patch map[string]interface{}) map[string]string {
	toRelease := make(map[string]string)
	for field, oldRef := range current {
		newVal, present := patch[field]
		if !present {
			continue
		}
		newRef, _ := newVal.(string)
		if newRef == oldRef {
			delete(patch, field)
			continue
		}
		toRelease[field] = oldRef
	}
	return toRelease
}

// releaseRefs releases the given files in deterministic field order,
// skipping empty references.
func releaseRefs(ctx context.Context, store storage.Store, refs map[string]string) error {
	fields := make([]string, 0, len(refs))
	for field := range refs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		ref := refs[field]
		if ref == "" {
			continue
		}
		if err := store.Delete(ctx, ref); err != nil {
			return errors.Join(ErrStorageRelease, err)
		}
	}
	return nil
}
