// Package namespace implements the shell's in-memory filesystem.
//
// A Store holds a bounded set of entries, each identified by its full
// canonical path (see package vpath). The observable API is flat: every
// operation takes whole paths and Find is an exact-match lookup with no
// normalization. Internally each entry is also filed under its parent path so
// that listing a directory does not scan the whole store.
//
// Two behaviors are deliberate and covered by tests:
//
//   - Delete never cascades. Removing a directory leaves its descendants in
//     place; they remain findable and reappear if the directory is re-created.
//     Callers that need an emptiness precondition use HasDescendants.
//   - Rename does not check that the new path's parent exists, and does not
//     rewrite descendant paths.
//
// Basic usage:
//
//	store := namespace.New()
//	if err := store.ApplySeed(namespace.DefaultSeed()); err != nil {
//	    return err
//	}
//
//	if err := store.CreateFile(`\DOCUMENTS\NOTES.TXT`, []byte("hi")); err != nil {
//	    // errors.GetCode(err) is one of NOT_FOUND, ALREADY_EXISTS,
//	    // WRONG_KIND, CAPACITY_EXCEEDED or INVALID_PATH
//	}
//
//	listing, err := store.List(`\DOCUMENTS`)
package namespace
