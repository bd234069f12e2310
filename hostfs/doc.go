// Package hostfs gives the shell read access to host files through
// go-billy.
//
// It wraps billy's osfs (local) and memfs (in-memory) behind one FS type.
// The shell reads its configuration file and, optionally, a seed directory
// to import into the namespace through it; tests use the in-memory variant.
//
// Usage:
//
//	fsys := hostfs.NewLocal("/")
//	data, err := fsys.ReadFile("etc/dosh.cue")
//
//	// FS satisfies namespace.SourceFS
//	n, err := store.Import(fsys, "home/me/dosfiles", `\`)
//
// FS instances are safe for concurrent use by multiple goroutines.
package hostfs
