// Package cloud owns the process-wide Firebase Admin SDK handle.
//
// The handle is created lazily on first use and shared by every request:
// concurrent first callers block on a single initialisation and all observe
// the same clients, or the same remembered error.
package cloud
