// File: errors.go
// Role: sentinel errors for the twopath package.
package twopath

import "errors"

// ErrCacheInconsistency is returned by DebugCache when an incremental
// update diverges from the slow recomputed count. Fatal by contract:
// SPEC_FULL.md §7 treats this as a debug-only assertion failure.
var ErrCacheInconsistency = errors.New("twopath: cache inconsistent with recomputed count")
