// Package store implements a per-namespace, file-backed key-value
// configuration store with dot-notation nested access.
//
// Each Store owns a single JSON document persisted at a path derived
// from its namespace (see lib/confpath). The file and its parent
// directories are created lazily on the first mutating operation;
// reads before any write observe construction-time defaults merged
// with whatever already exists on disk.
//
// Freshness over performance: there is no in-memory cache. Every
// accessor re-reads and re-parses the file so edits made by other
// processes are always observed, and every mutator rewrites the whole
// document. Defaults are re-merged on each materialization; persisted
// values always win, so repeated merging is idempotent.
//
// Dots in keys always denote nesting. A literal key containing a dot
// cannot be addressed.
//
// Concurrency: there is no cross-process locking. Multiple writers
// racing on the same path get last-write-wins semantics with no lost
// update detection. The contract is a single logical writer at a time.
package store
