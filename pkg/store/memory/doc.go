// Package memory implements store.ResourceStore as a process-local
// map guarded by a single lock.
//
// The store is volatile: nothing is written to disk unless
// the host explicitly calls Snapshot and keeps the blob somewhere.
// On a warm restart the host must call Restore with the prior
// snapshot before the first operation; anything invoked earlier
// observes an empty store.
//
// One sync.RWMutex around the whole store reproduces the
// single-writer execution model of the original runtime on a
// multi-threaded host. Operations never block on anything external,
// so invariants hold continuously between calls and no read ever
// observes a partially applied write.
package memory
