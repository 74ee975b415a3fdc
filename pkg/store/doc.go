// Package store defines the resource store abstraction and its error
// taxonomy.
//
// The store owns all mutable state of the service: the resource map,
// the monotonic id counter, and the admin identity. Implementations
// must guarantee mutual exclusion of operations against the same
// store instance; callers observe every operation as an atomic,
// synchronous computation.
//
// Every error an operation can return is an expected, recoverable
// outcome for the caller. The store itself never logs and never
// retries; each call is independent.
package store
