// Package scoped layers per-user collections on top of the key-value
// repository.
//
// # Overview
//
// A collection name such as "favorites" is stored under
// "<collection>_<userID>" while a session is active and under the bare
// name otherwise. The session itself and other fixed keys are reached
// through the raw Get, Set and Delete methods.
//
// # Concurrency
//
// Collection.Read followed by Collection.Write is not atomic: two callers
// interleaving read and write lose one of the updates. Collection.Modify
// runs the whole read-modify-write cycle under the store's mutex and is what
// the services use. The mutex covers one process only.
//
// # Corruption
//
// A value that is not a JSON array makes Read return an empty slice
// together with a *ParseError, leaving the policy to the caller. Modify
// logs the ParseError and starts over from an empty list, which repairs the
// stored value on the next write.
package scoped
