// Package kv implements the key-value table used as the device's persisted
// string store.
//
// # Overview
//
// Every key maps to one text value. Writes are upserts, deletes are
// idempotent and reads of a missing key return (nil, nil) so callers can
// tell "absent" from "empty". Higher layers (see package scoped) decide
// which keys exist and how values are encoded.
//
// # Schema
//
//	CREATE TABLE kv (
//	    key   TEXT PRIMARY KEY,
//	    value TEXT NOT NULL
//	);
package kv
