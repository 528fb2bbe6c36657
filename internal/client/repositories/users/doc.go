// Package users stores local accounts in the users table.
//
// Emails are normalized (trimmed and lower-cased) here and nowhere else, so
// every caller sees the same uniqueness rule. Uniqueness is checked before
// writing and backed by a UNIQUE constraint; a concurrent writer that loses
// the race gets ErrEmailTaken rather than overwriting the other account.
package users
