package models

import "strconv"

// Key addresses one entity row either by its autoincrement row id or by its
// stable id. The zero Key matches nothing.
type Key struct {
	rowID    int64
	stableID string
	byRow    bool
}

func ByRowID(id int64) Key {
	return Key{rowID: id, byRow: true}
}

func ByStableID(id string) Key {
	return Key{stableID: id}
}

// RowID returns the row id and true when k was built with ByRowID.
func (k Key) RowID() (int64, bool) {
	return k.rowID, k.byRow
}

// StableID returns the stable id and true when k was built with ByStableID.
func (k Key) StableID() (string, bool) {
	return k.stableID, !k.byRow && k.stableID != ""
}

func (k Key) String() string {
	if k.byRow {
		return "row:" + strconv.FormatInt(k.rowID, 10)
	}
	return "stable:" + k.stableID
}

// Created reports the identifiers assigned to a newly inserted row.
type Created struct {
	RowID    int64
	StableID string
}
