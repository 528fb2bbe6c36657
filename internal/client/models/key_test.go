package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	k := ByRowID(7)
	id, ok := k.RowID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	_, ok = k.StableID()
	assert.False(t, ok)
	assert.Equal(t, "row:7", k.String())

	k = ByStableID("local_1_abc")
	sid, ok := k.StableID()
	assert.True(t, ok)
	assert.Equal(t, "local_1_abc", sid)
	_, ok = k.RowID()
	assert.False(t, ok)
	assert.Equal(t, "stable:local_1_abc", k.String())

	var zero Key
	_, ok = zero.RowID()
	assert.False(t, ok)
	_, ok = zero.StableID()
	assert.False(t, ok)
}
