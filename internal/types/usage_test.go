package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageTable_UpgradeOnly(t *testing.T) {
	u := NewUsageTable()
	listInt := List(Int)

	u.Mark(listInt, false)
	assert.Len(t, u.ActualOnly(), 0)
	assert.Len(t, u.Entries(), 1)

	u.Mark(listInt, true)
	assert.Len(t, u.ActualOnly(), 1)

	// Marking actual again, then speculative, must never downgrade.
	u.Mark(listInt, false)
	assert.True(t, u.Entries()[0].Actual)
}

func TestUsageTable_IgnoresScalars(t *testing.T) {
	u := NewUsageTable()
	u.Mark(Int, true)
	assert.Empty(t, u.Entries())
}

func TestUsageTable_FirstSeenOrder(t *testing.T) {
	u := NewUsageTable()
	u.Mark(List(Int), true)
	u.Mark(Set(Str), true)
	u.Mark(List(Int), true)

	entries := u.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "list<int>", entries[0].Type.String())
	assert.Equal(t, "set<str>", entries[1].Type.String())
}
