package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIndex(t *testing.T) {
	cases := []struct {
		n, i  int
		want  int
		found bool
	}{
		{0, 0, 0, false},
		{3, 0, 0, true},
		{3, 2, 2, true},
		{3, 3, 0, false},
		{3, -1, 2, true},
		{3, -3, 0, true},
		{3, -4, 0, false},
	}
	for _, tc := range cases {
		got, ok := normalizeIndex(tc.n, tc.i)
		assert.Equal(t, tc.found, ok, "normalizeIndex(%d, %d)", tc.n, tc.i)
		if ok {
			assert.Equal(t, tc.want, got, "normalizeIndex(%d, %d)", tc.n, tc.i)
		}
	}
}

func TestNormalizeInsertIndex(t *testing.T) {
	cases := []struct {
		n, i  int
		want  int
		found bool
	}{
		{3, 0, 0, true},
		{3, 3, 3, true}, // append
		{3, 4, 0, false},
		{3, -1, 2, true}, // before the last element
		{3, -3, 0, true},
		{3, -4, 0, false},
		{0, 0, 0, true},
	}
	for _, tc := range cases {
		got, ok := normalizeInsertIndex(tc.n, tc.i)
		assert.Equal(t, tc.found, ok, "normalizeInsertIndex(%d, %d)", tc.n, tc.i)
		if ok {
			assert.Equal(t, tc.want, got, "normalizeInsertIndex(%d, %d)", tc.n, tc.i)
		}
	}
}

func TestAddAppendPrependEntrySemantics(t *testing.T) {
	var entries []orderedEntry[int]
	entries = addEntry(entries, "a", 1)
	entries = addEntry(entries, "b", 2)
	entries = addEntry(entries, "a", 10) // update in place, keeps position
	assert.Equal(t, []orderedEntry[int]{{"a", 10}, {"b", 2}}, entries)

	entries = appendEntry(entries, "a", 99) // move to tail
	assert.Equal(t, []orderedEntry[int]{{"b", 2}, {"a", 99}}, entries)

	entries = prependEntry(entries, "a", 5) // move to head
	assert.Equal(t, []orderedEntry[int]{{"a", 5}, {"b", 2}}, entries)
}

func TestRemoveEntriesAndIndices(t *testing.T) {
	entries := []orderedEntry[int]{{"a", 1}, {"b", 2}, {"c", 3}}
	assert.Equal(t, []orderedEntry[int]{{"a", 1}, {"c", 3}}, removeEntries(entries, "b"))
	assert.Equal(t, []orderedEntry[int]{{"a", 1}, {"b", 2}}, removeEntriesByIndex(entries, -1))
}

func TestInsertReplaceRemoveSlices(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{1, 9, 2, 3}, insertAt(s, 1, 9))
	assert.Equal(t, []int{1, 9, 3}, replaceAt(s, 1, 9))
	assert.Equal(t, []int{1, 3}, removeIndices(s, 1))
	assert.Equal(t, []int{1, 2}, removeIndices(s, -1))
}
