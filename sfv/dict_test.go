package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryAddAppendPrepend(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)

	d2, err := d.Append("a", mustItem(t, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, d2.Keys())

	d3, err := d.Prepend("b", mustItem(t, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, d3.Keys())
}

func TestDictionaryGetMissingKey(t *testing.T) {
	var d Dictionary
	_, err := d.Get("missing")
	require.Error(t, err)
}

func TestDictionaryRemove(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)
	d2 := d.Remove("a")
	assert.Equal(t, []string{"b"}, d2.Keys())
}

func TestDictionaryWithInnerListMember(t *testing.T) {
	inner := NewInnerList([]Item{mustItem(t, 1), mustItem(t, 2)}, Parameters{})
	d, err := NewDictionary(DictPair{Key: "a", Value: inner})
	require.NoError(t, err)
	assert.Equal(t, "a=(1 2)", SerializeDictionary(d))
}

func TestDictionaryBareTrueWithParametersOmitsOnlyEqualsValue(t *testing.T) {
	d, err := ParseDictionary([]byte("c;x=1"))
	require.NoError(t, err)
	assert.Equal(t, "c;x=1", SerializeDictionary(d), "a Boolean-true member keeps its own parameters but drops =?1")
}

func TestDictionaryGetByIndex(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)

	pair, err := d.GetByIndex(-1)
	require.NoError(t, err)
	assert.Equal(t, "b", pair.Key)

	_, err = d.GetByIndex(5)
	require.Error(t, err)
	var offErr *InvalidOffsetError
	require.ErrorAs(t, err, &offErr)
	assert.True(t, offErr.HasIndex)
}

func TestDictionaryRemoveByIndex(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)

	d2 := d.RemoveByIndex(0)
	assert.Equal(t, []string{"b"}, d2.Keys())

	d3 := d.RemoveByIndex(99)
	assert.Equal(t, d.ToHTTPValue(), d3.ToHTTPValue(), "an out-of-range index is ignored")
}

func TestDictionaryPairs(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)

	pairs := d.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", pairs[0].Key)
	assert.Equal(t, "b", pairs[1].Key)
}

func TestDictionaryClear(t *testing.T) {
	d, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)})
	require.NoError(t, err)
	assert.True(t, d.Clear().IsEmpty())
}

func TestDictionaryMergeAddsAndOverwrites(t *testing.T) {
	a, err := NewDictionary(DictPair{Key: "a", Value: mustItem(t, 1)}, DictPair{Key: "b", Value: mustItem(t, 2)})
	require.NoError(t, err)
	b, err := NewDictionary(DictPair{Key: "b", Value: mustItem(t, 99)}, DictPair{Key: "c", Value: mustItem(t, 3)})
	require.NoError(t, err)

	merged := a.Merge(b)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys(), "merge applies add semantics: existing keys update in place")
	assert.Equal(t, "a=1, b=99, c=3", merged.ToHTTPValue())
}
