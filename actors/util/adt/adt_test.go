package adt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/ipld"
)

func TestMap(t *testing.T) {
	store := ipld.NewADTStore(context.Background())

	t.Run("put get delete", func(t *testing.T) {
		m, err := adt.MakeEmptyMap(store, 5)
		require.NoError(t, err)
		emptyRoot, err := m.Root()
		require.NoError(t, err)

		v := cbg.CborInt(7)
		require.NoError(t, m.Put(abi.StringKey("a"), &v))

		var out cbg.CborInt
		found, err := m.Get(abi.StringKey("a"), &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, cbg.CborInt(7), out)

		has, err := m.Has(abi.StringKey("b"))
		require.NoError(t, err)
		assert.False(t, has)

		require.Error(t, m.Delete(abi.StringKey("b")))
		deleted, err := m.TryDelete(abi.StringKey("a"))
		require.NoError(t, err)
		assert.True(t, deleted)

		empty, err := m.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)

		root, err := m.Root()
		require.NoError(t, err)
		assert.Equal(t, emptyRoot, root)
	})

	t.Run("reload from root", func(t *testing.T) {
		m, err := adt.MakeEmptyMap(store, 5)
		require.NoError(t, err)
		for _, k := range []string{"x", "y", "z"} {
			v := cbg.CborInt(len(k))
			require.NoError(t, m.Put(abi.StringKey(k), &v))
		}
		root, err := m.Root()
		require.NoError(t, err)

		reloaded, err := adt.AsMap(store, root, 5)
		require.NoError(t, err)
		keys, err := reloaded.CollectKeys()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"x", "y", "z"}, keys)

		var out cbg.CborInt
		found, err := reloaded.Pop(abi.StringKey("y"), &out)
		require.NoError(t, err)
		assert.True(t, found)
		found, err = reloaded.Has(abi.StringKey("y"))
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestNestedMap(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	nm, err := adt.MakeEmptyNestedMap(store, 5, 5)
	require.NoError(t, err)
	emptyRoot, err := nm.Root()
	require.NoError(t, err)

	put := func(outer, inner string, val int64) {
		v := cbg.CborInt(val)
		require.NoError(t, nm.Put(abi.StringKey(outer), abi.StringKey(inner), &v))
	}
	put("alice", "a", 1)
	put("alice", "b", 2)
	put("bob", "a", 3)

	var out cbg.CborInt
	found, err := nm.Get(abi.StringKey("alice"), abi.StringKey("b"), &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cbg.CborInt(2), out)

	found, err = nm.Has(abi.StringKey("carol"), abi.StringKey("a"))
	require.NoError(t, err)
	assert.False(t, found)

	var inner []string
	require.NoError(t, nm.ForEachInner(abi.StringKey("alice"), &out, func(k string) error {
		inner = append(inner, k)
		return nil
	}))
	assert.ElementsMatch(t, []string{"a", "b"}, inner)

	outer := map[string]int{}
	require.NoError(t, nm.ForEach(func(k string, m *adt.Map) error {
		keys, err := m.CollectKeys()
		outer[k] = len(keys)
		return err
	}))
	assert.Equal(t, map[string]int{"alice": 2, "bob": 1}, outer)

	deleted, err := nm.TryDelete(abi.StringKey("alice"), abi.StringKey("zzz"))
	require.NoError(t, err)
	assert.False(t, deleted)

	for _, k := range [][2]string{{"alice", "a"}, {"alice", "b"}, {"bob", "a"}} {
		deleted, err := nm.TryDelete(abi.StringKey(k[0]), abi.StringKey(k[1]))
		require.NoError(t, err)
		assert.True(t, deleted)
	}
	root, err := nm.Root()
	require.NoError(t, err)
	assert.Equal(t, emptyRoot, root)
}

func TestArrayAppendContinuous(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	arr, err := adt.MakeEmptyArray(store, 3)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		v := cbg.CborInt(i * 10)
		require.NoError(t, arr.AppendContinuous(&v))
	}
	assert.Equal(t, uint64(20), arr.Length())

	root, err := arr.Root()
	require.NoError(t, err)
	reloaded, err := adt.AsArray(store, root, 3)
	require.NoError(t, err)

	var out cbg.CborInt
	found, err := reloaded.Get(13, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cbg.CborInt(130), out)

	var seen []int64
	require.NoError(t, reloaded.ForEach(&out, func(i int64) error {
		assert.Equal(t, cbg.CborInt(i*10), out)
		seen = append(seen, i)
		return nil
	}))
	assert.Len(t, seen, 20)
}
