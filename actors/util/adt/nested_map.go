package adt

import (
	"errors"

	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

// NestedMap stores values under a two-part key in a HAMT of HAMTs.
// The outer HAMT maps the first key part to the root of an inner HAMT, which maps the second
// key part to the value. Inner maps are removed once they become empty.
type NestedMap struct {
	mp            *Map
	innerBitwidth int
}

// Interprets a store as a HAMT-based map of HAMTs with root `r`.
func AsNestedMap(s Store, r cid.Cid, outerBitwidth, innerBitwidth int) (*NestedMap, error) {
	m, err := AsMap(s, r, outerBitwidth)
	if err != nil {
		return nil, err
	}
	return &NestedMap{mp: m, innerBitwidth: innerBitwidth}, nil
}

// Creates a new map backed by an empty HAMT.
func MakeEmptyNestedMap(s Store, outerBitwidth, innerBitwidth int) (*NestedMap, error) {
	m, err := MakeEmptyMap(s, outerBitwidth)
	if err != nil {
		return nil, err
	}
	return &NestedMap{mp: m, innerBitwidth: innerBitwidth}, nil
}

// Writes a new empty nested map to the store, returning its CID.
func StoreEmptyNestedMap(s Store, outerBitwidth, innerBitwidth int) (cid.Cid, error) {
	nm, err := MakeEmptyNestedMap(s, outerBitwidth, innerBitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return nm.Root()
}

// Returns the root cid of the outer HAMT.
func (nm *NestedMap) Root() (cid.Cid, error) {
	return nm.mp.Root()
}

// Get retrieves the value under (outer, inner) into `out`. Returns whether it was found.
func (nm *NestedMap) Get(outer, inner abi.Keyer, out cbor.Unmarshaler) (bool, error) {
	m, found, err := nm.inner(outer)
	if err != nil || !found {
		return false, err
	}
	return m.Get(inner, out)
}

// Has checks for the existence of (outer, inner) without deserializing the value.
func (nm *NestedMap) Has(outer, inner abi.Keyer) (bool, error) {
	m, found, err := nm.inner(outer)
	if err != nil || !found {
		return false, err
	}
	return m.Has(inner)
}

// Put stores `v` under (outer, inner), creating the inner map if necessary.
func (nm *NestedMap) Put(outer, inner abi.Keyer, v cbor.Marshaler) error {
	m, found, err := nm.inner(outer)
	if err != nil {
		return err
	}
	if !found {
		if m, err = MakeEmptyMap(nm.mp.store, nm.innerBitwidth); err != nil {
			return xerrors.Errorf("failed to create inner map for key %v: %w", outer.Key(), err)
		}
	}
	if err := m.Put(inner, v); err != nil {
		return xerrors.Errorf("failed to put key %v in inner map %v: %w", inner.Key(), outer.Key(), err)
	}
	return nm.putInner(outer, m)
}

// TryDelete removes the value under (outer, inner) if present, returning whether it was.
// The outer entry is removed when its inner map becomes empty.
func (nm *NestedMap) TryDelete(outer, inner abi.Keyer) (bool, error) {
	m, found, err := nm.inner(outer)
	if err != nil || !found {
		return false, err
	}
	deleted, err := m.TryDelete(inner)
	if err != nil || !deleted {
		return false, err
	}
	empty, err := m.IsEmpty()
	if err != nil {
		return false, err
	}
	if empty {
		if err := nm.mp.Delete(outer); err != nil {
			return false, xerrors.Errorf("failed to remove empty inner map %v: %w", outer.Key(), err)
		}
		return true, nil
	}
	return true, nm.putInner(outer, m)
}

// ForEachInner iterates the entries stored under `outer`, deserializing each value into `out`.
func (nm *NestedMap) ForEachInner(outer abi.Keyer, out cbor.Unmarshaler, fn func(key string) error) error {
	m, found, err := nm.inner(outer)
	if err != nil || !found {
		return err
	}
	return m.ForEach(out, fn)
}

// ForEach iterates the outer keys with their inner maps.
func (nm *NestedMap) ForEach(fn func(outer string, inner *Map) error) error {
	var root cbg.CborCid
	return nm.mp.ForEach(&root, func(key string) error {
		m, err := AsMap(nm.mp.store, cid.Cid(root), nm.innerBitwidth)
		if err != nil {
			return xerrors.Errorf("failed to load inner map %v: %w", key, err)
		}
		return fn(key, m)
	})
}

func (nm *NestedMap) inner(outer abi.Keyer) (*Map, bool, error) {
	var root cbg.CborCid
	found, err := nm.mp.Get(outer, &root)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load inner map root %v: %w", outer.Key(), err)
	}
	if !found {
		return nil, false, nil
	}
	m, err := AsMap(nm.mp.store, cid.Cid(root), nm.innerBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load inner map %v: %w", outer.Key(), err)
	}
	return m, true, nil
}

func (nm *NestedMap) putInner(outer abi.Keyer, m *Map) error {
	c, err := m.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush inner map %v: %w", outer.Key(), err)
	}
	root := cbg.CborCid(c)
	if err := nm.mp.Put(outer, &root); err != nil {
		return xerrors.Errorf("failed to store inner map root %v: %w", outer.Key(), err)
	}
	return nil
}

var errStopIteration = errors.New("stop")

// IsEmpty reports whether the map holds no entries.
func (m *Map) IsEmpty() (bool, error) {
	empty := true
	err := m.ForEach(nil, func(string) error {
		empty = false
		return errStopIteration
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return false, err
	}
	return empty, nil
}
