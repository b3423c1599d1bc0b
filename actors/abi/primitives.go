package abi

import (
	"strconv"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
)

// The abi package contains definitions of all types that cross the VM boundary and are used
// within actor code.
//
// Primitive types include numerics and opaque array types.

// Timestamp is a block time in whole seconds since the unix epoch. It is the only notion of time
// available to actor code.
type Timestamp uint64

func (t Timestamp) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// MethodNum is an integer that represents a particular method
// in an actor's function table. These numbers are used to compress
// invocation of actor code, and to decouple human language concerns
// about method names from the ability to uniquely refer to a particular
// method.
//
// If a method is no longer used, its number should remain reserved so that it is
// not reused accidentally.
type MethodNum uint64

func (e MethodNum) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// TokenAmount is an amount of some denomination. This type is used within
// the VM in message execution and to account movement of tokens.
//
// BigInt types are aliases rather than new types because the latter introduce incredible amounts of noise converting to
// and from types in order to manipulate values. We give up some type safety for ergonomics.
type TokenAmount = big.Int

func NewTokenAmount(t int64) TokenAmount {
	return big.NewInt(t)
}

// Keyer defines an interface required to put values in mapping.
type Keyer interface {
	Key() string
}

// Adapts a string as a mapping key.
type StringKey string

func (k StringKey) Key() string {
	return string(k)
}

// Adapts an address as a mapping key.
type AddrKey addr.Address

func (k AddrKey) Key() string {
	return string(addr.Address(k).Bytes())
}
