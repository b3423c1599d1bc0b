package abi_test

import (
	"bytes"
	"sort"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

func TestDenomKey(t *testing.T) {
	token, err := addr.NewIDAddress(500)
	require.NoError(t, err)

	native := abi.NativeDenom("uvest")
	tok := abi.TokenDenom(token)
	assert.Equal(t, "native:uvest", native.Key())
	assert.Equal(t, "token:"+token.String(), tok.Key())

	for _, d := range []abi.Denom{native, tok} {
		parsed, err := abi.ParseDenomKey(d.Key())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	// A native denom spelled like an address does not collide with the token.
	assert.NotEqual(t, abi.NativeDenom(token.String()).Key(), tok.Key())

	keys := []string{tok.Key(), abi.NativeDenom("zeta").Key(), native.Key()}
	sort.Strings(keys)
	assert.Equal(t, []string{"native:uvest", "native:zeta", tok.Key()}, keys)

	a, err := tok.TokenAddress()
	require.NoError(t, err)
	assert.Equal(t, token, a)
	_, err = native.TokenAddress()
	require.Error(t, err)
}

func TestDenomValidate(t *testing.T) {
	assert.NoError(t, abi.NativeDenom("uvest").Validate())
	assert.Error(t, abi.NativeDenom("").Validate())
	assert.Error(t, abi.NativeDenom("u vest").Validate())
	assert.Error(t, abi.NativeDenom("native:uvest").Validate())
	assert.Error(t, abi.Denom{Kind: abi.DenomToken, ID: "uvest"}.Validate())
	assert.Error(t, abi.Denom{Kind: 7, ID: "uvest"}.Validate())

	for _, key := range []string{"uvest", "coin:uvest", "native:", "token:nope"} {
		_, err := abi.ParseDenomKey(key)
		assert.Error(t, err, key)
	}
}

func TestDenomEncoding(t *testing.T) {
	in := abi.Coin{Denom: "uvest", Amount: abi.NewTokenAmount(1_000_000)}
	var buf bytes.Buffer
	require.NoError(t, in.MarshalCBOR(&buf))
	var out abi.Coin
	require.NoError(t, out.UnmarshalCBOR(&buf))
	assert.Equal(t, in.Denom, out.Denom)
	assert.True(t, in.Amount.Equals(out.Amount))
}
