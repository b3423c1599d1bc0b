package vesting_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/ipld"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

func TestAccountStore(t *testing.T) {
	master := tutil.NewIDAddr(t, 100)
	alice := tutil.NewIDAddr(t, 101)
	bob := tutil.NewSECP256K1Addr(t, "bob")
	atom := abi.NativeDenom("uatom")
	token := abi.TokenDenom(tutil.NewIDAddr(t, 500))

	newAccount := func(holder addr.Address, denom abi.Denom, amount int64) *vesting.VestingAccount {
		return &vesting.VestingAccount{
			Address:       holder,
			Denom:         denom,
			VestingAmount: abi.NewTokenAmount(amount),
			Schedule:      vesting.NewLinearSchedule(100, 200, abi.NewTokenAmount(amount)),
			ClaimedAmount: big.Zero(),
		}
	}

	setupState := func(t *testing.T) (*vesting.State, adt.Store) {
		store := ipld.NewADTStore(context.Background())
		st, err := vesting.ConstructState(store, master)
		require.NoError(t, err)
		return st, store
	}

	t.Run("add and load", func(t *testing.T) {
		st, store := setupState(t)
		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 1000)))

		account, found, err := st.LoadAccount(store, alice, vestDenom)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, alice, account.Address)
		assert.Equal(t, "1000", account.VestingAmount.String())

		_, found, err = st.LoadAccount(store, alice, atom)
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = st.LoadAccount(store, bob, vestDenom)
		require.NoError(t, err)
		assert.False(t, found)

		_, err = st.MustLoadAccount(store, bob, vestDenom)
		assert.Equal(t, exitcode.ErrNotFound, exitcode.Unwrap(err, exitcode.Ok))
	})

	t.Run("no implicit overwrite", func(t *testing.T) {
		st, store := setupState(t)
		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 1000)))
		err := st.AddAccount(store, newAccount(alice, vestDenom, 5))
		assert.Equal(t, vesting.ErrAccountAlreadyExists, exitcode.Unwrap(err, exitcode.Ok))

		account, err := st.MustLoadAccount(store, alice, vestDenom)
		require.NoError(t, err)
		assert.Equal(t, "1000", account.VestingAmount.String())
	})

	t.Run("save requires existing account", func(t *testing.T) {
		st, store := setupState(t)
		err := st.SaveAccount(store, newAccount(alice, vestDenom, 1000))
		assert.Equal(t, exitcode.ErrNotFound, exitcode.Unwrap(err, exitcode.Ok))

		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 1000)))
		account, err := st.MustLoadAccount(store, alice, vestDenom)
		require.NoError(t, err)
		account.ClaimedAmount = abi.NewTokenAmount(300)
		require.NoError(t, st.SaveAccount(store, account))

		account, err = st.MustLoadAccount(store, alice, vestDenom)
		require.NoError(t, err)
		assert.Equal(t, "300", account.ClaimedAmount.String())
	})

	t.Run("remove", func(t *testing.T) {
		st, store := setupState(t)
		emptyRoot := st.Accounts
		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 1000)))
		require.NoError(t, st.AddAccount(store, newAccount(alice, atom, 10)))

		require.NoError(t, st.RemoveAccount(store, alice, vestDenom))
		has, err := st.HasAccount(store, alice, vestDenom)
		require.NoError(t, err)
		assert.False(t, has)
		has, err = st.HasAccount(store, alice, atom)
		require.NoError(t, err)
		assert.True(t, has)

		err = st.RemoveAccount(store, alice, vestDenom)
		assert.Equal(t, exitcode.ErrNotFound, exitcode.Unwrap(err, exitcode.Ok))

		// Removing the last account of a holder drops the holder entirely.
		require.NoError(t, st.RemoveAccount(store, alice, atom))
		assert.Equal(t, emptyRoot, st.Accounts)
	})

	t.Run("list in denom order", func(t *testing.T) {
		st, store := setupState(t)
		require.NoError(t, st.AddAccount(store, newAccount(alice, token, 1)))
		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 2)))
		require.NoError(t, st.AddAccount(store, newAccount(alice, atom, 3)))
		require.NoError(t, st.AddAccount(store, newAccount(bob, atom, 4)))

		accounts, err := st.ListAccounts(store, alice, nil, 10)
		require.NoError(t, err)
		require.Len(t, accounts, 3)
		assert.Equal(t, atom, accounts[0].Denom)
		assert.Equal(t, vestDenom, accounts[1].Denom)
		assert.Equal(t, token, accounts[2].Denom)

		accounts, err = st.ListAccounts(store, alice, &atom, 1)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, vestDenom, accounts[0].Denom)

		accounts, err = st.ListAccounts(store, tutil.NewIDAddr(t, 999), nil, 10)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("invariants", func(t *testing.T) {
		st, store := setupState(t)
		require.NoError(t, st.AddAccount(store, newAccount(alice, vestDenom, 1000)))
		require.NoError(t, st.AddAccount(store, newAccount(bob, vestDenom, 500)))

		summary, msgs := vesting.CheckStateInvariants(st, store, 150)
		assert.True(t, msgs.IsEmpty(), msgs.Messages())
		assert.Equal(t, 2, summary.AccountCount)
		assert.Equal(t, "1500", summary.Outstanding[vestDenom.Key()].String())

		account, err := st.MustLoadAccount(store, alice, vestDenom)
		require.NoError(t, err)
		account.ClaimedAmount = abi.NewTokenAmount(600)
		require.NoError(t, st.SaveAccount(store, account))

		_, msgs = vesting.CheckStateInvariants(st, store, 150)
		require.Len(t, msgs.Messages(), 1)
		assert.Contains(t, msgs.Messages()[0], "exceeds vested")
	})
}
