package vm

import (
	"context"
	"testing"
	"time"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/ipld"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

//
// Genesis like setup
//

// NewVMWithVesting creates a VM over an in-memory store, driven by a fake clock set to start,
// with the vesting actor constructed for master.
func NewVMWithVesting(ctx context.Context, t testing.TB, master addr.Address, start time.Time, opts ...Opt) (*VM, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(start)
	v, err := NewVM(ctx, ipld.NewADTStore(ctx), clock, opts...)
	require.NoError(t, err)
	require.NoError(t, v.Genesis(master))
	return v, clock
}

// CreateAccounts returns n fresh ID addresses, each credited with balance of denom.
func CreateAccounts(t testing.TB, v *VM, n int, denom abi.Denom, balance abi.TokenAmount) []addr.Address {
	addrs := make([]addr.Address, n)
	for i := range addrs {
		v.mu.Lock()
		id := builtin.FirstNonSingletonActorId + v.accountsCreated
		v.accountsCreated++
		v.mu.Unlock()

		addrs[i] = tutil.NewIDAddr(t, id)
		require.NoError(t, v.SetBalance(addrs[i], denom, balance))
	}
	return addrs
}

//
// Message helpers
//

// ApplyOk applies msg and requires it to succeed.
func ApplyOk(t testing.TB, v *VM, msg Message) MessageResult {
	return ApplyCode(t, v, msg, exitcode.Ok)
}

// ApplyCode applies msg and requires it to exit with code.
func ApplyCode(t testing.TB, v *VM, msg Message, code exitcode.ExitCode) MessageResult {
	result := v.ApplyMessage(msg)
	require.Equal(t, code, result.Code, "unexpected exit code %v (%s): %s", result.Code, vesting.ErrorKind(result.Code), result.Message)
	return result
}

// VestingMessage addresses a vesting actor method.
func VestingMessage(from addr.Address, method abi.MethodNum, params cbor.Marshaler, funds ...abi.Coin) Message {
	return Message{From: from, To: builtin.VestingActorAddr, Method: method, Params: params, Funds: funds}
}

// RequireBalance asserts the ledger balance of a in denom.
func RequireBalance(t testing.TB, v *VM, a addr.Address, denom abi.Denom, expected abi.TokenAmount) {
	actual, err := v.GetBalance(a, denom)
	require.NoError(t, err)
	require.True(t, expected.Equals(actual), "balance of %v in %v: expected %v, got %v", a, denom, expected, actual)
}

// VestingState loads the vesting actor's state.
func VestingState(t testing.TB, v *VM) *vesting.State {
	var st vesting.State
	require.NoError(t, v.GetState(builtin.VestingActorAddr, &st))
	return &st
}

// CheckVestingInvariants requires the vesting actor's state to satisfy its invariants.
func CheckVestingInvariants(t testing.TB, v *VM) *vesting.StateSummary {
	st := VestingState(t, v)
	summary, msgs := vesting.CheckStateInvariants(st, v.Store(), v.Now())
	require.True(t, msgs.IsEmpty(), "state invariants broken: %v", msgs.Messages())
	return summary
}
