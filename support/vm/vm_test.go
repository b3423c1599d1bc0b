package vm_test

import (
	"context"
	"testing"
	"time"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/vm"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

var (
	genesisTime = time.Unix(1_700_000_000, 0)
	uvest       = abi.NativeDenom("uvest")
)

func now(clock interface{ Now() time.Time }) abi.Timestamp {
	return abi.Timestamp(clock.Now().Unix())
}

func TestGenesis(t *testing.T) {
	ctx := context.Background()
	master := tutil.NewIDAddr(t, 101)
	v, _ := vm.NewVMWithVesting(ctx, t, master, genesisTime)

	var ret vesting.MasterAddressReturn
	require.NoError(t, v.Query(builtin.MethodsVesting.MasterAddress, nil, &ret))
	assert.Equal(t, master, ret.MasterAddress)

	// A second genesis is refused.
	require.Error(t, v.Genesis(master))

	receipts, err := v.Receipts()
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, builtin.MethodConstructor, receipts[0].Method)
	assert.Equal(t, exitcode.Ok, receipts[0].Code())
	assert.Equal(t, abi.Timestamp(genesisTime.Unix()), receipts[0].Time)

	vm.CheckVestingInvariants(t, v)
}

func TestNativeRegistrationMovesFunds(t *testing.T) {
	ctx := context.Background()
	master := tutil.NewIDAddr(t, 101)
	v, clock := vm.NewVMWithVesting(ctx, t, master, genesisTime)
	require.NoError(t, v.SetBalance(master, uvest, abi.NewTokenAmount(5000)))
	holder := vm.CreateAccounts(t, v, 1, uvest, big.Zero())[0]

	start := now(clock) + 100
	register := &vesting.RegisterVestingAccountParams{
		Address:  holder,
		Schedule: vesting.NewLinearSchedule(start, start+100, abi.NewTokenAmount(1000)),
	}

	t.Run("deposit mismatch is rolled back", func(t *testing.T) {
		msg := vm.VestingMessage(master, builtin.MethodsVesting.RegisterVestingAccount, register, abi.NewCoin("uvest", 999))
		result := vm.ApplyCode(t, v, msg, vesting.ErrFundsMismatch)
		assert.Empty(t, result.Transfers)

		vm.RequireBalance(t, v, master, uvest, abi.NewTokenAmount(5000))
		vm.RequireBalance(t, v, builtin.VestingActorAddr, uvest, big.Zero())
	})

	t.Run("insufficient balance fails before invocation", func(t *testing.T) {
		msg := vm.VestingMessage(master, builtin.MethodsVesting.RegisterVestingAccount, register, abi.NewCoin("uvest", 6000))
		vm.ApplyCode(t, v, msg, exitcode.SysErrInsufficientFunds)
		vm.RequireBalance(t, v, master, uvest, abi.NewTokenAmount(5000))
	})

	t.Run("exact deposit is credited to the actor", func(t *testing.T) {
		msg := vm.VestingMessage(master, builtin.MethodsVesting.RegisterVestingAccount, register, abi.NewCoin("uvest", 1000))
		result := vm.ApplyOk(t, v, msg)
		resp, ok := result.Ret.(*builtin.Response)
		require.True(t, ok)
		action, _ := resp.Attribute("action")
		assert.Equal(t, "register_vesting_account", action)

		vm.RequireBalance(t, v, master, uvest, abi.NewTokenAmount(4000))
		vm.RequireBalance(t, v, builtin.VestingActorAddr, uvest, abi.NewTokenAmount(1000))
		summary := vm.CheckVestingInvariants(t, v)
		assert.Equal(t, 1, summary.AccountCount)
	})

	t.Run("claims pay the holder out of the actor", func(t *testing.T) {
		clock.Advance(150 * time.Second)
		claim := &vesting.ClaimParams{Denoms: []abi.Denom{uvest}}
		result := vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, claim))
		require.Len(t, result.Transfers, 1)
		assert.Equal(t, holder, result.Transfers[0].Recipient)

		vm.RequireBalance(t, v, holder, uvest, abi.NewTokenAmount(500))
		vm.RequireBalance(t, v, builtin.VestingActorAddr, uvest, abi.NewTokenAmount(500))

		// Nothing more is claimable at the same time.
		result = vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, claim))
		assert.Empty(t, result.Transfers)

		clock.Advance(time.Hour)
		vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, claim))
		vm.RequireBalance(t, v, holder, uvest, abi.NewTokenAmount(1000))
		vm.RequireBalance(t, v, builtin.VestingActorAddr, uvest, big.Zero())

		summary := vm.CheckVestingInvariants(t, v)
		assert.Equal(t, 0, summary.AccountCount)
	})
}

func TestTokenRegistration(t *testing.T) {
	ctx := context.Background()
	master := tutil.NewIDAddr(t, 101)
	token := tutil.NewActorAddr(t, "token")
	tokenDenom := abi.TokenDenom(token)
	v, clock := vm.NewVMWithVesting(ctx, t, master, genesisTime)
	require.NoError(t, v.SetBalance(master, tokenDenom, abi.NewTokenAmount(300)))
	holder := tutil.NewIDAddr(t, 2000)

	release := now(clock) + 10
	hook := &vesting.RegisterVestingAccountParams{
		Address:  holder,
		Schedule: vesting.NewCliffSchedule(vesting.CliffRelease{ReleaseTime: release, Amount: abi.NewTokenAmount(300)}),
	}

	t.Run("sender other than the master is refused", func(t *testing.T) {
		stranger := tutil.NewIDAddr(t, 2001)
		require.NoError(t, v.SetBalance(stranger, tokenDenom, abi.NewTokenAmount(300)))
		result := v.SendTokens(token, stranger, abi.NewTokenAmount(300), hook)
		assert.Equal(t, exitcode.ErrForbidden, result.Code)
		vm.RequireBalance(t, v, stranger, tokenDenom, abi.NewTokenAmount(300))
	})

	t.Run("master registers through the token hook", func(t *testing.T) {
		result := v.SendTokens(token, master, abi.NewTokenAmount(300), hook)
		require.Equal(t, exitcode.Ok, result.Code, result.Message)
		vm.RequireBalance(t, v, master, tokenDenom, big.Zero())
		vm.RequireBalance(t, v, builtin.VestingActorAddr, tokenDenom, abi.NewTokenAmount(300))

		var accounts vesting.VestingAccountsReturn
		require.NoError(t, v.Query(builtin.MethodsVesting.VestingAccounts, &vesting.VestingAccountsParams{Address: holder}, &accounts))
		require.Len(t, accounts.Vestings, 1)
		assert.Equal(t, tokenDenom, accounts.Vestings[0].Denom)
		assert.True(t, accounts.Vestings[0].ClaimableAmount.IsZero())
	})

	t.Run("claim after the cliff", func(t *testing.T) {
		clock.Advance(10 * time.Second)
		claim := &vesting.ClaimParams{Denoms: []abi.Denom{tokenDenom}}
		vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, claim))
		vm.RequireBalance(t, v, holder, tokenDenom, abi.NewTokenAmount(300))
		vm.CheckVestingInvariants(t, v)
	})
}

func TestDispatchErrors(t *testing.T) {
	ctx := context.Background()
	master := tutil.NewIDAddr(t, 101)
	v, _ := vm.NewVMWithVesting(ctx, t, master, genesisTime)

	t.Run("unknown method", func(t *testing.T) {
		vm.ApplyCode(t, v, vm.VestingMessage(master, 99, nil), exitcode.SysErrInvalidMethod)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		msg := vm.Message{From: master, To: tutil.NewIDAddr(t, 5555), Method: builtin.MethodsVesting.Claim, Params: &vesting.ClaimParams{}}
		vm.ApplyCode(t, v, msg, exitcode.SysErrInvalidReceiver)
	})

	t.Run("undecodable params", func(t *testing.T) {
		vm.ApplyCode(t, v, vm.VestingMessage(master, builtin.MethodsVesting.Claim, adt.Empty), exitcode.ErrSerialization)
	})

	t.Run("query of a failing method reports its code", func(t *testing.T) {
		err := v.Query(builtin.MethodsVesting.RegisterVestingAccount, &vesting.RegisterVestingAccountParams{Address: master}, &builtin.Response{})
		require.Error(t, err)
		assert.Equal(t, exitcode.ErrForbidden, exitcode.Unwrap(err, exitcode.Ok))
	})

	receipts, err := v.Receipts()
	require.NoError(t, err)
	// Genesis plus three failed messages; queries leave no receipt.
	require.Len(t, receipts, 4)
	for i, r := range receipts {
		assert.Equal(t, uint64(i), r.Seq)
	}
	assert.Equal(t, exitcode.SysErrInvalidMethod, receipts[1].Code())
	assert.NotEmpty(t, receipts[1].Message)
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	master := tutil.NewIDAddr(t, 101)
	v, clock := vm.NewVMWithVesting(ctx, t, master, genesisTime, vm.WithRegisterer(reg))
	require.NoError(t, v.SetBalance(master, uvest, abi.NewTokenAmount(100)))

	holder := tutil.NewIDAddr(t, 2000)
	start := now(clock)
	register := &vesting.RegisterVestingAccountParams{
		Address:  holder,
		Schedule: vesting.NewLinearSchedule(start, start+10, abi.NewTokenAmount(100)),
	}
	vm.ApplyOk(t, v, vm.VestingMessage(master, builtin.MethodsVesting.RegisterVestingAccount, register, abi.NewCoin("uvest", 100)))
	clock.Advance(20 * time.Second)
	vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, &vesting.ClaimParams{Denoms: []abi.Denom{uvest}}))

	// Constructor, register and claim each land in their own method series.
	n, err := testutil.GatherAndCount(reg, "vesting_vm_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = testutil.GatherAndCount(reg, "vesting_vm_transfers_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSetBalanceValidation(t *testing.T) {
	ctx := context.Background()
	master := tutil.NewIDAddr(t, 101)
	v, _ := vm.NewVMWithVesting(ctx, t, master, genesisTime)

	require.Error(t, v.SetBalance(master, abi.NativeDenom(""), abi.NewTokenAmount(1)))
	require.Error(t, v.SetBalance(master, uvest, abi.NewTokenAmount(-1)))

	require.NoError(t, v.SetBalance(master, uvest, abi.NewTokenAmount(7)))
	vm.RequireBalance(t, v, master, uvest, abi.NewTokenAmount(7))
	require.NoError(t, v.SetBalance(master, uvest, big.Zero()))
	vm.RequireBalance(t, v, master, uvest, big.Zero())

	unknown, err := v.GetBalance(tutil.NewIDAddr(t, 9999), uvest)
	require.NoError(t, err)
	assert.True(t, unknown.IsZero())
}
