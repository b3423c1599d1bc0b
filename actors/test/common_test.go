package test

import (
	"testing"
	"time"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/vm"
)

var genesisTime = time.Unix(1_700_000_000, 0)

func registerLinear(t *testing.T, v *vm.VM, master, holder addr.Address, accountMaster *addr.Address, denom string, start, end abi.Timestamp, amount int64) {
	params := vesting.RegisterVestingAccountParams{
		Address:       holder,
		MasterAddress: accountMaster,
		Schedule:      vesting.NewLinearSchedule(start, end, abi.NewTokenAmount(amount)),
	}
	vm.ApplyOk(t, v, vm.VestingMessage(master, builtin.MethodsVesting.RegisterVestingAccount, &params, abi.NewCoin(denom, amount)))
}

func claim(t *testing.T, v *vm.VM, holder addr.Address, denoms ...abi.Denom) vm.MessageResult {
	return vm.ApplyOk(t, v, vm.VestingMessage(holder, builtin.MethodsVesting.Claim, &vesting.ClaimParams{Denoms: denoms}))
}

func queryAccounts(t *testing.T, v *vm.VM, holder addr.Address) []vesting.VestingData {
	var ret vesting.VestingAccountsReturn
	require.NoError(t, v.Query(builtin.MethodsVesting.VestingAccounts, &vesting.VestingAccountsParams{Address: holder}, &ret))
	return ret.Vestings
}

// advanceTo moves the clock to genesis plus offset seconds.
func advanceTo(clock interface {
	Now() time.Time
	Advance(time.Duration)
}, offset int64) {
	target := genesisTime.Add(time.Duration(offset) * time.Second)
	clock.Advance(target.Sub(clock.Now()))
}
