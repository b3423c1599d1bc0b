package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	AccountCount int
	// Deposited but not yet claimed, by denom key.
	Outstanding map[string]abi.TokenAmount
}

// Checks internal invariants of vesting state at time now.
func CheckStateInvariants(st *State, store adt.Store, now abi.Timestamp) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	summary := &StateSummary{Outstanding: make(map[string]abi.TokenAmount)}

	acc.Require(st.MasterAddress != addr.Undef, "master address is undefined")

	err := st.ForEachAccount(store, func(holderKey, denomKey string, account *VestingAccount) error {
		summary.AccountCount++
		accAcc := acc.WithPrefix("account %v/%s: ", account.Address, denomKey)

		accAcc.Require(abi.AddrKey(account.Address).Key() == holderKey, "stored under holder key %x", holderKey)
		accAcc.Require(account.Denom.Key() == denomKey, "stored under denom key %s but denom is %v", denomKey, account.Denom)

		total, err := account.Schedule.TotalAmount()
		if err != nil {
			accAcc.Addf("invalid schedule: %v", err)
			return nil
		}
		accAcc.Require(account.VestingAmount.Equals(total), "vesting amount %v differs from schedule total %v", account.VestingAmount, total)
		accAcc.Require(account.ClaimedAmount.GreaterThanEqual(big.Zero()), "negative claimed amount %v", account.ClaimedAmount)
		accAcc.Require(account.ClaimedAmount.LessThan(account.VestingAmount), "fully claimed account %v not removed", account.ClaimedAmount)

		vested, err := account.Vested(now)
		if err != nil {
			accAcc.Addf("failed to compute vested amount: %v", err)
			return nil
		}
		accAcc.Require(account.ClaimedAmount.LessThanEqual(vested), "claimed %v exceeds vested %v", account.ClaimedAmount, vested)

		outstanding, ok := summary.Outstanding[denomKey]
		if !ok {
			outstanding = big.Zero()
		}
		summary.Outstanding[denomKey] = big.Add(outstanding, big.Sub(account.VestingAmount, account.ClaimedAmount))
		return nil
	})
	acc.RequireNoError(err, "failed to iterate accounts")

	return summary, acc
}
