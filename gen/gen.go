package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/vm"
)

func main() {
	// Common types
	if err := gen.WriteTupleEncodersToFile("./actors/abi/cbor_gen.go", "abi",
		abi.Denom{},
		abi.Coin{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/cbor_gen.go", "builtin",
		builtin.Transfer{},
		builtin.Attribute{},
		builtin.Response{},
	); err != nil {
		panic(err)
	}

	// Actors
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.VestingAccount{},
		vesting.VestingSchedule{},
		vesting.LinearVesting{},
		vesting.PeriodicVesting{},
		vesting.CliffVesting{},
		vesting.CliffRelease{},
		// method params
		vesting.ConstructorParams{},
		vesting.TokenReceiveParams{},
		vesting.RegisterVestingAccountParams{},
		vesting.DeregisterVestingAccountParams{},
		vesting.UpdateMasterAddressParams{},
		vesting.ClaimParams{},
		vesting.VestingAccountsParams{},
		// method returns
		vesting.MasterAddressReturn{},
		vesting.VestingAccountsReturn{},
		vesting.VestingData{},
	); err != nil {
		panic(err)
	}

	// Host
	if err := gen.WriteTupleEncodersToFile("./support/vm/cbor_gen.go", "vm",
		vm.ActorEntry{},
		vm.Receipt{},
	); err != nil {
		panic(err)
	}
}
