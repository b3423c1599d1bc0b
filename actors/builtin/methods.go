package builtin

import (
	"github.com/tokenvest/vesting-actors/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type vestingMethods struct {
	Constructor              abi.MethodNum
	Receive                  abi.MethodNum
	RegisterVestingAccount   abi.MethodNum
	DeregisterVestingAccount abi.MethodNum
	UpdateMasterAddress      abi.MethodNum
	Claim                    abi.MethodNum
	MasterAddress            abi.MethodNum
	VestingAccounts          abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8}
