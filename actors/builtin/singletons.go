package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses for singleton actors.
var (
	VestingActorAddr = mustMakeAddress(addr.NewIDAddress(100))
)

// FirstNonSingletonActorId is the first ID assigned to accounts created by a host.
const FirstNonSingletonActorId = 1000

func mustMakeAddress(a addr.Address, err error) addr.Address {
	if err != nil {
		panic(err)
	}
	return a
}
