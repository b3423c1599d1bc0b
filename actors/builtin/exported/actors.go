package exported

import (
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/runtime"
)

// BuiltinActors returns the actor implementations a host VM can instantiate.
func BuiltinActors() []runtime.VMActor {
	return []runtime.VMActor{
		vesting.Actor{},
	}
}
