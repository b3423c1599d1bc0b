package builtin

import (
	"sync"

	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

// ActorLog holds per-code log level overrides for actor debug output.
type ActorLog struct {
	sync.RWMutex
	Actors map[cid.Cid]rtt.LogLevel
}

var actorLogSingle = &ActorLog{Actors: make(map[cid.Cid]rtt.LogLevel)}

func SetActorsLogLevel(logLevel rtt.LogLevel, actors ...runtime.VMActor) {
	actorLogSingle.Lock()
	defer actorLogSingle.Unlock()

	for _, actor := range actors {
		actorLogSingle.Actors[actor.Code()] = logLevel
	}
}

// ResetActorsLogLevel drops the overrides of the given actors.
func ResetActorsLogLevel(actors ...runtime.VMActor) {
	actorLogSingle.Lock()
	defer actorLogSingle.Unlock()

	for _, actor := range actors {
		delete(actorLogSingle.Actors, actor.Code())
	}
}

func GetActorLogLevel(actor runtime.VMActor, defValue rtt.LogLevel) rtt.LogLevel {
	actorLogSingle.RLock()
	defer actorLogSingle.RUnlock()

	actorLogLevel, ok := actorLogSingle.Actors[actor.Code()]
	if ok {
		return actorLogLevel
	}

	return defValue
}

// ParseLogLevel maps a level name as accepted on the command line to a runtime log level.
func ParseLogLevel(name string) (rtt.LogLevel, bool) {
	switch name {
	case "debug":
		return rtt.DEBUG, true
	case "info":
		return rtt.INFO, true
	case "warn":
		return rtt.WARN, true
	case "error":
		return rtt.ERROR, true
	}
	return rtt.DEBUG, false
}
