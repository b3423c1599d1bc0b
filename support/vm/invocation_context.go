package vm

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

// invocationContext is the runtime handed to an actor for a single method call.
type invocationContext struct {
	vm  *VM
	msg Message
	// Fixed for the duration of the call.
	now abi.Timestamp

	callerValidated bool
	inTransaction   bool
}

var _ runtime.Runtime = (*invocationContext)(nil)
var _ runtime.StateHandle = (*invocationContext)(nil)
var _ runtime.Message = (*invocationContext)(nil)

func newInvocationContext(vm *VM, now abi.Timestamp, msg Message) *invocationContext {
	return &invocationContext{vm: vm, msg: msg, now: now}
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

// invoke dispatches the message to the receiver's exported method. Aborts raised by the actor
// are recovered and reported as an exit code. Any other panic propagates.
func (ic *invocationContext) invoke() (ret cbor.Marshaler, code exitcode.ExitCode, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			ret, code, errMsg = nil, a.code, a.msg
		}
	}()

	entry, found, err := ic.vm.getActor(ic.msg.To)
	if err != nil {
		panic(err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrInvalidReceiver, "actor %v not found", ic.msg.To)
	}
	impl, ok := ic.vm.actorImpls[entry.Code]
	if !ok {
		ic.Abortf(exitcode.SysErrInvalidReceiver, "actor implementation not found for code %v", entry.Code)
	}

	exports := impl.Exports()
	if uint64(ic.msg.Method) >= uint64(len(exports)) || exports[ic.msg.Method] == nil {
		ic.Abortf(exitcode.SysErrInvalidMethod, "no method %d on actor %s", ic.msg.Method, builtin.ActorNameByCode(entry.Code))
	}
	meth := reflect.ValueOf(exports[ic.msg.Method])
	param := ic.decodeParams(meth.Type().In(1))

	out := meth.Call([]reflect.Value{reflect.ValueOf(ic), param})
	if !ic.callerValidated {
		ic.Abortf(exitcode.SysErrorIllegalActor, "method %d returned without validating caller", ic.msg.Method)
	}

	ret, ok = out[0].Interface().(cbor.Marshaler)
	if !ok || reflect.ValueOf(ret).IsNil() {
		ic.Abortf(exitcode.SysErrorIllegalActor, "method %d returned nil", ic.msg.Method)
	}
	return ret, exitcode.Ok, ""
}

// decodeParams round-trips the message parameters through their serialized form into a fresh
// value of the method's parameter type, so the actor never aliases caller memory.
func (ic *invocationContext) decodeParams(paramType reflect.Type) reflect.Value {
	params := ic.msg.Params
	if params == nil {
		params = adt.Empty
	}
	var buf bytes.Buffer
	if err := params.MarshalCBOR(&buf); err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to encode params: %v", err)
	}
	param := reflect.New(paramType.Elem())
	if err := param.Interface().(cbor.Unmarshaler).UnmarshalCBOR(&buf); err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to decode params as %v: %v", paramType.Elem(), err)
	}
	return param
}

//
// runtime.Runtime
//

func (ic *invocationContext) Message() runtime.Message {
	return ic
}

func (ic *invocationContext) CurrTime() abi.Timestamp {
	return ic.now
}

func (ic *invocationContext) ValidateImmediateCallerAcceptAny() {
	ic.assertf(!ic.callerValidated, "caller validated twice")
	ic.callerValidated = true
}

func (ic *invocationContext) ValidateImmediateCallerIs(addrs ...addr.Address) {
	ic.assertf(!ic.callerValidated, "caller validated twice")
	ic.callerValidated = true
	for _, a := range addrs {
		if a == ic.msg.From {
			return
		}
	}
	ic.Abortf(exitcode.ErrForbidden, "caller %v is not one of %v", ic.msg.From, addrs)
}

func (ic *invocationContext) State() runtime.StateHandle {
	return ic
}

func (ic *invocationContext) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (ic *invocationContext) Context() context.Context {
	return ic.vm.ctx
}

func (ic *invocationContext) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	l := ic.vm.log.With("actor", ic.msg.To, "method", ic.msg.Method)
	switch level {
	case rtt.DEBUG:
		l.Debugf(msg, args...)
	case rtt.INFO:
		l.Infof(msg, args...)
	case rtt.WARN:
		l.Warnf(msg, args...)
	default:
		l.Errorf(msg, args...)
	}
}

//
// runtime.Store
//

func (ic *invocationContext) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	if err := ic.vm.store.Get(ic.vm.ctx, c, o); err != nil {
		// The in-memory store reports a missing block as an error.
		return false
	}
	return true
}

func (ic *invocationContext) StorePut(x cbor.Marshaler) cid.Cid {
	c, err := ic.vm.store.Put(ic.vm.ctx, x)
	if err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to put object in store: %v", err)
	}
	return c
}

//
// runtime.Message
//

func (ic *invocationContext) Caller() addr.Address {
	return ic.msg.From
}

func (ic *invocationContext) Receiver() addr.Address {
	return ic.msg.To
}

func (ic *invocationContext) FundsReceived() []abi.Coin {
	return ic.msg.Funds
}

//
// runtime.StateHandle
//

func (ic *invocationContext) Create(obj cbor.Marshaler) {
	entry := ic.loadEntry()
	if !entry.Head.Equals(ic.vm.emptyObject) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to create state; expected empty state, found %v", entry.Head)
	}
	ic.replace(entry, obj)
}

func (ic *invocationContext) Readonly(obj cbor.Unmarshaler) {
	entry := ic.loadEntry()
	if !ic.StoreGet(entry.Head, obj) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load state for actor %v", ic.msg.To)
	}
}

func (ic *invocationContext) Transaction(obj cbor.Er, f func()) {
	if ic.inTransaction {
		ic.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	ic.Readonly(obj)
	ic.inTransaction = true
	defer func() { ic.inTransaction = false }()
	f()
	ic.replace(ic.loadEntry(), obj)
}

func (ic *invocationContext) loadEntry() *ActorEntry {
	entry, found, err := ic.vm.getActor(ic.msg.To)
	if err != nil {
		panic(err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrorIllegalActor, "actor %v not found", ic.msg.To)
	}
	return entry
}

func (ic *invocationContext) replace(entry *ActorEntry, obj cbor.Marshaler) {
	entry.Head = ic.StorePut(obj)
	if err := ic.vm.setActor(ic.msg.To, entry); err != nil {
		panic(err)
	}
}

func (ic *invocationContext) assertf(condition bool, msg string, args ...interface{}) {
	if !condition {
		ic.Abortf(exitcode.SysErrorIllegalActor, msg, args...)
	}
}
