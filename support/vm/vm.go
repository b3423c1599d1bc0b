package vm

import (
	"bytes"
	"context"
	"sync"
	"time"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/exported"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

var log = logging.Logger("vm")

// VM holds the state and executes messages over the state.
//
// Besides the actor table the VM keeps a bank ledger of balances per address and denomination,
// and an append-only log of message receipts. Messages are applied one at a time.
type VM struct {
	mu sync.Mutex

	ctx     context.Context
	store   adt.Store
	clock   clockwork.Clock
	log     *logging.ZapEventLogger
	metrics *metrics

	actorImpls  map[cid.Cid]runtime.VMActor
	actors      *adt.Map       // address -> ActorEntry
	ledger      *adt.NestedMap // address -> denom -> balance
	receipts    *adt.Array     // Receipt by sequence
	emptyObject cid.Cid

	accountsCreated uint64
}

// ActorEntry is the record of an actor in the VM's actor table.
type ActorEntry struct {
	Code cid.Cid
	Head cid.Cid
}

// Message is a top-level call into an actor.
type Message struct {
	From   addr.Address
	To     addr.Address
	Method abi.MethodNum
	Params cbor.Marshaler
	// Native coins moved from the sender to the receiver before invocation.
	Funds []abi.Coin
}

// MessageResult is the outcome of applying a message.
type MessageResult struct {
	Code    exitcode.ExitCode
	Message string
	Ret     cbor.Marshaler
	// Transfers executed after the invoked method committed.
	Transfers []builtin.Transfer
}

type Opt func(*VM)

// WithRegisterer registers the VM's metrics with reg. Metrics are not exported by default.
func WithRegisterer(reg prometheus.Registerer) Opt {
	return func(vm *VM) {
		vm.metrics = newMetrics(reg)
	}
}

func WithLogger(logger *logging.ZapEventLogger) Opt {
	return func(vm *VM) {
		vm.log = logger
	}
}

// WithActors replaces the set of actor implementations the VM can invoke.
func WithActors(actors ...runtime.VMActor) Opt {
	return func(vm *VM) {
		vm.actorImpls = make(map[cid.Cid]runtime.VMActor, len(actors))
		for _, a := range actors {
			vm.actorImpls[a.Code()] = a
		}
	}
}

type stateRoots struct {
	actors   cid.Cid
	ledger   cid.Cid
	receipts cid.Cid
}

// NewVM creates a new VM with empty state. Block time is read from clock once per message.
func NewVM(ctx context.Context, store adt.Store, clock clockwork.Clock, opts ...Opt) (*VM, error) {
	actors, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create actor table: %w", err)
	}
	ledger, err := adt.MakeEmptyNestedMap(store, builtin.DefaultHamtBitwidth, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create ledger: %w", err)
	}
	receipts, err := adt.MakeEmptyArray(store, builtin.DefaultAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create receipt log: %w", err)
	}
	emptyObject, err := store.Put(ctx, adt.Empty)
	if err != nil {
		return nil, xerrors.Errorf("failed to store empty object: %w", err)
	}

	vm := &VM{
		ctx:         ctx,
		store:       store,
		clock:       clock,
		log:         log,
		metrics:     newMetrics(nil),
		actors:      actors,
		ledger:      ledger,
		receipts:    receipts,
		emptyObject: emptyObject,
	}
	WithActors(exported.BuiltinActors()...)(vm)
	for _, opt := range opts {
		opt(vm)
	}
	if _, err := vm.checkpoint(); err != nil {
		return nil, err
	}
	return vm, nil
}

// Genesis installs the vesting actor at its singleton address and runs its constructor on
// behalf of master.
func (vm *VM) Genesis(master addr.Address) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, found, err := vm.getActor(builtin.VestingActorAddr); err != nil {
		return err
	} else if found {
		return xerrors.Errorf("actor %v already exists", builtin.VestingActorAddr)
	}
	entry := &ActorEntry{Code: builtin.VestingActorCodeID, Head: vm.emptyObject}
	if err := vm.setActor(builtin.VestingActorAddr, entry); err != nil {
		return err
	}
	if _, err := vm.checkpoint(); err != nil {
		return err
	}

	ret := vm.applyLocked(Message{
		From:   master,
		To:     builtin.VestingActorAddr,
		Method: builtin.MethodConstructor,
		Params: &vesting.ConstructorParams{MasterAddress: &master},
	}, nil)
	if ret.Code != exitcode.Ok {
		return ret.Code.Wrapf("vesting actor construction failed: %s", ret.Message)
	}
	return nil
}

// Now is the block time the next message will observe.
func (vm *VM) Now() abi.Timestamp {
	return abi.Timestamp(vm.clock.Now().Unix())
}

func (vm *VM) Store() adt.Store {
	return vm.store
}

// ApplyMessage applies the message to the current state.
//
// The message's funds move from the sender to the receiver before the method runs. If the method
// aborts, every change is rolled back and the funds are returned. Transfers requested by the
// method's response are executed afterwards, debiting the receiver.
func (vm *VM) ApplyMessage(msg Message) MessageResult {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.applyLocked(msg, nil)
}

// SendTokens moves amount of the token contract's denomination from sender to the vesting actor
// and notifies it through its receive hook, as a token contract does on a send with a message.
func (vm *VM) SendTokens(token, sender addr.Address, amount abi.TokenAmount, hook cbor.Marshaler) MessageResult {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var raw bytes.Buffer
	if err := hook.MarshalCBOR(&raw); err != nil {
		return MessageResult{Code: exitcode.ErrSerialization, Message: err.Error()}
	}
	msg := Message{
		From:   token,
		To:     builtin.VestingActorAddr,
		Method: builtin.MethodsVesting.Receive,
		Params: &vesting.TokenReceiveParams{Sender: sender, Amount: amount, Msg: raw.Bytes()},
	}
	return vm.applyLocked(msg, func() (exitcode.ExitCode, error) {
		return vm.move(sender, builtin.VestingActorAddr, abi.TokenDenom(token), amount)
	})
}

// Query invokes a read-only method and decodes its return value into out.
// State changes made by the method are discarded and no receipt is recorded.
func (vm *VM) Query(method abi.MethodNum, params cbor.Marshaler, out cbor.Unmarshaler) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	prior, err := vm.checkpoint()
	if err != nil {
		return err
	}
	defer func() {
		if err := vm.rollback(prior); err != nil {
			panic(err)
		}
	}()

	msg := Message{From: builtin.VestingActorAddr, To: builtin.VestingActorAddr, Method: method, Params: params}
	ic := newInvocationContext(vm, vm.Now(), msg)
	ret, code, errMsg := ic.invoke()
	if code != exitcode.Ok {
		return code.Wrapf("query %d failed: %s", method, errMsg)
	}
	var buf bytes.Buffer
	if err := ret.MarshalCBOR(&buf); err != nil {
		return xerrors.Errorf("failed to encode query result: %w", err)
	}
	return out.UnmarshalCBOR(&buf)
}

// applyLocked runs msg to completion and records a receipt. pre runs after the funds transfer
// and before invocation, within the same rollback scope.
func (vm *VM) applyLocked(msg Message, pre func() (exitcode.ExitCode, error)) MessageResult {
	start := time.Now()
	now := vm.Now()

	prior, err := vm.checkpoint()
	if err != nil {
		panic(err)
	}
	result := vm.execute(now, msg, pre)
	if result.Code != exitcode.Ok {
		if err := vm.rollback(prior); err != nil {
			panic(err)
		}
		result.Transfers = nil
		vm.log.Infow("message aborted", "from", msg.From, "method", msg.Method, "code", result.Code, "reason", result.Message)
	} else {
		vm.log.Debugw("message applied", "from", msg.From, "method", msg.Method, "transfers", len(result.Transfers))
	}

	if err := vm.recordReceipt(now, msg, result); err != nil {
		panic(err)
	}
	vm.metrics.observe(msg.Method, result, time.Since(start))
	return result
}

func (vm *VM) execute(now abi.Timestamp, msg Message, pre func() (exitcode.ExitCode, error)) MessageResult {
	for _, coin := range msg.Funds {
		if code, err := vm.move(msg.From, msg.To, abi.NativeDenom(coin.Denom), coin.Amount); err != nil {
			return MessageResult{Code: code, Message: err.Error()}
		}
	}
	if pre != nil {
		if code, err := pre(); err != nil {
			return MessageResult{Code: code, Message: err.Error()}
		}
	}

	ic := newInvocationContext(vm, now, msg)
	ret, code, errMsg := ic.invoke()
	if code != exitcode.Ok {
		return MessageResult{Code: code, Message: errMsg}
	}

	result := MessageResult{Code: exitcode.Ok, Ret: ret}
	if resp, ok := ret.(*builtin.Response); ok {
		for _, t := range resp.Transfers {
			if code, err := vm.move(msg.To, t.Recipient, t.Denom, t.Amount); err != nil {
				return MessageResult{Code: code, Message: xerrors.Errorf("transfer to %v failed: %w", t.Recipient, err).Error()}
			}
		}
		result.Transfers = resp.Transfers
	}
	return result
}

func (vm *VM) recordReceipt(now abi.Timestamp, msg Message, result MessageResult) error {
	receipt := Receipt{
		Seq:      vm.receipts.Length(),
		Time:     now,
		From:     msg.From,
		To:       msg.To,
		Method:   msg.Method,
		ExitCode: uint64(result.Code),
		Message:  result.Message,
	}
	if result.Ret != nil {
		var buf bytes.Buffer
		if err := result.Ret.MarshalCBOR(&buf); err != nil {
			return xerrors.Errorf("failed to encode return value: %w", err)
		}
		receipt.Return = buf.Bytes()
	}
	if err := vm.receipts.AppendContinuous(&receipt); err != nil {
		return xerrors.Errorf("failed to record receipt: %w", err)
	}
	_, err := vm.receipts.Root()
	return err
}

//
// State tree
//

func (vm *VM) checkpoint() (stateRoots, error) {
	var roots stateRoots
	var err error
	if roots.actors, err = vm.actors.Root(); err != nil {
		return stateRoots{}, xerrors.Errorf("failed to flush actors: %w", err)
	}
	if roots.ledger, err = vm.ledger.Root(); err != nil {
		return stateRoots{}, xerrors.Errorf("failed to flush ledger: %w", err)
	}
	if roots.receipts, err = vm.receipts.Root(); err != nil {
		return stateRoots{}, xerrors.Errorf("failed to flush receipts: %w", err)
	}
	return roots, nil
}

func (vm *VM) rollback(roots stateRoots) error {
	var err error
	if vm.actors, err = adt.AsMap(vm.store, roots.actors, builtin.DefaultHamtBitwidth); err != nil {
		return xerrors.Errorf("failed to load actors %v: %w", roots.actors, err)
	}
	if vm.ledger, err = adt.AsNestedMap(vm.store, roots.ledger, builtin.DefaultHamtBitwidth, builtin.DefaultHamtBitwidth); err != nil {
		return xerrors.Errorf("failed to load ledger %v: %w", roots.ledger, err)
	}
	if vm.receipts, err = adt.AsArray(vm.store, roots.receipts, builtin.DefaultAmtBitwidth); err != nil {
		return xerrors.Errorf("failed to load receipts %v: %w", roots.receipts, err)
	}
	return nil
}

func (vm *VM) getActor(a addr.Address) (*ActorEntry, bool, error) {
	var entry ActorEntry
	found, err := vm.actors.Get(abi.AddrKey(a), &entry)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load actor %v: %w", a, err)
	}
	return &entry, found, nil
}

// setActor writes the entry whether or not the actor previously existed.
func (vm *VM) setActor(a addr.Address, entry *ActorEntry) error {
	if err := vm.actors.Put(abi.AddrKey(a), entry); err != nil {
		return xerrors.Errorf("setting actor %v in state tree failed: %w", a, err)
	}
	return nil
}

// GetState loads the state of the actor at a into out.
func (vm *VM) GetState(a addr.Address, out cbor.Unmarshaler) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	entry, found, err := vm.getActor(a)
	if err != nil {
		return err
	}
	if !found {
		return xerrors.Errorf("actor %v not found", a)
	}
	return vm.store.Get(vm.ctx, entry.Head, out)
}

// StateRoot returns the head of the vesting actor's state.
func (vm *VM) StateRoot() (cid.Cid, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	entry, found, err := vm.getActor(builtin.VestingActorAddr)
	if err != nil {
		return cid.Undef, err
	}
	if !found {
		return cid.Undef, xerrors.Errorf("actor %v not found", builtin.VestingActorAddr)
	}
	return entry.Head, nil
}

//
// Bank ledger
//

// SetBalance overwrites the balance of a in denom.
func (vm *VM) SetBalance(a addr.Address, denom abi.Denom, amount abi.TokenAmount) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if err := denom.Validate(); err != nil {
		return err
	}
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("negative balance %v", amount)
	}
	if err := vm.putBalance(a, denom, amount); err != nil {
		return err
	}
	_, err := vm.checkpoint()
	return err
}

// GetBalance returns the balance of a in denom, zero if none was ever credited.
func (vm *VM) GetBalance(a addr.Address, denom abi.Denom) (abi.TokenAmount, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.balance(a, denom)
}

func (vm *VM) balance(a addr.Address, denom abi.Denom) (abi.TokenAmount, error) {
	var amount abi.TokenAmount
	found, err := vm.ledger.Get(abi.AddrKey(a), denom, &amount)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load balance of %v in %v: %w", a, denom, err)
	}
	if !found {
		return big.Zero(), nil
	}
	return amount, nil
}

func (vm *VM) putBalance(a addr.Address, denom abi.Denom, amount abi.TokenAmount) error {
	if amount.IsZero() {
		_, err := vm.ledger.TryDelete(abi.AddrKey(a), denom)
		return err
	}
	return vm.ledger.Put(abi.AddrKey(a), denom, &amount)
}

// move debits from and credits to. Zero amounts are a no-op.
func (vm *VM) move(from, to addr.Address, denom abi.Denom, amount abi.TokenAmount) (exitcode.ExitCode, error) {
	if amount.LessThan(big.Zero()) {
		return exitcode.SysErrorIllegalArgument, xerrors.Errorf("negative transfer %v of %v", amount, denom)
	}
	if amount.IsZero() {
		return exitcode.Ok, nil
	}
	fromBalance, err := vm.balance(from, denom)
	if err != nil {
		panic(err)
	}
	if fromBalance.LessThan(amount) {
		return exitcode.SysErrInsufficientFunds, xerrors.Errorf("balance %v of %v insufficient for %v %v", fromBalance, from, amount, denom)
	}
	toBalance, err := vm.balance(to, denom)
	if err != nil {
		panic(err)
	}
	if err := vm.putBalance(from, denom, big.Sub(fromBalance, amount)); err != nil {
		panic(err)
	}
	if err := vm.putBalance(to, denom, big.Add(toBalance, amount)); err != nil {
		panic(err)
	}
	return exitcode.Ok, nil
}

//
// Receipts
//

// Receipt records the outcome of one applied message.
type Receipt struct {
	Seq      uint64
	Time     abi.Timestamp
	From     addr.Address
	To       addr.Address
	Method   abi.MethodNum
	ExitCode uint64
	Message  string
	Return   []byte
}

func (r *Receipt) Code() exitcode.ExitCode {
	return exitcode.ExitCode(r.ExitCode)
}

// Receipts returns every receipt recorded so far, in application order.
func (vm *VM) Receipts() ([]Receipt, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var out []Receipt
	var r Receipt
	err := vm.receipts.ForEach(&r, func(i int64) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
