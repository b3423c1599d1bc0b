package vesting

import (
	"bytes"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

// Actor-specific exit codes.
const (
	ErrAccountAlreadyExists = exitcode.FirstActorSpecificExitCode + iota
	ErrFundsMismatch
	ErrInvalidSchedule
)

// ErrorKind names the failure class of an exit code returned by this actor.
func ErrorKind(code exitcode.ExitCode) string {
	switch code {
	case exitcode.Ok:
		return "Ok"
	case exitcode.ErrForbidden:
		return "Unauthorized"
	case exitcode.ErrNotFound:
		return "AccountNotFound"
	case ErrAccountAlreadyExists:
		return "AccountAlreadyExists"
	case ErrFundsMismatch:
		return "FundsMismatch"
	case ErrInvalidSchedule:
		return "InvalidSchedule"
	case exitcode.ErrIllegalArgument:
		return "InvalidArgument"
	case exitcode.ErrIllegalState:
		return "ArithmeticInvariant"
	}
	return code.String()
}

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Receive,
		3:                         a.RegisterVestingAccount,
		4:                         a.DeregisterVestingAccount,
		5:                         a.UpdateMasterAddress,
		6:                         a.Claim,
		7:                         a.MasterAddress,
		8:                         a.VestingAccounts,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VestingActorCodeID
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

type ConstructorParams struct {
	// Defaults to the deploying caller when unset.
	MasterAddress *addr.Address
}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *builtin.Response {
	rt.ValidateImmediateCallerAcceptAny()

	master := rt.Message().Caller()
	if params.MasterAddress != nil {
		master = *params.MasterAddress
	}
	builtin.RequireParam(rt, master != addr.Undef, "master address must be defined")

	st, err := ConstructState(adt.AsStore(rt), master)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.State().Create(st)

	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "vesting actor constructed with master %v", master)
	return builtin.NewResponse("instantiate").AddAttribute("master_address", master.String())
}

// TokenReceiveParams is delivered by a token contract after it has credited Amount to this actor
// on behalf of Sender. Msg carries the encoded RegisterVestingAccountParams.
type TokenReceiveParams struct {
	Sender addr.Address
	Amount abi.TokenAmount
	Msg    []byte
}

// Receive registers an account funded through a token contract. The caller is the token contract
// and the deposit denomination is that token.
func (a Actor) Receive(rt runtime.Runtime, params *TokenReceiveParams) *builtin.Response {
	rt.ValidateImmediateCallerAcceptAny()
	token := abi.TokenDenom(rt.Message().Caller())

	var st State
	rt.State().Readonly(&st)
	if !st.IsMaster(params.Sender) {
		rt.Abortf(exitcode.ErrForbidden, "token sender %v is not the master %v", params.Sender, st.MasterAddress)
	}

	var register RegisterVestingAccountParams
	err := register.UnmarshalCBOR(bytes.NewReader(params.Msg))
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to decode token hook message")

	return a.register(rt, &register, token, params.Amount)
}

type RegisterVestingAccountParams struct {
	Address addr.Address
	// Authority permitted to deregister the account. Deregistration is disabled when unset.
	MasterAddress *addr.Address
	Schedule      VestingSchedule
}

// RegisterVestingAccount registers an account funded by the single native coin attached to the message.
func (a Actor) RegisterVestingAccount(rt runtime.Runtime, params *RegisterVestingAccountParams) *builtin.Response {
	var st State
	rt.State().Readonly(&st)
	requireMaster(rt, &st)

	funds := rt.Message().FundsReceived()
	if len(funds) != 1 {
		rt.Abortf(ErrFundsMismatch, "registration requires exactly one coin, received %d", len(funds))
	}
	denom := abi.NativeDenom(funds[0].Denom)
	builtin.RequireNoErr(rt, denom.Validate(), ErrFundsMismatch, "invalid deposit denom")

	return a.register(rt, params, denom, funds[0].Amount)
}

func (a Actor) register(rt runtime.Runtime, params *RegisterVestingAccountParams, denom abi.Denom, deposit abi.TokenAmount) *builtin.Response {
	builtin.RequireParam(rt, params.Address != addr.Undef, "vesting address must be defined")
	now := rt.CurrTime()
	store := adt.AsStore(rt)

	var total abi.TokenAmount
	var st State
	rt.State().Transaction(&st, func() {
		exists, err := st.HasAccount(store, params.Address, denom)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check account")
		if exists {
			rt.Abortf(ErrAccountAlreadyExists, "vesting account for %v in %v already exists", params.Address, denom)
		}

		err = params.Schedule.Validate(now)
		builtin.RequireNoErr(rt, err, ErrInvalidSchedule, "invalid vesting schedule")
		total, err = params.Schedule.TotalAmount()
		builtin.RequireNoErr(rt, err, ErrInvalidSchedule, "invalid vesting schedule")
		if !deposit.Equals(total) {
			rt.Abortf(ErrFundsMismatch, "deposit %v %v does not match schedule total %v", deposit, denom, total)
		}

		err = st.AddAccount(store, &VestingAccount{
			Address:       params.Address,
			Denom:         denom,
			VestingAmount: total,
			Schedule:      params.Schedule,
			ClaimedAmount: big.Zero(),
			MasterAddress: params.MasterAddress,
		})
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to add account")
	})

	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "registered %s account %v in %v for %v", params.Schedule.Kind(), params.Address, denom, total)
	return builtin.NewResponse("register_vesting_account").
		AddAttribute("address", params.Address.String()).
		AddAttribute("vesting_denom", denom.String()).
		AddAttribute("vesting_amount", total.String())
}

type DeregisterVestingAccountParams struct {
	Address addr.Address
	Denom   abi.Denom
	// Receives the vested but unclaimed amount. Defaults to the holder.
	VestedTokenRecipient *addr.Address
	// Receives the amount not yet vested. Defaults to the master address.
	LeftVestingTokenRecipient *addr.Address
}

// DeregisterVestingAccount removes an account, paying out the claimable portion and returning the unvested remainder.
func (a Actor) DeregisterVestingAccount(rt runtime.Runtime, params *DeregisterVestingAccountParams) *builtin.Response {
	rt.ValidateImmediateCallerAcceptAny()
	now := rt.CurrTime()
	store := adt.AsStore(rt)

	var account *VestingAccount
	var vested, claimable, left abi.TokenAmount
	var master addr.Address
	var st State
	rt.State().Transaction(&st, func() {
		var err error
		account, err = st.MustLoadAccount(store, params.Address, params.Denom)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load account")
		requireAccountMaster(rt, account)

		vested, claimable, left = deregisterSplit(rt, account, now)

		err = st.RemoveAccount(store, params.Address, params.Denom)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove account")
		master = st.MasterAddress
	})

	vestedRecipient := params.Address
	if params.VestedTokenRecipient != nil {
		vestedRecipient = *params.VestedTokenRecipient
	}
	leftRecipient := master
	if params.LeftVestingTokenRecipient != nil {
		leftRecipient = *params.LeftVestingTokenRecipient
	}

	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "deregistered %v in %v: claimable %v, left %v", params.Address, params.Denom, claimable, left)
	return builtin.NewResponse("deregister_vesting_account").
		AddAttribute("address", params.Address.String()).
		AddAttribute("vesting_denom", params.Denom.String()).
		AddAttribute("vesting_amount", account.VestingAmount.String()).
		AddAttribute("vested_amount", vested.String()).
		AddAttribute("left_vesting_amount", left.String()).
		AddTransfer(params.Denom, vestedRecipient, claimable).
		AddTransfer(params.Denom, leftRecipient, left)
}

// Splits the outstanding balance of an account into the vested-but-unclaimed and unvested portions.
func deregisterSplit(rt runtime.Runtime, account *VestingAccount, now abi.Timestamp) (vested, claimable, left abi.TokenAmount) {
	vested, err := account.Vested(now)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute vested amount")
	claimable = big.Sub(vested, account.ClaimedAmount)
	left = big.Sub(account.VestingAmount, vested)
	builtin.RequireState(rt, !claimable.LessThan(big.Zero()), "claimed %v exceeds vested %v", account.ClaimedAmount, vested)
	builtin.RequireState(rt, !left.LessThan(big.Zero()), "vested %v exceeds total %v", vested, account.VestingAmount)
	return vested, claimable, left
}

type UpdateMasterAddressParams struct {
	MasterAddress addr.Address
}

func (a Actor) UpdateMasterAddress(rt runtime.Runtime, params *UpdateMasterAddressParams) *builtin.Response {
	var st State
	rt.State().Readonly(&st)
	requireMaster(rt, &st)
	builtin.RequireParam(rt, params.MasterAddress != addr.Undef, "master address must be defined")

	rt.State().Transaction(&st, func() {
		st.MasterAddress = params.MasterAddress
	})

	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "master address updated to %v", params.MasterAddress)
	return builtin.NewResponse("update_master_address").
		AddAttribute("master_address", params.MasterAddress.String())
}

type ClaimParams struct {
	Denoms []abi.Denom
	// Receives the claimed amounts. Defaults to the caller.
	Recipient *addr.Address
}

// Claim pays out the vested but unclaimed amount of each of the caller's accounts in the listed denoms.
// Denoms without an account or with nothing claimable are skipped.
func (a Actor) Claim(rt runtime.Runtime, params *ClaimParams) *builtin.Response {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.Denoms) <= MaxClaimDenoms, "too many denoms %d, max %d", len(params.Denoms), MaxClaimDenoms)
	holder := rt.Message().Caller()
	recipient := holder
	if params.Recipient != nil {
		recipient = *params.Recipient
	}
	now := rt.CurrTime()
	store := adt.AsStore(rt)

	resp := builtin.NewResponse("claim").AddAttribute("address", holder.String())
	seen := make(map[string]bool, len(params.Denoms))
	var st State
	rt.State().Transaction(&st, func() {
		for _, denom := range params.Denoms {
			if seen[denom.Key()] {
				continue
			}
			seen[denom.Key()] = true

			account, found, err := st.LoadAccount(store, holder, denom)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load account")
			if !found {
				continue
			}

			vested, err := account.Vested(now)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute vested amount")
			claimable := big.Sub(vested, account.ClaimedAmount)
			builtin.RequireState(rt, !claimable.LessThan(big.Zero()), "claimed %v exceeds vested %v", account.ClaimedAmount, vested)
			if claimable.IsZero() {
				continue
			}

			account.ClaimedAmount = vested
			if account.ClaimedAmount.Equals(account.VestingAmount) {
				err = st.RemoveAccount(store, holder, denom)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove claimed account")
			} else {
				err = st.SaveAccount(store, account)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to save account")
			}

			resp.AddAttribute("vesting_denom", denom.String()).
				AddAttribute("vesting_amount", account.VestingAmount.String()).
				AddAttribute("vested_amount", vested.String()).
				AddAttribute("claim_amount", claimable.String()).
				AddTransfer(denom, recipient, claimable)
		}
	})

	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "claim by %v: %d transfers", holder, len(resp.Transfers))
	return resp
}

type MasterAddressReturn struct {
	MasterAddress addr.Address
}

func (a Actor) MasterAddress(rt runtime.Runtime, _ *adt.EmptyValue) *MasterAddressReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	return &MasterAddressReturn{MasterAddress: st.MasterAddress}
}

type VestingAccountsParams struct {
	Address    addr.Address
	StartAfter *abi.Denom
	// Zero selects DefaultQueryLimit. Values above MaxQueryLimit are capped.
	Limit uint64
}

type VestingData struct {
	MasterAddress   *addr.Address
	Denom           abi.Denom
	VestingAmount   abi.TokenAmount
	VestedAmount    abi.TokenAmount
	Schedule        VestingSchedule
	ClaimableAmount abi.TokenAmount
}

type VestingAccountsReturn struct {
	Address  addr.Address
	Vestings []VestingData
}

// VestingAccounts lists the accounts of one holder in ascending denom order.
func (a Actor) VestingAccounts(rt runtime.Runtime, params *VestingAccountsParams) *VestingAccountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	limit := params.Limit
	if limit == 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	now := rt.CurrTime()

	var st State
	rt.State().Readonly(&st)
	accounts, err := st.ListAccounts(adt.AsStore(rt), params.Address, params.StartAfter, limit)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to list accounts")

	ret := &VestingAccountsReturn{Address: params.Address, Vestings: make([]VestingData, 0, len(accounts))}
	for _, account := range accounts {
		vested, err := account.Vested(now)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute vested amount")
		ret.Vestings = append(ret.Vestings, VestingData{
			MasterAddress:   account.MasterAddress,
			Denom:           account.Denom,
			VestingAmount:   account.VestingAmount,
			VestedAmount:    vested,
			Schedule:        account.Schedule,
			ClaimableAmount: big.Sub(vested, account.ClaimedAmount),
		})
	}
	return ret
}

// Aborts with ErrForbidden unless the caller is the process master.
func requireMaster(rt runtime.Runtime, st *State) {
	rt.ValidateImmediateCallerIs(st.MasterAddress)
}

// Aborts with ErrForbidden unless the caller is the account's own master.
func requireAccountMaster(rt runtime.Runtime, account *VestingAccount) {
	if account.MasterAddress == nil {
		rt.Abortf(exitcode.ErrForbidden, "account %v in %v has no master, deregistration disabled", account.Address, account.Denom)
	}
	if caller := rt.Message().Caller(); caller != *account.MasterAddress {
		rt.Abortf(exitcode.ErrForbidden, "caller %v is not the master %v of account %v in %v",
			caller, *account.MasterAddress, account.Address, account.Denom)
	}
}
