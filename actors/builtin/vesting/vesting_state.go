package vesting

import (
	"sort"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
)

type State struct {
	// The authority permitted to register accounts and replace itself.
	MasterAddress addr.Address
	// HAMT[holder address]HAMT[denom key]VestingAccount
	Accounts cid.Cid
}

// VestingAccount is the record of one holder's vesting deposit in one denomination.
type VestingAccount struct {
	Address       addr.Address
	Denom         abi.Denom
	VestingAmount abi.TokenAmount
	Schedule      VestingSchedule
	ClaimedAmount abi.TokenAmount
	// Authority permitted to deregister this account. Deregistration is disabled when unset.
	MasterAddress *addr.Address
}

func ConstructState(store adt.Store, master addr.Address) (*State, error) {
	emptyAccounts, err := adt.StoreEmptyNestedMap(store, builtin.DefaultHamtBitwidth, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty account map: %w", err)
	}
	return &State{
		MasterAddress: master,
		Accounts:      emptyAccounts,
	}, nil
}

func (st *State) IsMaster(a addr.Address) bool {
	return st.MasterAddress == a
}

// LoadAccount returns the account of holder in denom, if one exists.
func (st *State) LoadAccount(store adt.Store, holder addr.Address, denom abi.Denom) (*VestingAccount, bool, error) {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return nil, false, err
	}
	var account VestingAccount
	found, err := accounts.Get(abi.AddrKey(holder), denom, &account)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load account %v/%v: %w", holder, denom, err)
	}
	if !found {
		return nil, false, nil
	}
	return &account, true, nil
}

// MustLoadAccount is LoadAccount failing with ErrNotFound when the account is missing.
func (st *State) MustLoadAccount(store adt.Store, holder addr.Address, denom abi.Denom) (*VestingAccount, error) {
	account, found, err := st.LoadAccount(store, holder, denom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exitcode.ErrNotFound.Wrapf("no vesting account for %v in %v", holder, denom)
	}
	return account, nil
}

func (st *State) HasAccount(store adt.Store, holder addr.Address, denom abi.Denom) (bool, error) {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return false, err
	}
	return accounts.Has(abi.AddrKey(holder), denom)
}

// AddAccount stores a new account. An existing account for the same holder and denom is never overwritten.
func (st *State) AddAccount(store adt.Store, account *VestingAccount) error {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return err
	}
	holder := abi.AddrKey(account.Address)
	exists, err := accounts.Has(holder, account.Denom)
	if err != nil {
		return xerrors.Errorf("failed to check account %v/%v: %w", account.Address, account.Denom, err)
	}
	if exists {
		return ErrAccountAlreadyExists.Wrapf("vesting account for %v in %v already exists", account.Address, account.Denom)
	}
	if err := accounts.Put(holder, account.Denom, account); err != nil {
		return xerrors.Errorf("failed to add account %v/%v: %w", account.Address, account.Denom, err)
	}
	return st.saveAccounts(accounts)
}

// SaveAccount overwrites an existing account.
func (st *State) SaveAccount(store adt.Store, account *VestingAccount) error {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return err
	}
	holder := abi.AddrKey(account.Address)
	exists, err := accounts.Has(holder, account.Denom)
	if err != nil {
		return xerrors.Errorf("failed to check account %v/%v: %w", account.Address, account.Denom, err)
	}
	if !exists {
		return exitcode.ErrNotFound.Wrapf("no vesting account for %v in %v", account.Address, account.Denom)
	}
	if err := accounts.Put(holder, account.Denom, account); err != nil {
		return xerrors.Errorf("failed to save account %v/%v: %w", account.Address, account.Denom, err)
	}
	return st.saveAccounts(accounts)
}

func (st *State) RemoveAccount(store adt.Store, holder addr.Address, denom abi.Denom) error {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return err
	}
	deleted, err := accounts.TryDelete(abi.AddrKey(holder), denom)
	if err != nil {
		return xerrors.Errorf("failed to remove account %v/%v: %w", holder, denom, err)
	}
	if !deleted {
		return exitcode.ErrNotFound.Wrapf("no vesting account for %v in %v", holder, denom)
	}
	return st.saveAccounts(accounts)
}

// ListAccounts returns up to limit accounts of holder in ascending denom key order,
// starting after the given denom if any.
func (st *State) ListAccounts(store adt.Store, holder addr.Address, startAfter *abi.Denom, limit uint64) ([]*VestingAccount, error) {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*VestingAccount)
	var keys []string
	var account VestingAccount
	err = accounts.ForEachInner(abi.AddrKey(holder), &account, func(key string) error {
		a := account
		byKey[key] = &a
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to iterate accounts of %v: %w", holder, err)
	}
	sort.Strings(keys)

	var out []*VestingAccount
	for _, key := range keys {
		if uint64(len(out)) >= limit {
			break
		}
		if startAfter != nil && key <= startAfter.Key() {
			continue
		}
		out = append(out, byKey[key])
	}
	return out, nil
}

// ForEachAccount visits every account in the store.
func (st *State) ForEachAccount(store adt.Store, f func(holderKey string, denomKey string, account *VestingAccount) error) error {
	accounts, err := st.loadAccounts(store)
	if err != nil {
		return err
	}
	var account VestingAccount
	return accounts.ForEach(func(holderKey string, inner *adt.Map) error {
		return inner.ForEach(&account, func(denomKey string) error {
			a := account
			return f(holderKey, denomKey, &a)
		})
	})
}

func (st *State) loadAccounts(store adt.Store) (*adt.NestedMap, error) {
	accounts, err := adt.AsNestedMap(store, st.Accounts, builtin.DefaultHamtBitwidth, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to load accounts %v: %w", st.Accounts, err)
	}
	return accounts, nil
}

func (st *State) saveAccounts(accounts *adt.NestedMap) error {
	root, err := accounts.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush accounts: %w", err)
	}
	st.Accounts = root
	return nil
}

// Vested returns the amount of the account unlocked at now.
func (a *VestingAccount) Vested(now abi.Timestamp) (abi.TokenAmount, error) {
	return a.Schedule.VestedAmount(now)
}
