package abi

import (
	"fmt"
	"strings"

	addr "github.com/filecoin-project/go-address"
	"golang.org/x/xerrors"
)

// DenomKind distinguishes bank-native denominations from token contracts.
type DenomKind uint64

const (
	DenomNative DenomKind = iota
	DenomToken
)

func (k DenomKind) String() string {
	switch k {
	case DenomNative:
		return "native"
	case DenomToken:
		return "token"
	default:
		return fmt.Sprintf("denomkind(%d)", uint64(k))
	}
}

// Denom identifies an asset. For native denominations ID is the bank denom (e.g. "uvest");
// for tokens it is the string form of the token contract address.
type Denom struct {
	Kind DenomKind
	ID   string
}

func NativeDenom(id string) Denom {
	return Denom{Kind: DenomNative, ID: id}
}

func TokenDenom(contract addr.Address) Denom {
	return Denom{Kind: DenomToken, ID: contract.String()}
}

// Key is the storage key of a denomination. Keys of distinct denominations never collide.
func (d Denom) Key() string {
	return d.Kind.String() + ":" + d.ID
}

func (d Denom) String() string {
	return d.Key()
}

// TokenAddress returns the contract address of a token denomination.
func (d Denom) TokenAddress() (addr.Address, error) {
	if d.Kind != DenomToken {
		return addr.Undef, xerrors.Errorf("denom %s is not a token", d)
	}
	return addr.NewFromString(d.ID)
}

// Validate checks that the denomination is well formed.
func (d Denom) Validate() error {
	switch d.Kind {
	case DenomNative:
		if d.ID == "" {
			return xerrors.New("empty native denom")
		}
		if strings.ContainsAny(d.ID, ": \t\n") {
			return xerrors.Errorf("invalid native denom %q", d.ID)
		}
	case DenomToken:
		if _, err := addr.NewFromString(d.ID); err != nil {
			return xerrors.Errorf("invalid token denom %q: %w", d.ID, err)
		}
	default:
		return xerrors.Errorf("unknown denom kind %d", d.Kind)
	}
	return nil
}

// ParseDenomKey is the inverse of Denom.Key.
func ParseDenomKey(key string) (Denom, error) {
	idx := strings.IndexByte(key, ':')
	if idx < 0 {
		return Denom{}, xerrors.Errorf("malformed denom key %q", key)
	}
	var d Denom
	switch key[:idx] {
	case DenomNative.String():
		d.Kind = DenomNative
	case DenomToken.String():
		d.Kind = DenomToken
	default:
		return Denom{}, xerrors.Errorf("malformed denom key %q", key)
	}
	d.ID = key[idx+1:]
	return d, d.Validate()
}

// Coin is an amount of a native denomination attached to a message.
type Coin struct {
	Denom  string
	Amount TokenAmount
}

func NewCoin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: NewTokenAmount(amount)}
}
