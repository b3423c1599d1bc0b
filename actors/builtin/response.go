package builtin

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

// Transfer is an outbound payment requested by an actor method.
// The host executes transfers only after the method has returned and its state has committed.
type Transfer struct {
	Denom     abi.Denom
	Recipient addr.Address
	Amount    abi.TokenAmount
}

// Attribute is a key/value annotation describing the effect of a method.
type Attribute struct {
	Key   string
	Value string
}

// Response is the return value of actor methods that settle funds.
type Response struct {
	Transfers  []Transfer
	Attributes []Attribute
}

// NewResponse starts a response tagged with the given action.
func NewResponse(action string) *Response {
	return &Response{Attributes: []Attribute{{Key: "action", Value: action}}}
}

// AddAttribute appends a key/value annotation.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddTransfer appends a payment of amount to recipient. Non-positive amounts are dropped.
func (r *Response) AddTransfer(denom abi.Denom, recipient addr.Address, amount abi.TokenAmount) *Response {
	if amount.Int == nil || amount.LessThanEqual(big.Zero()) {
		return r
	}
	r.Transfers = append(r.Transfers, Transfer{Denom: denom, Recipient: recipient, Amount: amount})
	return r
}

// Attribute returns the value of the first attribute with the given key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
