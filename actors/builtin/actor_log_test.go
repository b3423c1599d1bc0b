package builtin_test

import (
	"io"
	"testing"

	"github.com/filecoin-project/go-state-types/cbor"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/tokenvest/vesting-actors/actors/builtin"
)

type stateMock struct{}

func (s *stateMock) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(cbg.CborNull)
	return err
}

func (s *stateMock) UnmarshalCBOR(r io.Reader) error {
	*s = stateMock{}
	return nil
}

type actorMock struct{}

func (a actorMock) Exports() []interface{} { return nil }

func (a actorMock) Code() cid.Cid { return builtin.VestingActorCodeID }

func (a actorMock) State() cbor.Er { return new(stateMock) }

func TestActorLogLevel(t *testing.T) {
	actor := actorMock{}
	defer builtin.ResetActorsLogLevel(actor)

	t.Run("log with default", func(t *testing.T) {
		for _, lvl := range []rtt.LogLevel{rtt.DEBUG, rtt.INFO, rtt.WARN, rtt.ERROR} {
			assert.Equal(t, lvl, builtin.GetActorLogLevel(actor, lvl))
		}
	})

	t.Run("override ignores default", func(t *testing.T) {
		for _, def := range []rtt.LogLevel{rtt.DEBUG, rtt.INFO, rtt.WARN} {
			for _, lvl := range []rtt.LogLevel{rtt.DEBUG, rtt.INFO, rtt.WARN, rtt.ERROR} {
				builtin.SetActorsLogLevel(lvl, actor)
				assert.Equal(t, lvl, builtin.GetActorLogLevel(actor, def))
			}
		}
	})

	t.Run("reset restores default", func(t *testing.T) {
		builtin.SetActorsLogLevel(rtt.ERROR, actor)
		builtin.ResetActorsLogLevel(actor)
		assert.Equal(t, rtt.INFO, builtin.GetActorLogLevel(actor, rtt.INFO))
	})
}

func TestParseLogLevel(t *testing.T) {
	lvl, ok := builtin.ParseLogLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, rtt.WARN, lvl)

	_, ok = builtin.ParseLogLevel("verbose")
	assert.False(t, ok)
}
