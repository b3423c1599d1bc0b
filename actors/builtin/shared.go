package builtin

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

///// Code shared by multiple built-in actors. /////

// Default HAMT bitwidth for actor state maps.
const DefaultHamtBitwidth = 5

// Default AMT bitwidth for actor state arrays.
const DefaultAmtBitwidth = 3

// Aborts with an ErrIllegalArgument if predicate is not true.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}

// Aborts with an ErrIllegalState if predicate is not true.
func RequireState(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalState, msg, args...)
	}
}

// Aborts with a formatted message if err is not nil.
// The provided message will be suffixed by ": %s" and the provided args suffixed by the err.
// The exit code is taken from the error chain if one of its members carries a code, otherwise
// defaultExitCode is used.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		newMsg := msg + ": %s"
		newArgs := append(args, err)
		code := exitcode.Unwrap(err, defaultExitCode)
		rt.Abortf(code, newMsg, newArgs...)
	}
}

// Aborts with ErrIllegalState if the accumulator holds any message.
func RequireNoMessages(rt runtime.Runtime, acc *MessageAccumulator, msg string) {
	if !acc.IsEmpty() {
		rt.Abortf(exitcode.ErrIllegalState, "%s: %s", msg, fmt.Sprint(acc.Messages()))
	}
}
