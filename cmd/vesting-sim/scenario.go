package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/ipld"
	"github.com/tokenvest/vesting-actors/support/vm"
)

// Scenario is a replayable sequence of messages against a fresh vesting actor.
// Times are seconds after genesis.
type Scenario struct {
	Name     string        `mapstructure:"name"`
	Genesis  int64         `mapstructure:"genesis"`
	Master   string        `mapstructure:"master"`
	Balances []BalanceSpec `mapstructure:"balances"`
	Steps    []StepSpec    `mapstructure:"steps"`
	Expect   []BalanceSpec `mapstructure:"expect_balances"`
}

type BalanceSpec struct {
	Address string `mapstructure:"address"`
	Denom   string `mapstructure:"denom"`
	Amount  string `mapstructure:"amount"`
}

type CoinSpec struct {
	Denom  string `mapstructure:"denom"`
	Amount string `mapstructure:"amount"`
}

type ScheduleSpec struct {
	Linear *struct {
		Start  int64  `mapstructure:"start"`
		End    int64  `mapstructure:"end"`
		Amount string `mapstructure:"amount"`
	} `mapstructure:"linear"`
	Periodic *struct {
		Start    int64  `mapstructure:"start"`
		End      int64  `mapstructure:"end"`
		Interval uint64 `mapstructure:"interval"`
		Amount   string `mapstructure:"amount"`
	} `mapstructure:"periodic"`
	Cliff []struct {
		At     int64  `mapstructure:"at"`
		Amount string `mapstructure:"amount"`
	} `mapstructure:"cliff"`
}

// StepSpec is one message. Action selects the method; the other fields are read as it needs them.
type StepSpec struct {
	At     int64  `mapstructure:"at"`
	From   string `mapstructure:"from"`
	Action string `mapstructure:"action"`
	// Name of the expected outcome, as reported by vesting.ErrorKind. Defaults to Ok.
	Expect string `mapstructure:"expect"`

	Address         string       `mapstructure:"address"`
	AccountMaster   string       `mapstructure:"account_master"`
	Schedule        ScheduleSpec `mapstructure:"schedule"`
	Funds           []CoinSpec   `mapstructure:"funds"`
	Token           string       `mapstructure:"token"`
	Amount          string       `mapstructure:"amount"`
	Denom           string       `mapstructure:"denom"`
	Denoms          []string     `mapstructure:"denoms"`
	Recipient       string       `mapstructure:"recipient"`
	VestedRecipient string       `mapstructure:"vested_recipient"`
	LeftRecipient   string       `mapstructure:"left_recipient"`
	Master          string       `mapstructure:"master"`
}

// Report is the outcome of running one scenario.
type Report struct {
	Name      string            `json:"name"`
	Passed    bool              `json:"passed"`
	Steps     []StepReport      `json:"steps"`
	Failures  []string          `json:"failures,omitempty"`
	Accounts  int               `json:"accounts"`
	Unclaimed map[string]string `json:"unclaimed,omitempty"`
}

type StepReport struct {
	Index     int              `json:"index"`
	At        int64            `json:"at"`
	Action    string           `json:"action"`
	Outcome   string           `json:"outcome"`
	Message   string           `json:"message,omitempty"`
	Transfers []TransferReport `json:"transfers,omitempty"`
}

type TransferReport struct {
	Recipient string `json:"recipient"`
	Denom     string `json:"denom"`
	Amount    string `json:"amount"`
}

// LoadScenario reads a YAML or JSON scenario file. The format follows the file extension.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("failed to read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, xerrors.Errorf("failed to decode scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return &sc, nil
}

// RunScenario replays the scenario on a fresh VM. A step whose outcome differs from its
// expectation is reported as a failure; only setup problems are returned as errors.
func RunScenario(ctx context.Context, sc *Scenario, opts ...vm.Opt) (*Report, error) {
	genesis := time.Unix(sc.Genesis, 0)
	clock := clockwork.NewFakeClockAt(genesis)
	v, err := vm.NewVM(ctx, ipld.NewADTStore(ctx), clock, opts...)
	if err != nil {
		return nil, err
	}
	master, err := addr.NewFromString(sc.Master)
	if err != nil {
		return nil, xerrors.Errorf("invalid master %q: %w", sc.Master, err)
	}
	if err := v.Genesis(master); err != nil {
		return nil, err
	}
	for _, b := range sc.Balances {
		a, denom, amount, err := b.parse()
		if err != nil {
			return nil, err
		}
		if err := v.SetBalance(a, denom, amount); err != nil {
			return nil, xerrors.Errorf("failed to set balance of %s: %w", b.Address, err)
		}
	}

	report := &Report{Name: sc.Name, Steps: make([]StepReport, 0, len(sc.Steps))}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := genesis.Add(time.Duration(step.At) * time.Second)
		if target.Before(clock.Now()) {
			return nil, xerrors.Errorf("step %d at %d runs before the previous step", i, step.At)
		}
		clock.Advance(target.Sub(clock.Now()))

		result, err := applyStep(v, genesis, step)
		if err != nil {
			return nil, xerrors.Errorf("step %d (%s): %w", i, step.Action, err)
		}
		sr := StepReport{Index: i, At: step.At, Action: step.Action, Outcome: vesting.ErrorKind(result.Code), Message: result.Message}
		for _, t := range result.Transfers {
			sr.Transfers = append(sr.Transfers, TransferReport{Recipient: t.Recipient.String(), Denom: t.Denom.String(), Amount: t.Amount.String()})
		}
		report.Steps = append(report.Steps, sr)

		expect := step.Expect
		if expect == "" {
			expect = vesting.ErrorKind(exitcode.Ok)
		}
		if sr.Outcome != expect {
			report.Failures = append(report.Failures, fmt.Sprintf("step %d (%s): expected %s, got %s: %s", i, step.Action, expect, sr.Outcome, result.Message))
		}
	}

	for _, b := range sc.Expect {
		a, denom, expected, err := b.parse()
		if err != nil {
			return nil, err
		}
		actual, err := v.GetBalance(a, denom)
		if err != nil {
			return nil, err
		}
		if !actual.Equals(expected) {
			report.Failures = append(report.Failures, fmt.Sprintf("balance of %s in %s: expected %v, got %v", b.Address, denom, expected, actual))
		}
	}

	var st vesting.State
	if err := v.GetState(builtin.VestingActorAddr, &st); err != nil {
		return nil, err
	}
	summary, msgs := vesting.CheckStateInvariants(&st, v.Store(), v.Now())
	report.Failures = append(report.Failures, msgs.Messages()...)
	report.Accounts = summary.AccountCount
	if len(summary.Outstanding) > 0 {
		report.Unclaimed = make(map[string]string, len(summary.Outstanding))
		for k, amount := range summary.Outstanding {
			report.Unclaimed[k] = amount.String()
		}
	}
	report.Passed = len(report.Failures) == 0
	return report, nil
}

func applyStep(v *vm.VM, genesis time.Time, step StepSpec) (vm.MessageResult, error) {
	from, err := addr.NewFromString(step.From)
	if err != nil {
		return vm.MessageResult{}, xerrors.Errorf("invalid sender %q: %w", step.From, err)
	}

	var method abi.MethodNum
	var params cbor.Marshaler
	var funds []abi.Coin
	switch step.Action {
	case "register", "register_token":
		p, err := step.registerParams(genesis)
		if err != nil {
			return vm.MessageResult{}, err
		}
		if step.Action == "register_token" {
			token, err := addr.NewFromString(step.Token)
			if err != nil {
				return vm.MessageResult{}, xerrors.Errorf("invalid token %q: %w", step.Token, err)
			}
			amount, err := parseAmount(step.Amount)
			if err != nil {
				return vm.MessageResult{}, err
			}
			return v.SendTokens(token, from, amount, p), nil
		}
		for _, c := range step.Funds {
			amount, err := parseAmount(c.Amount)
			if err != nil {
				return vm.MessageResult{}, err
			}
			funds = append(funds, abi.Coin{Denom: c.Denom, Amount: amount})
		}
		method, params = builtin.MethodsVesting.RegisterVestingAccount, p
	case "claim":
		p := &vesting.ClaimParams{}
		for _, d := range step.Denoms {
			denom, err := parseDenom(d)
			if err != nil {
				return vm.MessageResult{}, err
			}
			p.Denoms = append(p.Denoms, denom)
		}
		if p.Recipient, err = optionalAddress(step.Recipient); err != nil {
			return vm.MessageResult{}, err
		}
		method, params = builtin.MethodsVesting.Claim, p
	case "deregister":
		p := &vesting.DeregisterVestingAccountParams{}
		if p.Address, err = addr.NewFromString(step.Address); err != nil {
			return vm.MessageResult{}, xerrors.Errorf("invalid address %q: %w", step.Address, err)
		}
		if p.Denom, err = parseDenom(step.Denom); err != nil {
			return vm.MessageResult{}, err
		}
		if p.VestedTokenRecipient, err = optionalAddress(step.VestedRecipient); err != nil {
			return vm.MessageResult{}, err
		}
		if p.LeftVestingTokenRecipient, err = optionalAddress(step.LeftRecipient); err != nil {
			return vm.MessageResult{}, err
		}
		method, params = builtin.MethodsVesting.DeregisterVestingAccount, p
	case "update_master":
		p := &vesting.UpdateMasterAddressParams{}
		if p.MasterAddress, err = addr.NewFromString(step.Master); err != nil {
			return vm.MessageResult{}, xerrors.Errorf("invalid master %q: %w", step.Master, err)
		}
		method, params = builtin.MethodsVesting.UpdateMasterAddress, p
	default:
		return vm.MessageResult{}, xerrors.Errorf("unknown action %q", step.Action)
	}
	return v.ApplyMessage(vm.VestingMessage(from, method, params, funds...)), nil
}

func (s StepSpec) registerParams(genesis time.Time) (*vesting.RegisterVestingAccountParams, error) {
	holder, err := addr.NewFromString(s.Address)
	if err != nil {
		return nil, xerrors.Errorf("invalid address %q: %w", s.Address, err)
	}
	accountMaster, err := optionalAddress(s.AccountMaster)
	if err != nil {
		return nil, err
	}
	schedule, err := s.Schedule.build(genesis)
	if err != nil {
		return nil, err
	}
	return &vesting.RegisterVestingAccountParams{Address: holder, MasterAddress: accountMaster, Schedule: schedule}, nil
}

func (s ScheduleSpec) build(genesis time.Time) (vesting.VestingSchedule, error) {
	at := func(offset int64) abi.Timestamp {
		return abi.Timestamp(genesis.Unix() + offset)
	}
	switch {
	case s.Linear != nil:
		amount, err := parseAmount(s.Linear.Amount)
		if err != nil {
			return vesting.VestingSchedule{}, err
		}
		return vesting.NewLinearSchedule(at(s.Linear.Start), at(s.Linear.End), amount), nil
	case s.Periodic != nil:
		amount, err := parseAmount(s.Periodic.Amount)
		if err != nil {
			return vesting.VestingSchedule{}, err
		}
		return vesting.NewPeriodicSchedule(at(s.Periodic.Start), at(s.Periodic.End), s.Periodic.Interval, amount), nil
	case len(s.Cliff) > 0:
		releases := make([]vesting.CliffRelease, len(s.Cliff))
		for i, r := range s.Cliff {
			amount, err := parseAmount(r.Amount)
			if err != nil {
				return vesting.VestingSchedule{}, err
			}
			releases[i] = vesting.CliffRelease{ReleaseTime: at(r.At), Amount: amount}
		}
		return vesting.NewCliffSchedule(releases...), nil
	}
	return vesting.VestingSchedule{}, xerrors.New("schedule has no variant")
}

func (b BalanceSpec) parse() (addr.Address, abi.Denom, abi.TokenAmount, error) {
	a, err := addr.NewFromString(b.Address)
	if err != nil {
		return addr.Undef, abi.Denom{}, big.Zero(), xerrors.Errorf("invalid address %q: %w", b.Address, err)
	}
	denom, err := parseDenom(b.Denom)
	if err != nil {
		return addr.Undef, abi.Denom{}, big.Zero(), err
	}
	amount, err := parseAmount(b.Amount)
	if err != nil {
		return addr.Undef, abi.Denom{}, big.Zero(), err
	}
	return a, denom, amount, nil
}

// parseDenom accepts a bare native denom ("uvest") or a denom key ("token:<address>").
func parseDenom(s string) (abi.Denom, error) {
	if strings.Contains(s, ":") {
		return abi.ParseDenomKey(s)
	}
	d := abi.NativeDenom(s)
	return d, d.Validate()
}

func parseAmount(s string) (abi.TokenAmount, error) {
	amount, err := big.FromString(s)
	if err != nil {
		return big.Zero(), xerrors.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

func optionalAddress(s string) (*addr.Address, error) {
	if s == "" {
		return nil, nil
	}
	a, err := addr.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("invalid address %q: %w", s, err)
	}
	return &a, nil
}
