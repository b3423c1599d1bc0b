package vesting

import (
	"fmt"
	"math"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

// VestingSchedule determines how much of a deposit is unlocked at a given time.
// Exactly one of the members is set.
type VestingSchedule struct {
	Linear   *LinearVesting
	Periodic *PeriodicVesting
	Cliff    *CliffVesting
}

// LinearVesting unlocks Amount continuously between StartTime and EndTime.
type LinearVesting struct {
	StartTime abi.Timestamp
	EndTime   abi.Timestamp
	Amount    abi.TokenAmount
}

// PeriodicVesting unlocks Amount at StartTime and again every Interval seconds up to and including EndTime.
type PeriodicVesting struct {
	StartTime abi.Timestamp
	EndTime   abi.Timestamp
	Interval  uint64
	Amount    abi.TokenAmount
}

// CliffVesting unlocks a fixed amount at each release time.
type CliffVesting struct {
	Releases []CliffRelease
}

type CliffRelease struct {
	ReleaseTime abi.Timestamp
	Amount      abi.TokenAmount
}

func NewLinearSchedule(start, end abi.Timestamp, amount abi.TokenAmount) VestingSchedule {
	return VestingSchedule{Linear: &LinearVesting{StartTime: start, EndTime: end, Amount: amount}}
}

func NewPeriodicSchedule(start, end abi.Timestamp, interval uint64, amount abi.TokenAmount) VestingSchedule {
	return VestingSchedule{Periodic: &PeriodicVesting{StartTime: start, EndTime: end, Interval: interval, Amount: amount}}
}

func NewCliffSchedule(releases ...CliffRelease) VestingSchedule {
	return VestingSchedule{Cliff: &CliffVesting{Releases: releases}}
}

type schedule interface {
	kind() string
	validate(now abi.Timestamp) error
	total() abi.TokenAmount
	vested(now abi.Timestamp) abi.TokenAmount
}

func (s *VestingSchedule) variant() (schedule, error) {
	var found []schedule
	if s.Linear != nil {
		found = append(found, s.Linear)
	}
	if s.Periodic != nil {
		found = append(found, s.Periodic)
	}
	if s.Cliff != nil {
		found = append(found, s.Cliff)
	}
	if len(found) != 1 {
		return nil, ErrInvalidSchedule.Wrapf("schedule must set exactly one variant, found %d", len(found))
	}
	return found[0], nil
}

// Kind names the schedule variant ("linear", "periodic" or "cliff").
func (s *VestingSchedule) Kind() string {
	v, err := s.variant()
	if err != nil {
		return "invalid"
	}
	return v.kind()
}

// Validate checks a schedule offered for registration at time now.
func (s *VestingSchedule) Validate(now abi.Timestamp) error {
	v, err := s.variant()
	if err != nil {
		return err
	}
	if err := v.validate(now); err != nil {
		return err
	}
	total := v.total()
	if total.LessThanEqual(big.Zero()) {
		return ErrInvalidSchedule.Wrapf("%s schedule total must be positive, got %v", v.kind(), total)
	}
	if total.BitLen() > MaxAmountBits {
		return ErrInvalidSchedule.Wrapf("%s schedule total %v exceeds %d bits", v.kind(), total, MaxAmountBits)
	}
	return nil
}

// TotalAmount is the amount unlocked once the schedule has fully elapsed.
func (s *VestingSchedule) TotalAmount() (abi.TokenAmount, error) {
	v, err := s.variant()
	if err != nil {
		return big.Zero(), err
	}
	return v.total(), nil
}

// VestedAmount is the cumulative amount unlocked at time now.
func (s *VestingSchedule) VestedAmount(now abi.Timestamp) (abi.TokenAmount, error) {
	v, err := s.variant()
	if err != nil {
		return big.Zero(), err
	}
	vested := v.vested(now)
	total := v.total()
	if vested.LessThan(big.Zero()) || vested.GreaterThan(total) {
		return big.Zero(), exitcode.ErrIllegalState.Wrapf("%s schedule vested %v outside [0, %v] at %d", v.kind(), vested, total, now)
	}
	return vested, nil
}

func (s *VestingSchedule) String() string {
	switch {
	case s.Linear != nil:
		return fmt.Sprintf("linear{%d..%d %v}", s.Linear.StartTime, s.Linear.EndTime, s.Linear.Amount)
	case s.Periodic != nil:
		return fmt.Sprintf("periodic{%d..%d every %d %v}", s.Periodic.StartTime, s.Periodic.EndTime, s.Periodic.Interval, s.Periodic.Amount)
	case s.Cliff != nil:
		return fmt.Sprintf("cliff{%d releases}", len(s.Cliff.Releases))
	}
	return "empty"
}

func validateAmount(kind string, amount abi.TokenAmount) error {
	if amount.Int == nil || amount.LessThanEqual(big.Zero()) {
		return ErrInvalidSchedule.Wrapf("%s schedule amount must be positive, got %v", kind, amount)
	}
	if amount.BitLen() > MaxAmountBits {
		return ErrInvalidSchedule.Wrapf("%s schedule amount %v exceeds %d bits", kind, amount, MaxAmountBits)
	}
	return nil
}

//
// Linear
//

func (l *LinearVesting) kind() string { return "linear" }

func (l *LinearVesting) validate(now abi.Timestamp) error {
	if err := validateAmount(l.kind(), l.Amount); err != nil {
		return err
	}
	if l.StartTime < now {
		return ErrInvalidSchedule.Wrapf("linear schedule start %d is before current time %d", l.StartTime, now)
	}
	if l.EndTime <= l.StartTime {
		return ErrInvalidSchedule.Wrapf("linear schedule end %d must be after start %d", l.EndTime, l.StartTime)
	}
	return nil
}

func (l *LinearVesting) total() abi.TokenAmount {
	return l.Amount
}

func (l *LinearVesting) vested(now abi.Timestamp) abi.TokenAmount {
	if now <= l.StartTime {
		return big.Zero()
	}
	if now >= l.EndTime {
		return l.Amount
	}
	elapsed := big.NewIntUnsigned(uint64(now - l.StartTime))
	duration := big.NewIntUnsigned(uint64(l.EndTime - l.StartTime))
	// Truncating division of non-negative values rounds down.
	return big.Div(big.Mul(l.Amount, elapsed), duration)
}

//
// Periodic
//

func (p *PeriodicVesting) kind() string { return "periodic" }

func (p *PeriodicVesting) validate(now abi.Timestamp) error {
	if err := validateAmount(p.kind(), p.Amount); err != nil {
		return err
	}
	if p.StartTime < now {
		return ErrInvalidSchedule.Wrapf("periodic schedule start %d is before current time %d", p.StartTime, now)
	}
	if p.EndTime < p.StartTime {
		return ErrInvalidSchedule.Wrapf("periodic schedule end %d is before start %d", p.EndTime, p.StartTime)
	}
	if p.Interval == 0 {
		return ErrInvalidSchedule.Wrapf("periodic schedule interval must be positive")
	}
	// The event count, including the one at StartTime, must fit in a uint64.
	if uint64(p.EndTime-p.StartTime)/p.Interval == math.MaxUint64 {
		return ErrInvalidSchedule.Wrapf("periodic schedule span %d has too many intervals of %d",
			p.EndTime-p.StartTime, p.Interval)
	}
	if uint64(p.EndTime-p.StartTime)%p.Interval != 0 {
		return ErrInvalidSchedule.Wrapf("periodic schedule span %d is not a multiple of interval %d",
			p.EndTime-p.StartTime, p.Interval)
	}
	return nil
}

// Number of unlock events, counting the one at StartTime.
func (p *PeriodicVesting) numIntervals() uint64 {
	return uint64(p.EndTime-p.StartTime)/p.Interval + 1
}

func (p *PeriodicVesting) total() abi.TokenAmount {
	return big.Mul(p.Amount, big.NewIntUnsigned(p.numIntervals()))
}

func (p *PeriodicVesting) vested(now abi.Timestamp) abi.TokenAmount {
	if now < p.StartTime {
		return big.Zero()
	}
	if now >= p.EndTime {
		return p.total()
	}
	passed := uint64(now-p.StartTime)/p.Interval + 1
	return big.Mul(p.Amount, big.NewIntUnsigned(passed))
}

//
// Cliff
//

func (c *CliffVesting) kind() string { return "cliff" }

func (c *CliffVesting) validate(now abi.Timestamp) error {
	if len(c.Releases) == 0 {
		return ErrInvalidSchedule.Wrapf("cliff schedule has no releases")
	}
	if len(c.Releases) > MaxCliffReleases {
		return ErrInvalidSchedule.Wrapf("cliff schedule has %d releases, max %d", len(c.Releases), MaxCliffReleases)
	}
	for i, r := range c.Releases {
		if err := validateAmount(c.kind(), r.Amount); err != nil {
			return err
		}
		if r.ReleaseTime < now {
			return ErrInvalidSchedule.Wrapf("cliff release %d at %d is before current time %d", i, r.ReleaseTime, now)
		}
		if i > 0 && r.ReleaseTime < c.Releases[i-1].ReleaseTime {
			return ErrInvalidSchedule.Wrapf("cliff release %d at %d precedes release %d at %d",
				i, r.ReleaseTime, i-1, c.Releases[i-1].ReleaseTime)
		}
	}
	return nil
}

func (c *CliffVesting) total() abi.TokenAmount {
	sum := big.Zero()
	for _, r := range c.Releases {
		sum = big.Add(sum, r.Amount)
	}
	return sum
}

func (c *CliffVesting) vested(now abi.Timestamp) abi.TokenAmount {
	sum := big.Zero()
	for _, r := range c.Releases {
		if r.ReleaseTime <= now {
			sum = big.Add(sum, r.Amount)
		}
	}
	return sum
}
