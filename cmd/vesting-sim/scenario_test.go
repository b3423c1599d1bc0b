package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

var (
	lifecycleScenario = filepath.Join("testdata", "lifecycle.yaml")
	mismatchScenario  = filepath.Join("testdata", "mismatch.json")
)

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(lifecycleScenario)
	require.NoError(t, err)
	assert.Equal(t, "lifecycle", sc.Name)
	assert.Equal(t, int64(1_700_000_000), sc.Genesis)
	require.Len(t, sc.Steps, 11)
	require.NotNil(t, sc.Steps[0].Schedule.Linear)
	assert.Equal(t, int64(200), sc.Steps[0].Schedule.Linear.End)
	require.Len(t, sc.Steps[4].Schedule.Cliff, 1)
	assert.Equal(t, []string{"uvest", "token:t0500"}, sc.Steps[5].Denoms)
	assert.Len(t, sc.Expect, 6)

	sc, err = LoadScenario(mismatchScenario)
	require.NoError(t, err)
	require.NotNil(t, sc.Steps[0].Schedule.Periodic)
	assert.Equal(t, uint64(10), sc.Steps[0].Schedule.Periodic.Interval)

	_, err = LoadScenario(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestRunScenarioLifecycle(t *testing.T) {
	sc, err := LoadScenario(lifecycleScenario)
	require.NoError(t, err)
	report, err := RunScenario(context.Background(), sc)
	require.NoError(t, err)
	require.True(t, report.Passed, "failures: %v", report.Failures)

	outcomes := make([]string, len(report.Steps))
	for i, s := range report.Steps {
		outcomes[i] = s.Outcome
	}
	assert.Equal(t, []string{
		"Ok", "AccountAlreadyExists", "FundsMismatch", "Ok", "Ok",
		"Ok", "Ok", "Unauthorized", "Ok", "Unauthorized", "Ok",
	}, outcomes)

	// The half way claim pays out both denominations; a holder with no accounts gets nothing.
	assert.Len(t, report.Steps[5].Transfers, 2)
	assert.Empty(t, report.Steps[6].Transfers)
	assert.Equal(t, []TransferReport{
		{Recipient: "t02002", Denom: "native:uvest", Amount: "500"},
		{Recipient: "t0101", Denom: "native:uvest", Amount: "500"},
	}, report.Steps[8].Transfers)

	assert.Equal(t, 0, report.Accounts)
	assert.Empty(t, report.Unclaimed)
}

func TestRunScenarioReportsFailures(t *testing.T) {
	sc, err := LoadScenario(mismatchScenario)
	require.NoError(t, err)
	report, err := RunScenario(context.Background(), sc)
	require.NoError(t, err)
	assert.False(t, report.Passed)
	// The claim succeeds against an expected failure, and only two of three releases were paid.
	require.Len(t, report.Failures, 2)
	assert.Contains(t, report.Failures[0], "expected Unauthorized, got Ok")
	assert.Contains(t, report.Failures[1], "expected 600, got 400")
	assert.Equal(t, 1, report.Accounts)
	assert.Equal(t, "200", report.Unclaimed["native:uvest"])
}

func TestRunScenarioSetupErrors(t *testing.T) {
	ctx := context.Background()
	base := func() *Scenario {
		return &Scenario{
			Name:    "setup",
			Genesis: 1_700_000_000,
			Master:  "t0101",
			Steps: []StepSpec{
				{At: 10, From: "t0101", Action: "update_master", Master: "t0102"},
			},
		}
	}

	sc := base()
	sc.Master = "not-an-address"
	_, err := RunScenario(ctx, sc)
	require.Error(t, err)

	sc = base()
	sc.Steps = append(sc.Steps, StepSpec{At: 5, From: "t0102", Action: "update_master", Master: "t0101"})
	_, err = RunScenario(ctx, sc)
	require.Error(t, err)

	sc = base()
	sc.Steps[0].Action = "mint"
	_, err = RunScenario(ctx, sc)
	require.Error(t, err)

	sc = base()
	sc.Balances = []BalanceSpec{{Address: "t0101", Denom: "uvest", Amount: "lots"}}
	_, err = RunScenario(ctx, sc)
	require.Error(t, err)

	report, err := RunScenario(ctx, base())
	require.NoError(t, err)
	assert.True(t, report.Passed, "failures: %v", report.Failures)
}

func TestParseDenom(t *testing.T) {
	d, err := parseDenom("uvest")
	require.NoError(t, err)
	assert.Equal(t, abi.NativeDenom("uvest"), d)

	d, err = parseDenom("token:t0500")
	require.NoError(t, err)
	assert.Equal(t, abi.DenomToken, d.Kind)
	assert.Equal(t, "t0500", d.ID)

	_, err = parseDenom("")
	require.Error(t, err)
	_, err = parseDenom("coin:uvest")
	require.Error(t, err)
}

func TestRunAllFailFast(t *testing.T) {
	ctx := context.Background()

	reports, err := runAll(ctx, []string{mismatchScenario, lifecycleScenario}, false, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.False(t, reports[0].Passed)
	assert.True(t, reports[1].Passed)

	// One at a time, the failure cancels the scenario queued behind it.
	reports, err = runAll(ctx, []string{mismatchScenario, lifecycleScenario}, true, 1)
	require.NoError(t, err)
	require.NotNil(t, reports[0])
	assert.False(t, reports[0].Passed)
	assert.Nil(t, reports[1])

	_, err = runAll(ctx, []string{filepath.Join("testdata", "missing.yaml")}, false, 1)
	require.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	run := func(args ...string) ([]*Report, error) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		var reports []*Report
		if out.Len() > 0 {
			require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
		}
		return reports, err
	}

	reports, err := run("run", "--parallel", "2", "--actor-log-level", "info", lifecycleScenario)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "lifecycle", reports[0].Name)
	assert.True(t, reports[0].Passed)

	reports, err = run("run", lifecycleScenario, mismatchScenario)
	require.Error(t, err)
	require.Len(t, reports, 2)
	assert.False(t, reports[1].Passed)

	_, err = run("run")
	require.Error(t, err)

	_, err = run("run", "--actor-log-level", "loud", lifecycleScenario)
	require.Error(t, err)
}

func TestRunCommandEnvironment(t *testing.T) {
	t.Setenv("VESTING_SIM_LOG_LEVEL", "bogus")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", lifecycleScenario})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	// A flag given on the command line wins over the environment.
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--log-level", "error", lifecycleScenario})
	require.NoError(t, cmd.Execute())
}
