// Command vesting-sim replays vesting scenarios against an in-memory VM and reports the outcome.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/exported"
)

var log = logging.Logger("vesting-sim")

const envPrefix = "VESTING_SIM"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	conf := viper.New()
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	root := &cobra.Command{
		Use:           "vesting-sim",
		Short:         "simulate vesting actor scenarios",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(conf.GetString("log-level"), conf.GetString("actor-log-level"))
		},
	}
	root.PersistentFlags().String("log-level", "warn", "host log level (debug, info, warn, error)")
	root.PersistentFlags().String("actor-log-level", "", "level at which actor messages are emitted, overriding the actor's own")
	if err := conf.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(newRunCmd(conf))
	return root
}

func newRunCmd(conf *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "replay scenario files and print a JSON report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			reports, err := runAll(ctx, args, conf.GetBool("fail-fast"), conf.GetInt("parallel"))
			if err != nil {
				return err
			}
			if err := writeReports(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			for _, r := range reports {
				if r != nil && !r.Passed {
					return xerrors.Errorf("scenario %s failed", r.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("fail-fast", false, "stop remaining scenarios after the first failure")
	cmd.Flags().Int("parallel", runtime.NumCPU(), "maximum number of scenarios run at once")
	if err := conf.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

var errScenarioFailed = xerrors.New("scenario failed")

// runAll runs each scenario file on its own VM. Reports are returned in argument order; with
// failFast, scenarios not yet finished when one fails are cancelled and left nil.
func runAll(ctx context.Context, paths []string, failFast bool, parallel int) ([]*Report, error) {
	reports := make([]*Report, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			sc, err := LoadScenario(path)
			if err != nil {
				return err
			}
			report, err := RunScenario(ctx, sc)
			if err != nil {
				if failFast && ctx.Err() != nil {
					log.Infow("scenario cancelled", "scenario", sc.Name)
					return nil
				}
				return xerrors.Errorf("scenario %s: %w", sc.Name, err)
			}
			reports[i] = report
			log.Infow("scenario finished", "scenario", sc.Name, "passed", report.Passed, "steps", len(report.Steps))
			if failFast && !report.Passed {
				return xerrors.Errorf("%s: %w", sc.Name, errScenarioFailed)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil && !xerrors.Is(err, errScenarioFailed) {
		return nil, err
	}
	return reports, nil
}

func writeReports(w io.Writer, reports []*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func setupLogging(level, actorLevel string) error {
	for _, name := range []string{"vm", "vesting-sim"} {
		if err := logging.SetLogLevel(name, level); err != nil {
			return xerrors.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if actorLevel == "" {
		builtin.ResetActorsLogLevel(exported.BuiltinActors()...)
		return nil
	}
	lvl, ok := builtin.ParseLogLevel(actorLevel)
	if !ok {
		return xerrors.Errorf("invalid actor log level %q", actorLevel)
	}
	builtin.SetActorsLogLevel(lvl, exported.BuiltinActors()...)
	return nil
}
