/*
main.go - Vacation planner CLI

PURPOSE:
  Runs the affordability simulation from the command line: loads the config
  file (accrual rate, PTO bank, holidays) and the schedule file (vacations),
  applies flag overrides, and renders the report.

FLAGS:
  -c, --config   Config file path (default: config.yaml)
  -s, --sched    Schedule file path (required)
  -a, --accrual  Override the weekly accrual rate (hours/week)
  -b, --bank     Override the banked PTO (hours)
      --verbose  Print each weekly accrual as it posts

EXAMPLES:
  vacation --sched schedule.yaml
  vacation -c work.yaml -s trips.yaml -b 37.5 --verbose

EXIT CODES:
  0  Success (including an empty schedule)
  1  Unreadable or invalid input files

SEE ALSO:
  - config: File formats and validation
  - render: Output formatting
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/vacation-planner/calendar"
	"github.com/warp/vacation-planner/config"
	"github.com/warp/vacation-planner/planner"
	"github.com/warp/vacation-planner/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		schedPath  string
		accrual    float64
		bank       float64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Check whether your planned vacations fit your PTO balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := config.Overrides{}
			if cmd.Flags().Changed("accrual") {
				overrides.WeeklyRate = &accrual
			}
			if cmd.Flags().Changed("bank") {
				overrides.Bank = &bank
			}
			return run(cmd, configPath, schedPath, overrides, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file with holidays, rate, and bank")
	cmd.Flags().StringVarP(&schedPath, "sched", "s", "", "schedule file with planned vacations")
	cmd.Flags().Float64VarP(&accrual, "accrual", "a", 0, "override: PTO hours accrued per week")
	cmd.Flags().Float64VarP(&bank, "bank", "b", 0, "override: banked PTO hours")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print each weekly accrual as it posts")
	cmd.MarkFlagRequired("sched")

	return cmd
}

func run(cmd *cobra.Command, configPath, schedPath string, overrides config.Overrides, verbose bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	bank, rate, err := cfg.Resolve(overrides)
	if err != nil {
		return err
	}

	sched, err := config.LoadSchedule(schedPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Header(bank, rate, cfg.Holidays.Len()))

	today := calendar.Today()
	if len(planner.FutureVacations(sched.Vacations, today)) == 0 {
		fmt.Fprintln(out, "No vacations in your schedule :(")
		return nil
	}

	result := planner.Simulate(today, bank, rate, cfg.Holidays, sched.Vacations)

	if verbose {
		fmt.Fprint(out, render.AccrualTrace(result.Accruals))
	}
	fmt.Fprintln(out, render.OutcomeTable(result.Outcomes))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Summary(result.FinalBalance))
	return nil
}
