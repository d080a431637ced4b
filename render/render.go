/*
Package render formats simulation results for the terminal.

PURPOSE:
  Turns a planner.Result into the console report: a styled header with the
  planner parameters, a bordered per-vacation table, an optional accrual
  trace, and the final balance line.

OUTPUT SHAPE:
  Let's go on vacation!
  PTO bank:    37.5 hours
  PTO accrual: 4.62 hours / week
  Holidays in config: 11 days

  ┌──────────┬────────────┬────────────┬──────┬───────┬────────┐
  │ Vacation │ Start      │ End        │ Days │ Hours │ Status │
  ...
  Final PTO balance: 21.46 hours

SEE ALSO:
  - cmd/vacation: The only consumer
  - planner/types.go: Result and VacationOutcome
*/
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/warp/vacation-planner/planner"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	traceStyle = lipgloss.NewStyle().Faint(true)
	headerRow  = lipgloss.NewStyle().Bold(true)
)

// Header renders the greeting and the planner parameters.
func Header(bank, rate decimal.Decimal, holidayCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Let's go on %s!\n", titleStyle.Render("vacation"))
	fmt.Fprintf(&b, "PTO bank:    %s hours\n", valueStyle.Render(bank.String()))
	fmt.Fprintf(&b, "PTO accrual: %s hours / week\n", valueStyle.Render(rate.String()))
	fmt.Fprintf(&b, "Holidays in config: %s days\n", valueStyle.Render(strconv.Itoa(holidayCount)))
	return b.String()
}

// OutcomeTable renders the per-vacation verdicts as a bordered table.
func OutcomeTable(outcomes []planner.VacationOutcome) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRow.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Vacation", "Start", "End", "Days", "Hours", "Status")

	for _, out := range outcomes {
		status := okStyle.Render("✓")
		if !out.Affordable {
			status = failStyle.Render("✗")
		}
		t.Row(
			out.Vacation.Label(),
			out.Vacation.Start.String(),
			out.Vacation.End.String(),
			strconv.Itoa(out.ChargeableDays),
			strconv.Itoa(out.ChargeableHours),
			status,
		)
	}

	return t.Render()
}

// AccrualTrace renders the weekly accrual log for verbose mode.
func AccrualTrace(events []planner.AccrualEvent) string {
	var b strings.Builder
	for _, ev := range events {
		line := fmt.Sprintf("%s on %s: +%s hours (balance: %s)",
			ev.Reason, ev.On, ev.Amount.String(), ev.Balance.StringFixed(2))
		b.WriteString(traceStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary renders the final balance line.
func Summary(final decimal.Decimal) string {
	return valueStyle.Render(fmt.Sprintf("Final PTO balance: %s hours", final.StringFixed(2)))
}
