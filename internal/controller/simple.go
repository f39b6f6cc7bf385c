package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/domain"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command

	applied *color.Color
	skipped *color.Color
	failed  *color.Color
	muted   *color.Color
}

// NewSimpleUI creates a new SimpleUI. Colors are dropped when the command
// output is not a terminal.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	s := &SimpleUI{
		cmd:     cmd,
		applied: color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		failed:  color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
	}

	if !IsTTY(cmd.OutOrStdout()) {
		for _, c := range []*color.Color{s.applied, s.skipped, s.failed, s.muted} {
			c.DisableColor()
		}
	}

	return s
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayPlan prints every fixer with its window and selection state.
func (s *SimpleUI) DisplayPlan(version string, entries []domain.PlanEntry) error {
	table, buf := s.newTable("ID", "Family", "Window", "Relevant", "Selected")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	selected := 0

	for _, e := range entries {
		mark := s.muted.Sprint("-")
		if e.Selected {
			mark = s.applied.Sprint("yes")
			selected++
		}

		table.Append([]string{e.Fixer.ID, e.Fixer.Family, e.Fixer.Window(), yesNo(e.Relevant), mark})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Version %s", version), "", "", "",
		fmt.Sprintf("%d of %d", selected, len(entries)),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayMatrix prints the selection for each version, one row per version.
func (s *SimpleUI) DisplayMatrix(rows []domain.MatrixRow) error {
	table, buf := s.newTable("Version", "Count", "Fixers")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	var failures int

	for _, row := range rows {
		if row.Err != nil {
			failures++

			table.Append([]string{row.Version, s.failed.Sprint("error"), row.Err.Error()})

			continue
		}

		fixers := strings.Join(row.Selected, ", ")
		if fixers == "" {
			fixers = s.muted.Sprint("none")
		}

		table.Append([]string{row.Version, fmt.Sprintf("%d", len(row.Selected)), fixers})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	if failures > 0 {
		return fmt.Errorf("%d of %d versions could not be evaluated", failures, len(rows))
	}

	return nil
}

// DisplayUpcomingFixers announces how many fixers the run will apply.
func (s *SimpleUI) DisplayUpcomingFixers(count int) {
	s.printf("Applying %d compatibility fixer(s)\n", count)
}

// FixerStarted is silent; the finished line carries the outcome.
func (s *SimpleUI) FixerStarted(_ m.Fixer) {}

// FixerFinished prints one line per fixer.
func (s *SimpleUI) FixerFinished(fixer m.Fixer, report m.Report) {
	detail := report.Reason
	if report.Status == m.StatusFailed {
		detail = report.Error
	}

	line := fmt.Sprintf("  %s %s", s.status(report.Status), fixer.ID)
	if detail != "" {
		line += s.muted.Sprintf(" (%s)", detail)
	}

	s.printf("%s\n", line)
}

// DisplayReport prints the outcome of every executed fixer and a summary.
func (s *SimpleUI) DisplayReport(report m.RunReport) error {
	if len(report.Reports) > 0 {
		table, buf := s.newTable("Fixer", "Status", "Detail", "Duration")

		for _, r := range report.Reports {
			detail := r.Reason
			if r.Status == m.StatusFailed {
				detail = r.Error
			}

			table.Append([]string{r.FixerID, s.status(r.Status), detail, r.Duration.String()})
		}

		table.SetFooter([]string{
			fmt.Sprintf("%d applied", report.Count(m.StatusApplied)),
			fmt.Sprintf("%d skipped", report.Count(m.StatusSkipped)),
			fmt.Sprintf("%d failed", report.Count(m.StatusFailed)),
			"",
		})
		table.Render()
		s.printf("\n%s", buf.String())
	}

	s.printf("Run %s on version %s: %s\n", report.ID, report.SoftwareVersion, report.State)

	if report.Error != "" {
		s.printf("%s\n", s.failed.Sprint(report.Error))
	}

	return nil
}

func (s *SimpleUI) newTable(header ...string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func (s *SimpleUI) status(status m.OutcomeStatus) string {
	switch status {
	case m.StatusApplied:
		return s.applied.Sprint(status)
	case m.StatusSkipped:
		return s.skipped.Sprint(status)
	default:
		return s.failed.Sprint(status)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
