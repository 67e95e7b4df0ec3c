package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by printing through the cobra command's streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styles *Styles
}

// NewSimpleUI creates a SimpleUI that writes plain text.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewStyledUI creates a SimpleUI that colours report words for a terminal.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: NewStyles(cmd.OutOrStdout())}
}

// DisplayPatched reports a successful write.
func (s *SimpleUI) DisplayPatched(patch m.Patch, artifact m.Artifact) {
	s.printf("Patched %s in %s\n", patch.Concern, artifact.Rel)
}

// DisplayAlreadyApplied reports an idempotent no-op.
func (s *SimpleUI) DisplayAlreadyApplied(patch m.Patch, artifact m.Artifact) {
	s.printf("No changes: %s patch already applied (%s)\n", patch.Title, artifact.Rel)
}

// DisplayTargetNotFound reports an unknown artifact shape in apply mode.
func (s *SimpleUI) DisplayTargetNotFound(_ m.Patch, artifact m.Artifact) {
	s.errorf("Patch target not found in %s; bundle layout likely changed\n", artifact.Rel)
}

// DisplayStale reports a prior state that vanished before it was replaced.
func (s *SimpleUI) DisplayStale(_ m.Patch, artifact m.Artifact) {
	s.errorf("Patch target changed in %s; artifact layout changed unexpectedly\n", artifact.Rel)
}

// DisplayReport prints the check mode verdict.
func (s *SimpleUI) DisplayReport(patch m.Patch, artifact m.Artifact, report m.Report) {
	word := s.styles.report(report)

	switch report {
	case m.ReportOK:
		s.printf("%s: %s patch present in %s\n", word, patch.Title, artifact.Rel)
	case m.ReportMissing:
		applied := "applied"
		if patch.MultiSite() {
			applied = "fully applied"
		}

		s.printf("%s: %s patch not %s in %s\n", word, patch.Title, applied, artifact.Rel)
	default:
		snippet := "snippet"
		if patch.MultiSite() {
			snippet = "snippet(s)"
		}

		s.printf("%s: expected target %s not found in %s\n", word, snippet, artifact.Rel)
	}
}

// DisplayStatus prints a table of every patch and its state.
func (s *SimpleUI) DisplayStatus(artifact m.Artifact, statuses []m.PatchStatus) error {
	s.printf("Artifact: %s\n", artifact.Rel)

	if len(statuses) == 0 {
		s.printf("No patches registered\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Patch", "Concern", "Sites", "Variants", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	counts := make(map[m.Report]int)

	for _, status := range statuses {
		counts[status.Report]++
		table.Append([]string{
			status.Patch.Name,
			status.Patch.Concern,
			fmt.Sprintf("%d", len(status.Patch.Sites)),
			fmt.Sprintf("%d", status.Patch.VariantCount()),
			s.styles.report(status.Report),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(statuses)),
		"",
		"",
		"",
		fmt.Sprintf("%d ok, %d missing, %d unknown", counts[m.ReportOK], counts[m.ReportMissing], counts[m.ReportUnknown]),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, status := range statuses {
		for _, detail := range status.Details {
			s.printf("%s: %s\n", status.Patch.Name, detail)
		}
	}

	return nil
}

// DisplayError prints err on the error stream.
func (s *SimpleUI) DisplayError(err error) {
	if err == nil {
		return
	}

	s.errorf("%s\n", strings.TrimSpace(err.Error()))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
