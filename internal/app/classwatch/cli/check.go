package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/endeavored/classwatch/internal/pkg/catalog"
)

var (
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the watched sections once",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logr)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		wl, err := a.jobs.WatchList.State(cmd.Context())
		if err != nil {
			return err
		}
		lines := a.jobs.Alerts.Check(cmd.Context(), wl)

		fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("Seat alerts for %s", catalog.TermName(wl.Term))))
		fmt.Fprint(cmd.OutOrStdout(), renderStatusLines(lines))
		return nil
	},
}

func renderStatusLines(lines []string) string {
	if len(lines) == 0 {
		return dimStyle.Render("No whitelisted sections found.") + "\n"
	}
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "OPEN SEAT"):
			line = openStyle.Render(line)
		case strings.HasPrefix(line, "Error fetching data"):
			line = errorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
