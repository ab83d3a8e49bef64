package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

var searchTerm string

var searchCmd = &cobra.Command{
	Use:   "search SUBJECT NUMBER",
	Short: "List every section of a class",
	Long: `Search the catalog for one class, e.g. "classwatch search CSE 476".
The term defaults to the watch list's term.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logr)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		term := searchTerm
		if term == "" {
			wl, err := a.jobs.WatchList.State(cmd.Context())
			if err != nil {
				return err
			}
			term = wl.Term
		}

		identifier := strings.Join(args, " ")
		summaries, err := a.jobs.Details.Search(cmd.Context(), identifier, term)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s in %s", strings.ToUpper(identifier), catalog.TermName(term))))
		fmt.Fprint(cmd.OutOrStdout(), renderSummaries(summaries))
		return nil
	},
}

func renderSummaries(summaries []models.ClassSummary) string {
	if len(summaries) == 0 {
		return dimStyle.Render("No sections found.") + "\n"
	}
	fullStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	var b strings.Builder
	for _, s := range summaries {
		status := fullStyle.Render(string(s.Status))
		if s.Status == models.StatusOpen {
			status = openStyle.Render(string(s.Status))
		}
		fmt.Fprintf(&b, "%s  %s  %s  %s\n", s.ClassNumber, status, s.Seats, s.Title)
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%s · %s [%s]", s.Instructor, s.Schedule, s.ScheduleAbbreviation)))
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchTerm, "term", "t", "", "Four digit term code, e.g. 2257")
}
