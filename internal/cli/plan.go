package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finpom/internal/core/model"
	"finpom/internal/core/plan"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addPlan(topLevel *cobra.Command) {
	workHours := 0
	manual := ""
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the notifications a session would schedule.",
		Example: `
finpom plan --work-hours 5
finpom plan --manual 0:45:0
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if workHours <= 0 {
				workHours = settings.WorkHours
			}

			preset := model.PresetForWorkHours(workHours)
			events, err := plan.PlanSessionNotifications(preset)
			if err != nil {
				return err
			}
			if manual != "" {
				hours, minutes, seconds, err := parseClock(manual)
				if err != nil {
					return err
				}
				events = append(events, plan.ManualPlans(hours, minutes, seconds)...)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d hours: %d sessions, %.1f-minute breaks\n\n",
				workHours, preset.Sessions, preset.BreakMinutesPerSession())
			fmt.Fprintln(cmd.OutOrStdout(), planTable(events))
			return nil
		},
	}

	cmd.Flags().IntVar(&workHours, "work-hours", 0, "Planned work hours (default from settings).")
	cmd.Flags().StringVar(&manual, "manual", "", "Also include the single-shot plans for a manual H:M:S input.")

	topLevel.AddCommand(cmd)
}

func planTable(events []plan.ScheduledEvent) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("AT", "TITLE", "BODY")
	for _, event := range events {
		table.AddRow(model.FormatClock(int(event.Delay/time.Second)), event.Title, event.Body)
	}
	return table
}

// parseClock parses H:M:S, M:S or S.
func parseClock(value string) (hours, minutes, seconds int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("invalid duration %q: want H:M:S", value)
	}
	fields := make([]int, 3)
	offset := 3 - len(parts)
	for i, part := range parts {
		parsed, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil || parsed < 0 {
			return 0, 0, 0, fmt.Errorf("invalid duration %q: want H:M:S", value)
		}
		fields[offset+i] = parsed
	}
	return fields[0], fields[1], fields[2], nil
}
