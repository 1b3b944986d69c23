package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"finpom/internal/core/countdown"
	"finpom/internal/core/model"
	"finpom/internal/core/scheduler"
	"finpom/internal/core/session"
	"finpom/internal/notify"

	"github.com/spf13/cobra"
)

func addRun(topLevel *cobra.Command) {
	hours, minutes, seconds := 0, 0, 0
	workHours := 0
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a countdown in the terminal.",
		Example: `
finpom run --minutes 25
finpom run --minutes 45 --work-hours 6
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if workHours > 0 {
				settings.WorkHours = workHours
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runHeadless(ctx, cmd.OutOrStdout(), settings, hours, minutes, seconds)
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Countdown hours.")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Countdown minutes.")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "Countdown seconds.")
	cmd.Flags().IntVar(&workHours, "work-hours", 0, "Planned work hours (default from settings).")

	topLevel.AddCommand(cmd)
}

// runHeadless runs one countdown, confining every timer callback to this goroutine.
func runHeadless(ctx context.Context, out io.Writer, settings model.Settings, hours, minutes, seconds int) error {
	tasks := make(chan func(), 16)
	stopped := make(chan struct{})
	defer close(stopped)
	dispatch := func(task func()) {
		select {
		case tasks <- task:
		case <-stopped:
		}
	}

	engine := countdown.New(countdown.Config{
		TickInterval: settings.TickInterval,
		Dispatch:     dispatch,
	})
	defer engine.Close()

	var notifier scheduler.Notifier = notify.NewWriter(out)
	if !settings.Notifications {
		notifier = discardNotifier{}
	}
	sched := scheduler.New(notifier, scheduler.Config{Dispatch: dispatch})
	defer sched.CancelAll()

	controller := session.New(engine, sched, session.Config{
		WorkHours:        settings.WorkHours,
		ReminderInterval: settings.ReminderInterval,
	})
	events := engine.Subscribe(64)

	if err := controller.RequestStart(hours, minutes, seconds); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", controller.Headline(), model.FormatClock(model.TotalSeconds(hours, minutes, seconds)))

	for {
		select {
		case task := <-tasks:
			task()
		case event := <-events:
			switch event.Type {
			case countdown.EventUpdated:
				fmt.Fprintln(out, model.FormatClock(event.State.RemainingSeconds))
			case countdown.EventCompleted:
				return nil
			}
		case <-ctx.Done():
			fmt.Fprintln(out, "stopped")
			return nil
		}
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(string, string) error {
	return nil
}
