package cli

import (
	"errors"
	"log"

	"finpom/internal/core/countdown"
	"finpom/internal/core/model"
	"finpom/internal/core/scheduler"
	"finpom/internal/core/session"
	"finpom/internal/notify"
	"finpom/internal/platform"
	"finpom/internal/ui/popover"
	"finpom/internal/ui/tray"
	"finpom/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runTray(settings model.Settings) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.finpom.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IdleIcon))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	engine := countdown.New(countdown.Config{
		TickInterval: settings.TickInterval,
		Dispatch:     fyne.Do,
	})
	defer engine.Close()

	var notifier scheduler.Notifier = notify.NewDesktop(fyneApp)
	if !settings.Notifications {
		log.Printf("notifications disabled in settings")
		notifier = discardNotifier{}
	}
	sched := scheduler.New(notifier, scheduler.Config{Dispatch: fyne.Do})
	defer sched.CancelAll()

	controller := session.New(engine, sched, session.Config{
		WorkHours:        settings.WorkHours,
		ReminderInterval: settings.ReminderInterval,
	})

	timerWindow := popover.New(fyneApp, controller)
	desktopApp.SetSystemTrayWindow(timerWindow.Native())
	idleIcon := resources.MustIcon(resources.IdleIcon)
	runningIcon := resources.MustIcon(resources.RunningIcon)

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnOpen:        timerWindow.Show,
		OnAction:      timerWindow.Start,
		OnSelectHours: timerWindow.SelectPreset,
		OnMiniSession: timerWindow.StartMiniSession,
		OnReset: func() {
			controller.Reset()
			timerWindow.Refresh()
		},
		OnQuit: fyneApp.Quit,
	})
	desktopApp.SetSystemTrayIcon(idleIcon)

	engine.Observe(func(event countdown.Event) {
		timerWindow.Update(event)
		trayManager.SetState(
			session.NextLabel(event.State.Phase),
			model.FormatClock(event.State.RemainingSeconds),
			event.State.Running,
		)
		if event.State.Running {
			desktopApp.SetSystemTrayIcon(runningIcon)
		} else {
			desktopApp.SetSystemTrayIcon(idleIcon)
		}
	})

	timerWindow.Show()
	fyneApp.Run()
	return nil
}
