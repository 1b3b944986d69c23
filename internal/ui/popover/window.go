package popover

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"finpom/internal/core/countdown"
	"finpom/internal/core/model"
	"finpom/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Controller is the session API the timer window drives.
type Controller interface {
	RequestStart(hours, minutes, seconds int) error
	SelectWorkHoursPreset(hours int) (model.SessionPreset, error)
	StartMiniSession()
	State() model.CountdownState
}

// Window is the timer form shown from the tray.
type Window struct {
	window     fyne.Window
	controller Controller
	headline   *widget.Label
	hours      *widget.Entry
	minutes    *widget.Entry
	seconds    *widget.Entry
	clock      *widget.Label
	start      *widget.Button
	presets    *widget.Select
	mini       *widget.Button
	inputs     *fyne.Container
}

// New creates the timer window.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("FinPom")

	hours := newTimeEntry()
	minutes := newTimeEntry()
	seconds := newTimeEntry()

	headline := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	clock := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	clock.Hide()

	options := make([]string, 0, 5)
	for hour := 4; hour <= 8; hour++ {
		options = append(options, fmt.Sprintf("%d hours", hour))
	}

	timer := &Window{
		window:     window,
		controller: controller,
		headline:   headline,
		hours:      hours,
		minutes:    minutes,
		seconds:    seconds,
		clock:      clock,
	}
	timer.presets = widget.NewSelect(options, timer.handlePreset)
	timer.presets.PlaceHolder = "How long have you been working?"
	timer.start = widget.NewButton("", timer.Start)
	timer.start.Importance = widget.HighImportance
	timer.mini = widget.NewButton("Mini session", timer.StartMiniSession)
	timer.mini.Importance = widget.LowImportance

	timer.inputs = container.NewGridWithColumns(3, hours, minutes, seconds)
	form := container.NewVBox(
		timer.presets,
		headline,
		container.NewGridWithColumns(3,
			widget.NewLabelWithStyle("Hours", fyne.TextAlignCenter, fyne.TextStyle{}),
			widget.NewLabelWithStyle("Minutes", fyne.TextAlignCenter, fyne.TextStyle{}),
			widget.NewLabelWithStyle("Seconds", fyne.TextAlignCenter, fyne.TextStyle{}),
		),
		timer.inputs,
		clock,
		container.NewHBox(layout.NewSpacer(), timer.start, layout.NewSpacer()),
		container.NewHBox(layout.NewSpacer(), timer.mini, layout.NewSpacer()),
	)

	window.SetContent(container.NewPadded(form))
	window.Resize(fyne.NewSize(330, 240))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	timer.Refresh()
	return timer
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Native returns the underlying fyne window.
func (timer *Window) Native() fyne.Window {
	return timer.window
}

// Hide closes the window without quitting.
func (timer *Window) Hide() {
	timer.window.Hide()
}

// Update applies a countdown event to the display.
func (timer *Window) Update(event countdown.Event) {
	timer.render(event.State)
}

// Refresh redraws the window from the controller state.
func (timer *Window) Refresh() {
	timer.render(timer.controller.State())
}

func (timer *Window) render(state model.CountdownState) {
	timer.headline.SetText(session.Headline(state.Phase))
	timer.start.SetText(session.NextLabel(state.Phase))
	if state.Running {
		timer.clock.SetText(formatDigits(state.RemainingSeconds))
		timer.clock.Show()
		timer.inputs.Hide()
		return
	}
	timer.clock.Hide()
	timer.inputs.Show()
}

// Start runs the start action with the running countdown or the typed duration.
func (timer *Window) Start() {
	hours, minutes, seconds := timer.requestedDuration()
	err := timer.controller.RequestStart(hours, minutes, seconds)
	if errors.Is(err, session.ErrEmptyDuration) {
		return
	}
	if err != nil {
		log.Printf("start timer: %v", err)
		return
	}
	timer.Refresh()
	timer.Hide()
}

func (timer *Window) handlePreset(option string) {
	if hours, ok := parseHours(option); ok {
		timer.SelectPreset(hours)
	}
}

// SelectPreset fills the form with a work-hours preset and starts it.
func (timer *Window) SelectPreset(hours int) {
	timer.hours.SetText(fmt.Sprintf("%02d", hours))
	timer.minutes.SetText("00")
	timer.seconds.SetText("00")
	if _, err := timer.controller.SelectWorkHoursPreset(hours); err != nil {
		log.Printf("select preset: %v", err)
		return
	}
	timer.Refresh()
}

// StartMiniSession starts the one-minute session.
func (timer *Window) StartMiniSession() {
	timer.controller.StartMiniSession()
	timer.Refresh()
}

// requestedDuration prefers the running countdown over the typed values.
func (timer *Window) requestedDuration() (int, int, int) {
	state := timer.controller.State()
	if state.Running && state.RemainingSeconds > 0 {
		return model.SplitSeconds(state.RemainingSeconds)
	}
	return parseField(timer.hours.Text), parseField(timer.minutes.Text), parseField(timer.seconds.Text)
}

func newTimeEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("00")
	entry.SetText("00")
	return entry
}

func parseField(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func parseHours(option string) (int, bool) {
	fields := strings.Fields(option)
	if len(fields) == 0 {
		return 0, false
	}
	hours, err := strconv.Atoi(fields[0])
	if err != nil || hours <= 0 {
		return 0, false
	}
	return hours, true
}

func formatDigits(total int) string {
	hours, minutes, seconds := model.SplitSeconds(total)
	return fmt.Sprintf("%02d : %02d : %02d", hours, minutes, seconds)
}
