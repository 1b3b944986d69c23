package notify

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// ErrNoApp indicates a desktop notifier without a running application.
var ErrNoApp = errors.New("no fyne application")

// Desktop sends notifications through the fyne application.
type Desktop struct {
	app fyne.App
}

// NewDesktop creates a notifier for app.
func NewDesktop(app fyne.App) *Desktop {
	return &Desktop{app: app}
}

// Notify shows a desktop notification.
func (desktop *Desktop) Notify(title, body string) error {
	if desktop == nil || desktop.app == nil {
		return ErrNoApp
	}
	desktop.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

// Writer prints notifications as timestamped lines.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewWriter creates a notifier writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, now: time.Now}
}

// Notify writes a single notification line.
func (writer *Writer) Notify(title, body string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()
	if _, err := fmt.Fprintf(writer.out, "[%s] %s: %s\n", writer.now().Format("15:04:05"), title, body); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
