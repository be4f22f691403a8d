package report

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Dialog shows the failure message in a blocking modal window with a
// single dismiss button. It owns the process's one fyne lifecycle: the
// window runs until the user dismisses it, which fits the fatal path
// where the process exits right after.
type Dialog struct{}

// Report opens the modal window and blocks until it is dismissed.
// A recovered panic (e.g. no usable display after all) degrades to a
// silent no-op; the message was already logged.
func (d *Dialog) Report(message string) {
	defer func() { _ = recover() }()

	a := app.New()
	w := a.NewWindow("Warp Journal")
	w.Resize(fyne.NewSize(360, 0))
	w.SetFixedSize(true)

	w.SetContent(container.NewVBox(
		widget.NewLabel(message),
		widget.NewButton("Okay", func() { a.Quit() }),
	))

	w.CenterOnScreen()
	w.ShowAndRun()
}
