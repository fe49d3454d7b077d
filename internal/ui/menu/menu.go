// Package menu shows the deck selection view, the entry point when the
// player starts without a deck argument.
package menu

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stepshow/internal/deck"
)

// Window is the deck chooser.
type Window struct {
	window fyne.Window
}

// New builds the chooser listing every bundled deck.
func New(app fyne.App, onSelect func(name string), onQuit func()) *Window {
	window := app.NewWindow("StepShow")
	window.Resize(fyne.NewSize(560, 480))
	window.CenterOnScreen()

	heading := canvas.NewText("StepShow", color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})
	heading.TextSize = 32
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	intro := widget.NewLabel("Kies een presentatie")
	intro.Alignment = fyne.TextAlignCenter

	items := []fyne.CanvasObject{heading, intro}
	for _, name := range deck.BuiltinNames() {
		entry := deck.MustBuiltin(name)
		deckName := name
		button := widget.NewButton(fmt.Sprintf("%s  (%d stappen)", entry.Title, len(entry.Steps)), func() {
			onSelect(deckName)
		})
		items = append(items, button)
		if entry.Subtitle != "" {
			subtitle := widget.NewLabel(entry.Subtitle)
			subtitle.Alignment = fyne.TextAlignCenter
			items = append(items, subtitle)
		}
	}

	quit := widget.NewButton("Afsluiten", func() {
		if onQuit != nil {
			onQuit()
		}
	})
	items = append(items, widget.NewSeparator(), quit)

	window.SetContent(container.NewPadded(container.NewVBox(items...)))
	window.SetCloseIntercept(func() {
		if onQuit != nil {
			onQuit()
		}
	})
	return &Window{window: window}
}

// Show displays the chooser.
func (chooser *Window) Show() {
	chooser.window.Show()
}

// Hide hides the chooser while a deck plays.
func (chooser *Window) Hide() {
	chooser.window.Hide()
}
