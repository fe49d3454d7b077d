// Package player hosts a deck in a window: it implements the sequencer's
// render surface, translates keyboard input into navigation, and draws the
// status chrome (indicator, step counter, deck progress bar).
package player

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"stepshow/internal/core/sequencer"
	"stepshow/internal/core/storyboard"
	"stepshow/internal/deck"
	"stepshow/internal/render"
)

const helpText = `SPATIE : volgende stap
B      : vorige stap
R      : reset naar begin
S      : terug naar deck-menu
F      : volledig scherm aan/uit
H      : deze hulp
Q/ESC  : afsluiten`

// Options configures a player window.
type Options struct {
	TickInterval time.Duration
	Fullscreen   bool
	OnMenu       func()
	OnQuit       func()
}

// Window plays one deck.
type Window struct {
	app        fyne.App
	window     fyne.Window
	deck       *deck.Deck
	seq        *sequencer.Sequencer
	options    Options
	slide      *fyne.Container
	status     *canvas.Text
	counter    *canvas.Text
	barFill    *canvas.Rectangle
	chrome     *fyne.Container
	chromeFrame *chromeLayout
	fullscreen bool
}

// New creates a player window for the deck. The deck's storyboard is
// validated here; an invalid deck refuses to open.
func New(app fyne.App, d *deck.Deck, options Options) (*Window, error) {
	window := app.NewWindow(d.Title)
	window.Resize(fyne.NewSize(render.DesignWidth, render.DesignHeight))

	player := &Window{
		app:     app,
		window:  window,
		deck:    d,
		options: options,
	}

	seq, err := sequencer.New(d.Storyboard(), player, sequencer.Config{TickInterval: options.TickInterval})
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("open deck %q: %w", d.Title, err)
	}
	player.seq = seq

	player.buildContent()
	window.Canvas().SetOnTypedKey(player.handleKey)
	window.SetCloseIntercept(func() {
		player.Close()
		if options.OnQuit != nil {
			options.OnQuit()
		}
	})
	if options.Fullscreen {
		player.fullscreen = true
		window.SetFullScreen(true)
	}
	return player, nil
}

// Show opens the window on the landing view and starts the event watcher.
func (player *Window) Show() {
	events := player.seq.Subscribe(64)
	go player.watch(events)

	player.window.Show()
	if err := player.seq.Reset(); err != nil {
		player.fatal(err)
	}
}

// Close tears down the sequencer and the window.
func (player *Window) Close() {
	player.seq.Close()
	player.window.Close()
}

// Render implements sequencer.Surface: rebuild the scene for the step and
// progress, the way the original tools redraw the whole figure per frame.
func (player *Window) Render(stepIndex int, progress float64) error {
	scene := render.Scene(player.deck, stepIndex, progress)
	fyne.Do(func() {
		player.slide.Objects = []fyne.CanvasObject{scene}
		player.slide.Refresh()
		player.updateChrome(stepIndex, progress)
	})
	return nil
}

func (player *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		if err := player.seq.Advance(); err != nil {
			player.fatal(err)
		}
	case fyne.KeyB:
		if err := player.seq.Retreat(); err != nil {
			player.fatal(err)
		}
	case fyne.KeyR:
		if err := player.seq.Reset(); err != nil {
			player.fatal(err)
		}
	case fyne.KeyF:
		// Display mode only; sequencing state is untouched.
		player.fullscreen = !player.fullscreen
		player.window.SetFullScreen(player.fullscreen)
	case fyne.KeyH:
		dialog.ShowInformation("Besturing", helpText, player.window)
	case fyne.KeyS:
		if player.options.OnMenu != nil {
			player.Close()
			player.options.OnMenu()
		}
	case fyne.KeyQ, fyne.KeyEscape:
		player.Close()
		if player.options.OnQuit != nil {
			player.options.OnQuit()
		}
	}
}

func (player *Window) watch(events <-chan sequencer.Event) {
	for event := range events {
		switch event.Type {
		case sequencer.EventNotice:
			log.Printf("deck %q: %s", player.deck.Title, event.Message)
		case sequencer.EventStepSettled:
			if event.AtLastStep {
				log.Printf("deck %q: laatste stap bereikt", player.deck.Title)
			}
		case sequencer.EventRenderFailure:
			player.fatal(event.Err)
			return
		}
	}
}

// fatal handles a render failure: the visual state is undefined, so the
// session ends rather than papering over it.
func (player *Window) fatal(err error) {
	log.Printf("render failure, closing session: %v", err)
	fyne.Do(func() {
		player.Close()
		if player.options.OnQuit != nil {
			player.options.OnQuit()
		}
	})
}

func (player *Window) buildContent() {
	player.slide = container.NewStack(render.Scene(player.deck, storyboard.LandingIndex, 1))

	player.status = canvas.NewText("", colorStatusPaused)
	player.status.TextSize = 14
	player.status.TextStyle = fyne.TextStyle{Bold: true}

	player.counter = canvas.NewText("", colorCounter)
	player.counter.TextSize = 15
	player.counter.Alignment = fyne.TextAlignCenter

	barBack := canvas.NewRectangle(colorBarBack)
	player.barFill = canvas.NewRectangle(colorStatusPaused)

	player.chromeFrame = &chromeLayout{}
	player.chrome = container.New(player.chromeFrame,
		player.slide, barBack, player.barFill, player.counter, player.status)
	player.window.SetContent(player.chrome)
}

func (player *Window) updateChrome(stepIndex int, progress float64) {
	animating := stepIndex != storyboard.LandingIndex && progress < 1
	if animating {
		player.status.Text = "ANIMEREN..."
		player.status.Color = colorStatusActive
		player.barFill.FillColor = colorStatusActive
	} else {
		player.status.Text = "GEPAUZEERD - SPATIE = volgende"
		player.status.Color = colorStatusPaused
		player.barFill.FillColor = colorStatusPaused
	}

	total := len(player.deck.Steps)
	player.counter.Text = fmt.Sprintf("Stap %d / %d", stepIndex+1, total)
	if stepIndex == storyboard.LandingIndex {
		player.counter.Text = fmt.Sprintf("Start / %d", total)
	}

	player.chromeFrame.fraction = float32(stepIndex+1) / float32(total)
	player.chrome.Refresh()
}
