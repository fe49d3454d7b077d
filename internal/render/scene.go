// Package render builds the visual frame for a deck step at a given reveal
// progress. Scene is a pure function of its arguments: the same
// (step, progress) pair always yields the same frame, which backward
// navigation and the exporter both rely on.
package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"stepshow/internal/core/storyboard"
	"stepshow/internal/deck"
)

// Design size of a scene; layouts scale positions to the actual canvas.
const (
	DesignWidth  = float32(1280)
	DesignHeight = float32(720)
)

// Dark palette shared by all decks.
var (
	colorBackground = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	colorPanel      = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	colorPrimary    = color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	colorSecondary  = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorAccent     = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	colorText       = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorDim        = color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// Width of the progress band over which a freshly revealed fragment fades in.
const fadeBand = 0.12

// Scene renders one frame: the landing view for storyboard.LandingIndex,
// otherwise the indexed step revealed up to progress.
func Scene(d *deck.Deck, stepIndex int, progress float64) fyne.CanvasObject {
	if stepIndex == storyboard.LandingIndex {
		return landingScene(d)
	}
	step := d.Step(stepIndex)
	if step == nil {
		// Out-of-range indexes never come from the sequencer; show an
		// empty slide rather than panic in the render path.
		return container.New(newFrameLayout(nil), canvas.NewRectangle(colorBackground))
	}
	return stepScene(step, progress)
}

func landingScene(d *deck.Deck) fyne.CanvasObject {
	background := canvas.NewRectangle(colorBackground)

	titleBox := canvas.NewRectangle(colorPanel)
	titleBox.StrokeColor = colorPrimary
	titleBox.StrokeWidth = 3
	titleBox.CornerRadius = 12

	title := newText(d.Title, 44, colorPrimary, true)
	subtitle := newText(d.Subtitle, 24, colorSecondary, false)

	promptBox := canvas.NewRectangle(colorPanel)
	promptBox.StrokeColor = colorSecondary
	promptBox.StrokeWidth = 2
	promptBox.CornerRadius = 10
	prompt := newText(">> Druk op SPATIE om te beginnen <<", 26, colorSecondary, true)
	keys := newText("B=Terug • R=Reset • F=Volledig scherm • H=Help • Q=Afsluiten", 16, colorDim, false)

	footer := newText(d.Footer, 15, colorDim, false)

	placements := []placement{
		{X: 0, Y: 0, W: 1, H: 1},               // background
		{X: 0.12, Y: 0.18, W: 0.76, H: 0.26},   // title box
		{X: 0.12, Y: 0.22, W: 0.76, H: 0.1},    // title
		{X: 0.12, Y: 0.33, W: 0.76, H: 0.07},   // subtitle
		{X: 0.25, Y: 0.58, W: 0.5, H: 0.16},    // prompt box
		{X: 0.25, Y: 0.62, W: 0.5, H: 0.08},    // prompt
		{X: 0.12, Y: 0.78, W: 0.76, H: 0.05},   // keys
		{X: 0.12, Y: 0.92, W: 0.76, H: 0.04},   // footer
	}
	return container.New(newFrameLayout(placements),
		background, titleBox, title, subtitle, promptBox, prompt, keys, footer)
}

func stepScene(step *deck.Step, progress float64) fyne.CanvasObject {
	background := canvas.NewRectangle(colorBackground)
	header := newText(step.Name, 34, colorPrimary, true)
	rule := canvas.NewRectangle(colorPrimary)

	objects := []fyne.CanvasObject{background, header, rule}
	placements := []placement{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: 0.06, Y: 0.05, W: 0.88, H: 0.09},
		{X: 0.06, Y: 0.145, W: 0.88, H: 0.004},
	}

	y := float32(0.21)
	for _, fragment := range step.Fragments {
		alpha := revealAlpha(progress, fragment.At)
		if alpha <= 0 {
			continue
		}
		text, height := fragmentText(fragment, alpha)
		objects = append(objects, text)
		placements = append(placements, placement{X: 0.08, Y: y, W: 0.84, H: height})
		y += height + 0.015
	}

	return container.New(newFrameLayout(placements), objects...)
}

func fragmentText(fragment deck.Fragment, alpha float64) (fyne.CanvasObject, float32) {
	label := fragment.Text
	size := float32(22)
	fill := colorText
	bold := false
	italic := false
	height := float32(0.062)

	switch fragment.Style {
	case deck.StyleTitle:
		size = 28
		fill = colorSecondary
		bold = true
		height = 0.078
	case deck.StyleBullet:
		label = "• " + label
	case deck.StyleHighlight:
		size = 24
		fill = colorAccent
		bold = true
		height = 0.068
	case deck.StyleNote:
		size = 18
		fill = colorDim
		italic = true
		height = 0.054
	}

	text := newText(label, size, fadeColor(fill, alpha), bold)
	text.TextStyle.Italic = italic
	text.Alignment = fyne.TextAlignLeading
	return text, height
}

// revealAlpha maps a step's progress to a fragment's opacity: hidden before
// its threshold, fading in over fadeBand, fully opaque at progress 1.0.
func revealAlpha(progress, at float64) float64 {
	if progress >= 1 {
		return 1
	}
	if progress < at {
		return 0
	}
	alpha := (progress - at) / fadeBand
	if alpha > 1 {
		return 1
	}
	return alpha
}

func fadeColor(base color.NRGBA, alpha float64) color.NRGBA {
	if alpha >= 1 {
		return base
	}
	if alpha < 0 {
		alpha = 0
	}
	faded := base
	faded.A = uint8(float64(base.A) * alpha)
	return faded
}

func newText(label string, size float32, fill color.NRGBA, bold bool) *canvas.Text {
	text := canvas.NewText(label, fill)
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Bold: bold}
	text.Alignment = fyne.TextAlignCenter
	return text
}
