package player

import (
	"image/color"

	"fyne.io/fyne/v2"
)

var (
	colorStatusActive = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	colorStatusPaused = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorCounter      = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xb4}
	colorBarBack      = color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
)

// chromeLayout stacks the slide over the status furniture: indicator
// top-left, deck progress bar and step counter along the bottom edge.
// fraction is how much of the deck has been entered, landing = 0.
type chromeLayout struct {
	fraction float32
}

func (layout *chromeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	slide := objects[0]
	barBack := objects[1]
	barFill := objects[2]
	counter := objects[3]
	status := objects[4]

	slide.Move(fyne.NewPos(0, 0))
	slide.Resize(size)

	barWidth := size.Width * 0.5
	barHeight := size.Height * 0.012
	barX := (size.Width - barWidth) / 2
	barY := size.Height - barHeight - size.Height*0.04

	barBack.Move(fyne.NewPos(barX, barY))
	barBack.Resize(fyne.NewSize(barWidth, barHeight))

	fraction := layout.fraction
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	barFill.Move(fyne.NewPos(barX, barY))
	barFill.Resize(fyne.NewSize(barWidth*fraction, barHeight))

	counterSize := counter.MinSize()
	counter.Move(fyne.NewPos((size.Width-counterSize.Width)/2, size.Height-counterSize.Height-size.Height*0.008))
	counter.Resize(counterSize)

	statusSize := status.MinSize()
	status.Move(fyne.NewPos(size.Width*0.015, size.Height*0.015))
	status.Resize(statusSize)
}

func (layout *chromeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	return objects[0].MinSize()
}
