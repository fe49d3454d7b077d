package render

import "fyne.io/fyne/v2"

// placement positions one scene object as fractions of the frame size.
type placement struct {
	X, Y, W, H float32
}

// frameLayout places objects by fractional coordinates so a scene scales
// with its host, window or off-screen image alike.
type frameLayout struct {
	placements []placement
}

func newFrameLayout(placements []placement) *frameLayout {
	return &frameLayout{placements: placements}
}

func (layout *frameLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for index, object := range objects {
		if index >= len(layout.placements) {
			return
		}
		spot := layout.placements[index]
		object.Move(fyne.NewPos(spot.X*size.Width, spot.Y*size.Height))
		object.Resize(fyne.NewSize(spot.W*size.Width, spot.H*size.Height))
	}
}

func (layout *frameLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	// Scenes are authored against a 16:9 design frame; the minimum keeps
	// text legible at half scale.
	return fyne.NewSize(DesignWidth/2, DesignHeight/2)
}
