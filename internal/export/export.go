// Package export writes a deck's frames to PNG files without opening a
// window. The default mode captures every step fully settled (progress 1.0)
// plus the landing view; per-frame mode replays each step's full tick
// ladder, one image per frame.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/theme"
	xdraw "golang.org/x/image/draw"

	"stepshow/internal/core/storyboard"
	"stepshow/internal/deck"
	"stepshow/internal/render"
)

// Options controls an export run.
type Options struct {
	OutDir string
	// Width of the output images in pixels; height follows the 16:9
	// design frame. Zero keeps the design width.
	Width int
	// PerFrame dumps every animation tick instead of only settled steps.
	PerFrame bool
}

// Deck exports a deck and returns the written file paths in order.
func Deck(d *deck.Deck, options Options) ([]string, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(options.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	write := func(name string, stepIndex int, progress float64) error {
		path := filepath.Join(options.OutDir, name)
		if err := writeFrame(d, stepIndex, progress, options.Width, path); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	if err := write("00_landing.png", storyboard.LandingIndex, 1); err != nil {
		return nil, err
	}
	for stepIndex, step := range d.Steps {
		base := fmt.Sprintf("%02d_%s", stepIndex+1, slug(step.Name))
		if !options.PerFrame {
			if err := write(base+".png", stepIndex, 1); err != nil {
				return nil, err
			}
			continue
		}
		for frame := 0; frame < step.Frames; frame++ {
			progress := float64(frame) / float64(step.Frames)
			name := fmt.Sprintf("%s_f%03d.png", base, frame)
			if err := write(name, stepIndex, progress); err != nil {
				return nil, err
			}
		}
	}
	return written, nil
}

func writeFrame(d *deck.Deck, stepIndex int, progress float64, width int, path string) error {
	frame := capture(d, stepIndex, progress)
	if width > 0 && width != frame.Bounds().Dx() {
		frame = rescale(frame, width)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	if err := png.Encode(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// capture renders a scene off-screen at the full design size.
func capture(d *deck.Deck, stepIndex int, progress float64) image.Image {
	scene := render.Scene(d, stepIndex, progress)
	framed := container.New(&designLayout{}, scene)
	return software.Render(framed, theme.DefaultTheme())
}

func rescale(frame image.Image, width int) image.Image {
	bounds := frame.Bounds()
	height := width * bounds.Dy() / bounds.Dx()
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), frame, bounds, xdraw.Over, nil)
	return scaled
}

func slug(name string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			builder.WriteByte('_')
		}
	}
	return strings.Trim(builder.String(), "_")
}

// designLayout pins the scene to the 16:9 design frame so the off-screen
// canvas has a deterministic size.
type designLayout struct{}

func (layout *designLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		object.Move(fyne.NewPos(0, 0))
		object.Resize(size)
	}
}

func (layout *designLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(render.DesignWidth, render.DesignHeight)
}
