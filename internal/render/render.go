package render

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// Asset is one placeholder image written by the generator.
type Asset struct {
	Name   string // file name relative to the output directory
	Width  int
	Height int
	Fill   color.RGBA
}

// Assets returns the placeholder set in write order: app icon, then splash.
func Assets() []Asset {
	return []Asset{
		{Name: "icon.png", Width: IconWidth, Height: IconHeight, Fill: Background},
		{Name: "splash-icon.png", Width: SplashWidth, Height: SplashHeight, Fill: Background},
	}
}

// Render allocates the asset's canvas.
func (a Asset) Render() (*image.RGBA, error) {
	return NewCanvas(a.Width, a.Height, a.Fill)
}

// WriteTo renders the asset and writes it into dir, replacing any existing file.
// It returns the path written.
func (a Asset) WriteTo(dir string) (string, error) {
	canvas, err := a.Render()
	if err != nil {
		return "", errors.Wrapf(err, "render %s", a.Name)
	}
	path := filepath.Join(dir, a.Name)
	if err := WritePNG(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// NewCanvas returns a width x height canvas with every pixel set to fill.
func NewCanvas(width, height int, fill color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", width, height)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	Fill(canvas, fill)
	return canvas, nil
}

// Fill paints the whole of dst with c, replacing whatever was there.
func Fill(dst xdraw.Image, c color.Color) {
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{C: c}, image.Point{}, xdraw.Src)
}
