package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssets(t *testing.T) {
	assets := Assets()
	require.Len(t, assets, 2)

	assert.Equal(t, "icon.png", assets[0].Name)
	assert.Equal(t, 1024, assets[0].Width)
	assert.Equal(t, 1024, assets[0].Height)

	assert.Equal(t, "splash-icon.png", assets[1].Name)
	assert.Equal(t, 1284, assets[1].Width)
	assert.Equal(t, 2778, assets[1].Height)

	for _, a := range assets {
		assert.Equal(t, color.RGBA{R: 28, G: 28, B: 30, A: 255}, a.Fill, a.Name)
	}
}

func TestNewCanvasFillsEveryPixel(t *testing.T) {
	canvas, err := NewCanvas(37, 53, Background)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 37, 53), canvas.Bounds())

	for y := 0; y < 53; y++ {
		for x := 0; x < 37; x++ {
			if got := canvas.RGBAAt(x, y); got != Background {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, Background)
			}
		}
	}
}

func TestNewCanvasRejectsEmptySize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := NewCanvas(size[0], size[1], Background)
		assert.Error(t, err, "size %dx%d", size[0], size[1])
	}
}

func TestFillReplacesExistingPixels(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 4, 4))
	canvas.SetRGBA(1, 2, color.RGBA{R: 255, A: 128})

	Fill(canvas, Background)

	assert.Equal(t, Background, canvas.RGBAAt(1, 2))
	assert.Equal(t, Background, canvas.RGBAAt(3, 3))
}

func TestAssetRenderUsesAssetSize(t *testing.T) {
	canvas, err := Asset{Name: "x.png", Width: 3, Height: 9, Fill: Background}.Render()
	require.NoError(t, err)
	assert.Equal(t, 3, canvas.Bounds().Dx())
	assert.Equal(t, 9, canvas.Bounds().Dy())
}
