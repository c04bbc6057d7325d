package render

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
)

var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// WritePNG creates or truncates path and encodes img into it.
// Opaque images are stored as 8-bit truecolor without alpha.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := encoder.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
