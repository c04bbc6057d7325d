package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rook-computer/iconmaker/internal/render"
)

// Message is printed once every asset has been written.
const Message = "Icons created!"

type App struct {
	Dir    string
	Out    io.Writer
	Assets []render.Asset
	Logger Logger
}

func New(dir string, out io.Writer) *App {
	return &App{Dir: dir, Out: out, Assets: render.Assets(), Logger: NoopLogger{}}
}

// Run writes every asset into Dir and then prints Message to Out.
// The first failure aborts the run; files written before it are left in place
// and no message is printed.
func (app *App) Run(ctx context.Context) error {
	logger := app.Logger
	if logger == nil {
		logger = NoopLogger{}
	}
	for _, asset := range app.Assets {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "before %s", asset.Name)
		}
		logger.Infof("render", "canvas %s %dx%d fill=%v", asset.Name, asset.Width, asset.Height, asset.Fill)
		path, err := asset.WriteTo(app.Dir)
		if err != nil {
			logger.Errorf("render", "write %s failed: %v", asset.Name, err)
			return err
		}
		logger.Infof("render", "wrote %s", path)
	}
	if _, err := io.WriteString(app.Out, Message+"\n"); err != nil {
		return errors.Wrap(err, "print confirmation")
	}
	return nil
}
