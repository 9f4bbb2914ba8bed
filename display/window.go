package display

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/pixel-gol/model"
	"github.com/sheikhrachel/pixel-gol/utils"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Window presents a scene in an ebiten window. Every observed input advances
// the scene and requests a redraw; Escape closes the window.
type Window struct {
	ctx   context.Context
	scene model.Scene
	stats *utils.Stats
	title string

	width, height int
	frame         []byte
	redraw        bool

	outsideWidth, outsideHeight int
	resized                     bool

	keys []ebiten.Key
}

func NewWindow(ctx context.Context, config utils.Config, scene model.Scene) *Window {
	width, height := scene.Size()
	return &Window{
		ctx:    ctx,
		scene:  scene,
		stats:  utils.NewStats(),
		title:  config.Title,
		width:  width,
		height: height,
		frame:  make([]byte, 4*width*height),
		redraw: true,
	}
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if w.inputObserved() {
		w.scene.Input()
		w.redraw = true
		if evolving, ok := w.scene.(model.Evolving); ok {
			board := evolving.Board()
			w.stats.Update(evolving.Generation(), board.CountLivingCells(), board.GetBoardHash())
			ebiten.SetWindowTitle(fmt.Sprintf("%s | Gen: %d | Living: %d | %s",
				w.title, w.stats.Generation, w.stats.Population, w.stats.Status()))
		}
	}
	return nil
}

func (w *Window) inputObserved() bool {
	observed := w.resized
	w.resized = false

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	if len(w.keys) > 0 {
		observed = true
	}
	for _, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			observed = true
		}
	}
	return observed
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	if w.redraw {
		w.scene.Redraw(w.frame)
		w.redraw = false
	}
	screen.WritePixels(w.frame)
}

// Layout implements ebiten.Game. The logical screen always matches the grid so
// one cell maps to one pixel; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w.outsideWidth != 0 && (outsideWidth != w.outsideWidth || outsideHeight != w.outsideHeight) {
		w.resized = true
	}
	w.outsideWidth, w.outsideHeight = outsideWidth, outsideHeight
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or ctx is cancelled
func Run(ctx context.Context, config utils.Config, scene model.Scene) error {
	width, height := scene.Size()

	ebiten.SetWindowSize(width*config.Scale, height*config.Scale)
	ebiten.SetWindowSizeLimits(width, height, -1, -1)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewWindow(ctx, config, scene)); err != nil {
		return errors.Wrap(err, "[Run] game loop failed")
	}
	return nil
}
