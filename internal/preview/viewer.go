package preview

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/nlbtt/layout"
)

const helpLine = "[n/→] next  [p/←] prev  [r] random  [q] quit"

// Viewer regenerates and redraws a layout for one seed at a time.
type Viewer struct {
	screen tcell.Screen
	params layout.Params
	seed   int64
	rng    *rand.Rand

	result layout.Result
	err    error
}

// NewViewer returns a viewer over an initialised screen, showing seed first.
// rng picks seeds for the random key; nil panics.
func NewViewer(screen tcell.Screen, p layout.Params, seed int64, rng *rand.Rand) *Viewer {
	if rng == nil {
		panic("preview: NewViewer(nil rng)")
	}
	v := &Viewer{screen: screen, params: p, seed: seed, rng: rng}
	v.regenerate()
	return v
}

// Seed returns the seed currently shown.
func (v *Viewer) Seed() int64 { return v.seed }

// Result returns the layout currently shown; it is the zero Result when the
// last generation failed.
func (v *Viewer) Result() layout.Result { return v.result }

// Err returns the error from the last generation, if any.
func (v *Viewer) Err() error { return v.err }

// Run draws and handles events until the user quits or ctx is done.
// It does not finalise the screen.
func (v *Viewer) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := v.handle(ev); quit {
			return nil
		}
		v.draw()
	}
}

// handle applies one event and reports whether the viewer should exit.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRight:
			v.step(1)
		case tcell.KeyLeft:
			v.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'n':
				v.step(1)
			case 'p':
				v.step(-1)
			case 'r':
				v.seed = v.rng.Int63()
				v.regenerate()
			}
		}
	}
	return false
}

func (v *Viewer) step(delta int64) {
	v.seed += delta
	v.regenerate()
}

func (v *Viewer) regenerate() {
	v.result, v.err = layout.Build(v.params, layout.WithSeed(v.seed))
}

func (v *Viewer) draw() {
	if v.err != nil {
		v.screen.Clear()
		drawText(v.screen, 0, 0, styleError, v.err.Error())
		drawText(v.screen, 0, 2, tcell.StyleDefault, helpLine)
		v.screen.Show()
		return
	}
	Draw(v.screen, v.result)
	drawText(v.screen, 0, v.result.Grid.Height()+2, tcell.StyleDefault, helpLine)
	v.screen.Show()
}
