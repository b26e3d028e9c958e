package game

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/perihelion/salvage/internal/asset"
	"github.com/perihelion/salvage/internal/audio"
	"github.com/perihelion/salvage/internal/draw"
	"github.com/perihelion/salvage/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxFrameDelta caps the simulation step after a stall so one slow frame
// cannot teleport everything across the field.
const maxFrameDelta = 0.1

// Options configures a game run.
type Options struct {
	TermSize draw.TermSizeFunc // defaults to stdout size
	Meshes   *asset.Library    // defaults to the built-in shapes
	Sound    *audio.Effects    // defaults to disabled
	Seed     int64             // spawn RNG seed; 0 seeds from wall clock
}

// Run drives the standard input, update, draw cycle at 60 FPS until the
// player quits. Each call is one independent single-player session stack:
// title screen, gameplay, game over, restart.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutSize
	}
	if opts.Meshes == nil {
		opts.Meshes = asset.Builtin()
	}
	if opts.Sound == nil {
		opts.Sound = audio.NewEffects(false)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stream := input.StartStream(r)
	session := NewSession(rng)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(PlayView, termWidth, termHeight)
	renderer := NewRenderer(opts.Meshes, canvas)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	running := true

	for running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		// ===== INPUT PHASE =====
		events := stream.Poll(frameStart)
		for _, ev := range events {
			if session.Phase == PhasePlaying && session.Controls.HandleEvent(ev) {
				continue
			}
			if !ev.Press || ev.Repeat {
				continue
			}
			switch ev.Key {
			case input.KeyQuit, input.KeyEscape:
				running = false
			case input.KeyEnter, input.KeyGrab:
				switch session.Phase {
				case PhaseStart:
					session.Phase = PhasePlaying
					stream.Reset()
				case PhaseGameOver:
					session = NewSession(rng)
					session.Phase = PhasePlaying
					stream.Reset()
				}
			}
		}

		// The byte source closing means the client hung up; end the
		// session instead of spinning on an empty stream.
		if stream.Closed() {
			break
		}

		// Track terminal resizes.
		if tw, th, err := opts.TermSize(); err == nil {
			canvas.Fit(tw, th)
		}

		// ===== UPDATE PHASE =====
		if session.Phase == PhasePlaying {
			ev := session.Update(dt)
			playSounds(opts.Sound, ev)
		}
		// GameOver and Start leave the world frozen; the simulation is not
		// stepped for a deactivated satellite.

		// ===== DRAW PHASE =====
		draw.ClearScreen(w)
		renderer.Draw(session)
		if err := canvas.Render(w); err != nil {
			return err
		}
		drawOverlay(session, w, canvas)

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// playSounds fires the effects a frame's events call for.
func playSounds(sound *audio.Effects, ev FrameEvents) {
	for i := 0; i < ev.Captured; i++ {
		sound.Capture()
	}
	if ev.Collided {
		sound.Collision()
	} else if ev.OutOfFuel {
		sound.GameOver()
	}
}
