package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/zeninput/bindings"
	"github.com/milk9111/zeninput/hostinput"
	"github.com/milk9111/zeninput/input"
	"golang.org/x/image/colornames"
)

const (
	appName    = "zeninput"
	baseWidth  = 960
	baseHeight = 540
	stickSize  = 40
)

type Options struct {
	File  string
	Watch bool
	Saved bool
}

type Game struct {
	frames int

	sys      *input.System
	bridge   *hostinput.Bridge
	reloader *bindings.Reloader
	watcher  *bindings.Watcher
}

func NewGame(opts Options) (*Game, error) {
	clock := hostinput.NewClock()
	sys := input.NewSystem(clock)

	source := bindings.FileSource(opts.File)
	if opts.Saved {
		store, err := bindings.OpenStore(appName)
		if err != nil {
			log.Printf("Bindings: saved bindings unavailable: %v", err)
		} else {
			source = store.Source(source)
		}
	}

	reloader, err := bindings.NewReloader(sys, source)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sys:      sys,
		bridge:   hostinput.NewBridge(sys, clock, hostinput.Ebiten{}),
		reloader: reloader,
	}

	if opts.Watch {
		dirs := existingDirs(bindings.Dir, filepath.Join(bindings.Dir, "scripts"))
		if len(dirs) == 0 {
			log.Printf("Bindings: nothing to watch, %s/ does not exist", bindings.Dir)
			return g, nil
		}
		w, err := bindings.NewWatcher(dirs...)
		if err != nil {
			log.Printf("Bindings: watch disabled: %v", err)
			return g, nil
		}
		g.watcher = w
		reloader.Watch(w.Events)
	}

	return g, nil
}

func existingDirs(dirs ...string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.bridge.Update()
	g.reloader.Poll()
	g.reloader.Set().Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	set := g.reloader.Set()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f\n\n%s", g.frames, ebiten.ActualFPS(), describe(g.sys, set)))

	x := float32(baseWidth - 2*stickSize - 20)
	y := float32(stickSize + 20)
	for _, name := range set.StickNames() {
		drawStick(screen, x, y, set.Stick(name))
		ebitenutil.DebugPrintAt(screen, name, int(x)-stickSize, int(y)+stickSize+4)
		y += 2*stickSize + 30
	}
}

func drawStick(screen *ebiten.Image, cx, cy float32, s *input.VirtualStick) {
	vector.StrokeCircle(screen, cx, cy, stickSize, 2, colornames.Lightgrey, true)
	v := s.Value()
	px := cx + float32(v.X)*stickSize
	py := cy - float32(v.Y)*stickSize
	vector.StrokeLine(screen, cx, cy, px, py, 3, colornames.Lightgrey, true)

	c := colornames.Crimson
	if s.Pressed() {
		c = colornames.Gold
	}
	vector.DrawFilledCircle(screen, px, py, 5, c, true)
}

// describe renders the set and the connected controllers as text.
func describe(sys *input.System, set *bindings.Set) string {
	var b strings.Builder

	for _, name := range set.ButtonNames() {
		btn := set.Button(name)
		fmt.Fprintf(&b, "%-12s %s\n", name, flags(btn.Down(), btn.Pressed(), btn.Released()))
	}
	for _, name := range set.StickNames() {
		s := set.Stick(name)
		v, vi := s.Value(), s.ValueInt()
		fmt.Fprintf(&b, "%-12s (%+.2f, %+.2f) [%+d, %+d] %s\n", name, v.X, v.Y, vi.X, vi.Y, flags(false, s.Pressed(), s.Released()))
	}
	for _, name := range set.TriggerNames() {
		tr := set.Trigger(name)
		fmt.Fprintf(&b, "%-12s %s\n", name, flags(tr.Active(), tr.Pressed(), tr.Released()))
	}

	b.WriteString("\n")
	for slot := 0; slot < input.MaxControllers; slot++ {
		c := sys.Current().Controllers[slot]
		if !c.Connected {
			continue
		}
		fmt.Fprintf(&b, "pad %d: %s (%s)\n", slot, c.Name, c.ID)
	}

	return b.String()
}

func flags(down, pressed, released bool) string {
	mark := func(on bool, c byte) byte {
		if on {
			return c
		}
		return '.'
	}
	return string([]byte{mark(down, 'D'), mark(pressed, 'P'), mark(released, 'R')})
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
