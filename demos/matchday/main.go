// Matchday is a combined demo: a bench list with long-press reordering on
// the left and a tactical pitch with free chip placement on the right, both
// fed from one shared input sampler. An event feed at the bottom shows what
// the engines report. Double tap a player chip to hand them the armband.
//
// Run with -script to drive the demo from a JSON input script instead of
// the mouse; screenshot steps export timestamped PNGs into screenshots/.
// No external assets are required.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pitchsidegames/touchline"
)

const (
	windowTitle = "Touchline — Matchday Demo"
	screenW     = 960
	screenH     = 540
	benchX      = 24
	benchY      = 96
	benchW      = 240
	benchRowH   = 48
	feedLen     = 6
)

func main() {
	scriptPath := flag.String("script", "", "JSON input script to drive the demo")
	flag.Parse()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)

	g := newGame()
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := touchline.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		runner.OnScreenshot = func(label string) { g.pendingShot = label }
		g.input.SetTestRunner(runner)
		g.runner = runner
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// feed keeps the last few engine events for the on-screen log.
type feed struct {
	lines []string
}

func (f *feed) Record(ev touchline.Event) {
	line := ev.Kind.String()
	if ev.ItemID != "" {
		line += " " + ev.ItemID
	}
	if ev.Kind == touchline.EventReorder {
		line += fmt.Sprintf(" %d>%d", ev.FromIndex+1, ev.ToIndex+1)
	}
	f.lines = append(f.lines, line)
	if len(f.lines) > feedLen {
		f.lines = f.lines[len(f.lines)-feedLen:]
	}
}

type game struct {
	input *touchline.Input
	list  *touchline.ListDrag
	board *touchline.ChipBoard
	feed  *feed

	slide       map[string]float64
	captainID   string
	pendingShot string
	runner      *touchline.TestRunner
}

func newGame() *game {
	g := &game{
		input: touchline.NewInput(),
		feed:  &feed{},
		slide: map[string]float64{},
	}

	bench := []string{"Henderson", "Palmer", "Gordon", "Dunk", "Watkins"}
	items := make([]touchline.ListItem, len(bench))
	for i, name := range bench {
		items[i] = touchline.ListItem{ID: fmt.Sprintf("sub%d", i+1), UserData: name}
	}
	l := touchline.NewListDrag(touchline.ActivationConfig{})
	l.SetItems(items)
	l.SetRowProvider(g.measureBench)
	l.SetContainerProvider(func() touchline.Rect {
		return touchline.Rect{X: benchX, Y: benchY, Width: benchW, Height: float64(len(items)) * benchRowH}
	})
	l.OnReorder = func(items []touchline.ListItem) {
		g.slide = map[string]float64{}
	}
	l.SetEventSink(g.feed)
	g.list = l

	b := touchline.NewChipBoard(touchline.BoardConfig{}, pitchRect)
	b.OnDoubleTap = func(id string) { g.captainID = id }
	b.SetEventSink(g.feed)
	chips, _ := touchline.FormationChips("4-4-2", touchline.Color{R: 0.85, G: 0.2, B: 0.2, A: 1})
	b.SetChips(chips)
	g.board = b
	return g
}

func (g *game) Update() error {
	frame := g.input.ReadFrame()
	dt := 1.0 / float64(ebiten.TPS())
	g.list.Update(frame, dt)
	g.board.Update(frame, dt)

	for _, it := range g.list.Items() {
		target := g.list.ItemShift(it.ID)
		cur := g.slide[it.ID]
		g.slide[it.ID] = cur + (target-cur)*math.Min(1, dt*14)
	}

	if g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff})
	g.drawBench(screen)
	g.drawPitch(screen)
	g.drawFeed(screen)

	if g.pendingShot != "" {
		label := g.pendingShot
		g.pendingShot = ""
		if _, err := touchline.ExportTimestamped(screen, "screenshots", label); err != nil {
			log.Printf("screenshot %q: %v", label, err)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func (g *game) drawBench(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "BENCH (hold to reorder)", benchX, benchY-24)
	for i, it := range g.list.Items() {
		if g.list.IsItemBeingDragged(it.ID) {
			continue
		}
		r := benchRect(i)
		r.Y += g.slide[it.ID]
		c := touchline.Color{R: 0.16, G: 0.22, B: 0.34, A: 1}
		if g.list.IsItemActivating(it.ID) {
			c = touchline.Color{R: 0.24, G: 0.34, B: 0.52, A: 1}
		}
		drawBenchRow(screen, r, c, i+1, it.UserData.(string))
	}
	if idx, ok := g.list.DropIndex(); ok {
		y := benchY + float64(idx)*benchRowH
		fillRect(screen, touchline.Rect{X: benchX, Y: y - 1, Width: benchW, Height: 2},
			touchline.Color{R: 1, G: 1, B: 1, A: 0.9})
	}
	if pos, ok := g.list.GhostPosition(); ok {
		r := touchline.Rect{X: pos.X, Y: pos.Y, Width: benchW, Height: benchRowH}
		drawBenchRow(screen, r, touchline.Color{R: 0.36, G: 0.48, B: 0.72, A: 0.85},
			0, g.draggedName())
	}
}

func (g *game) drawPitch(screen *ebiten.Image) {
	r := pitchRect()
	fillRect(screen, r, touchline.Color{R: 0.11, G: 0.42, B: 0.2, A: 1})
	white := color.RGBA{R: 0xe8, G: 0xf0, B: 0xe8, A: 0xff}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, white, true)
	t := g.board.Transform()
	left := t.BoardToScreen(0, 50)
	right := t.BoardToScreen(100, 50)
	vector.StrokeLine(screen, float32(left.X), float32(left.Y), float32(right.X), float32(right.Y), 2, white, true)
	center := t.BoardToScreen(50, 50)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(r.Height)*0.12, 2, white, true)

	for _, chip := range g.board.Chips() {
		pos := t.BoardToScreen(chip.X, chip.Y)
		cx, cy := float32(pos.X), float32(pos.Y)
		radius := float32(touchline.DefaultChipRadius)
		if chip.Kind == touchline.ChipBall {
			radius = 9
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, rgba(chip.Color), true)
		if chip.ID == g.captainID {
			gold := color.RGBA{R: 0xf0, G: 0xc4, B: 0x30, A: 0xff}
			vector.StrokeCircle(screen, cx, cy, radius+3, 2, gold, true)
		}
		if g.board.ActiveChipID() == chip.ID {
			vector.StrokeCircle(screen, cx, cy, radius+3, 2, color.White, true)
		}
		if chip.Label != "" {
			ebitenutil.DebugPrintAt(screen, chip.Label,
				int(pos.X)-3*len(chip.Label), int(pos.Y)-8)
		}
	}
}

func (g *game) drawFeed(screen *ebiten.Image) {
	y := screenH - 20*feedLen - 16
	ebitenutil.DebugPrintAt(screen, "EVENTS", benchX, y-20)
	for i, line := range g.feed.lines {
		ebitenutil.DebugPrintAt(screen, line, benchX, y+i*20)
	}
}

func (g *game) measureBench() []touchline.RowRect {
	items := g.list.Items()
	rows := make([]touchline.RowRect, len(items))
	for i, it := range items {
		rows[i] = touchline.RowRect{ID: it.ID, Rect: benchRect(i)}
	}
	return rows
}

func (g *game) draggedName() string {
	id := g.list.DraggedItemID()
	for _, it := range g.list.Items() {
		if it.ID == id {
			return it.UserData.(string)
		}
	}
	return ""
}

func benchRect(index int) touchline.Rect {
	return touchline.Rect{X: benchX, Y: benchY + float64(index)*benchRowH, Width: benchW, Height: benchRowH}
}

func drawBenchRow(dst *ebiten.Image, r touchline.Rect, c touchline.Color, slot int, name string) {
	inset := touchline.Rect{X: r.X, Y: r.Y + 2, Width: r.Width, Height: r.Height - 4}
	fillRect(dst, inset, c)
	label := name
	if slot > 0 {
		label = fmt.Sprintf("%d  %s", slot, name)
	}
	ebitenutil.DebugPrintAt(dst, label, int(r.X)+14, int(r.Y)+16)
}

func pitchRect() touchline.Rect {
	return touchline.Rect{X: 320, Y: 48, Width: 600, Height: 420}
}

func fillRect(dst *ebiten.Image, r touchline.Rect, c touchline.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A))
	dst.DrawImage(touchline.WhitePixel, op)
}

func rgba(c touchline.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
