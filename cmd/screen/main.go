// Package main renders the HACK memory mapped screen in a window and
// feeds the keyboard register from the host keyboard.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/hack/cli"
	"go.creack.net/hack/op"
	"go.creack.net/hack/vm"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const (
	statusBarHeight = 16
	cyclesPerFrame  = 100_000 // At 60fps, roughly a 6MHz clock.
)

// keyCodes maps host keys to the HACK keyboard scan codes. Letters map to
// their uppercase ASCII value.
var keyCodes = map[ebiten.Key]uint16{
	ebiten.KeySpace:      ' ',
	ebiten.KeyEnter:      128,
	ebiten.KeyBackspace:  129,
	ebiten.KeyArrowLeft:  130,
	ebiten.KeyArrowUp:    131,
	ebiten.KeyArrowRight: 132,
	ebiten.KeyArrowDown:  133,
	ebiten.KeyHome:       134,
	ebiten.KeyEnd:        135,
	ebiten.KeyPageUp:     136,
	ebiten.KeyPageDown:   137,
	ebiten.KeyInsert:     138,
	ebiten.KeyDelete:     139,
	ebiten.KeyEscape:     140,
}

func pressedKey() uint16 {
	for k, code := range keyCodes {
		if ebiten.IsKeyPressed(k) {
			return code
		}
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		if ebiten.IsKeyPressed(k) {
			return uint16('A' + k - ebiten.KeyA)
		}
	}
	for k := ebiten.Key0; k <= ebiten.Key9; k++ {
		if ebiten.IsKeyPressed(k) {
			return uint16('0' + k - ebiten.Key0)
		}
	}
	for i := 0; i < 12; i++ {
		if ebiten.IsKeyPressed(ebiten.KeyF1 + ebiten.Key(i)) {
			return uint16(141 + i)
		}
	}
	return 0
}

type Game struct {
	m *vm.Machine

	frame  *ebiten.Image // Offscreen image of the HACK screen.
	pixels []byte        // RGBA buffer backing the frame.
}

func NewGame(m *vm.Machine) *Game {
	return &Game{
		m:      m,
		frame:  ebiten.NewImage(op.ScreenWidth, op.ScreenHeight),
		pixels: make([]byte, op.ScreenWidth*op.ScreenHeight*4),
	}
}

// Update proceeds the machine state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	g.m.SetKeyboard(pressedKey())
	if g.m.Halted() {
		return nil
	}
	if err := g.m.Run(cyclesPerFrame); err != nil {
		return fmt.Errorf("failed to execute instruction: %w", err)
	}
	return nil
}

// Draw draws the screen memory and a status line.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	i := 0
	for y := range op.ScreenHeight {
		for x := range op.ScreenWidth {
			// Pixels are black on white, like the original display.
			v := byte(0xff)
			if g.m.Ram.Pixel(x, y) {
				v = 0
			}
			g.pixels[i] = v
			g.pixels[i+1] = v
			g.pixels[i+2] = v
			g.pixels[i+3] = 0xff
			i += 4
		}
	}
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)

	status := fmt.Sprintf("cycle %d  pc %d  a %d  d %d", g.m.Cycle, g.m.PC, int16(g.m.A), int16(g.m.D))
	if g.m.Halted() {
		status += "  [halted]"
	}
	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(2, op.ScreenHeight+2)
	textOp.ColorScale.ScaleWithColor(color.RGBA{G: 255, A: 255})
	text.Draw(screen, status, fontFace, textOp)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return op.ScreenWidth, op.ScreenHeight + statusBarHeight
}

func main() {
	cfg, in, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	m, err := vm.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create machine: %s.", err)
	}

	ebiten.SetWindowTitle("HACK - " + in.ShortName)
	ebiten.SetWindowSize(op.ScreenWidth*2, (op.ScreenHeight+statusBarHeight)*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGameWithOptions(NewGame(m), &ebiten.RunGameOptions{
		InitUnfocused: true,
	}); err != nil {
		log.Fatal(err)
	}
}
