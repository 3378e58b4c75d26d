package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesgo/internal/console"
	"github.com/nesgo/nesgo/internal/hostconfig"
	"github.com/nesgo/nesgo/internal/input"
)

// game implements ebiten.Game, translating keyboard state into controller
// button masks once per Update and blitting the console's framebuffer once
// per Draw. It is the entire GUI surface of the host: no menu, no save
// states, no audio.
type game struct {
	nes *console.Console

	player1 keyMapping
	player2 keyMapping

	screen *ebiten.Image
	pixels []byte // RGBA scratch buffer reused across frames
}

type keyMapping struct {
	up, down, left, right ebiten.Key
	a, b, start, select_  ebiten.Key
}

func newGame(nes *console.Console, cfg *hostconfig.Config) *game {
	return &game{
		nes:     nes,
		player1: parseKeyMapping(cfg.Input.Player1),
		player2: parseKeyMapping(cfg.Input.Player2),
		screen:  ebiten.NewImage(256, 240),
		pixels:  make([]byte, 256*240*4),
	}
}

func (g *game) Update() error {
	g.nes.SetControllerButtons(0, sampleButtons(g.player1))
	g.nes.SetControllerButtons(1, sampleButtons(g.player2))

	for {
		g.nes.Step()
		if g.nes.FrameComplete() {
			break
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.nes.GetFrameBuffer()
	for i, c := range frame {
		o := i * 4
		g.pixels[o] = c.R
		g.pixels[o+1] = c.G
		g.pixels[o+2] = c.B
		g.pixels[o+3] = 0xFF
	}
	g.screen.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	bounds := screen.Bounds()
	scaleX := float64(bounds.Dx()) / 256
	scaleY := float64(bounds.Dy()) / 240
	op.GeoM.Scale(scaleX, scaleY)
	screen.DrawImage(g.screen, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func sampleButtons(m keyMapping) uint8 {
	var mask uint8
	set := func(bit input.Button, key ebiten.Key) {
		if ebiten.IsKeyPressed(key) {
			mask |= uint8(bit)
		}
	}
	set(input.ButtonUp, m.up)
	set(input.ButtonDown, m.down)
	set(input.ButtonLeft, m.left)
	set(input.ButtonRight, m.right)
	set(input.ButtonA, m.a)
	set(input.ButtonB, m.b)
	set(input.ButtonStart, m.start)
	set(input.ButtonSelect, m.select_)
	return mask
}

// keyByName maps the subset of ebiten.Key names used by the default
// hostconfig mapping and any mapping an edited config file might name.
var keyByName = map[string]ebiten.Key{
	"ArrowUp": ebiten.KeyArrowUp, "ArrowDown": ebiten.KeyArrowDown,
	"ArrowLeft": ebiten.KeyArrowLeft, "ArrowRight": ebiten.KeyArrowRight,
	"Enter": ebiten.KeyEnter, "Space": ebiten.KeySpace,
	"ShiftLeft": ebiten.KeyShiftLeft, "ShiftRight": ebiten.KeyShiftRight,
	"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
	"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
	"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
	"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
	"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
	"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
	"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,
}

func parseKeyMapping(m hostconfig.KeyMapping) keyMapping {
	return keyMapping{
		up:      keyByName[m.Up],
		down:    keyByName[m.Down],
		left:    keyByName[m.Left],
		right:   keyByName[m.Right],
		a:       keyByName[m.A],
		b:       keyByName[m.B],
		start:   keyByName[m.Start],
		select_: keyByName[m.Select],
	}
}
