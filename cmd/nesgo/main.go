// Command nesgo is the thin host around the emulator core: it opens a
// window, scans the keyboard, and presents frames. None of that lives in
// internal/ — the core is a plain Go library importable without a display.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesgo/internal/console"
	"github.com/nesgo/nesgo/internal/hostconfig"
	"github.com/nesgo/nesgo/internal/ppu"
	"github.com/nesgo/nesgo/internal/version"
)

func main() {
	var (
		configPath = flag.String("config", hostconfig.DefaultPath(), "path to JSON config file")
		debug      = flag.Bool("debug", false, "log the first occurrence of a no-op unofficial opcode")
		nogui      = flag.Bool("nogui", false, "run headless: step the emulator and dump PPM frames instead of opening a window")
		scale      = flag.Int("scale", 0, "integer window scale factor (overrides the config file when > 0)")
		showVer    = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.GetDetailedVersion())
		return
	}

	romPath := flag.Arg(0)
	if romPath == "" {
		log.Fatal("usage: nesgo [options] <rom-file>")
	}

	cfg, err := hostconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *scale > 0 {
		cfg.Window.Scale = *scale
	}

	nes := console.New()
	if err := nes.LoadCartridge(romPath); err != nil {
		log.Fatalf("loading cartridge: %v", err)
	}
	defer func() {
		if err := nes.Shutdown(); err != nil {
			log.Printf("saving battery RAM: %v", err)
		}
	}()

	if *debug {
		nes.CPU.LogUnofficialOpcodes = true
	}

	if *nogui || cfg.Video.Backend == "headless" {
		runHeadless(nes)
		return
	}

	game := newGame(nes, cfg)
	width, height := cfg.WindowResolution()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(fmt.Sprintf("nesgo - %s", romPath))
	ebiten.SetVsyncEnabled(cfg.Video.VSync)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("game loop exited: %v", err)
	}
}

// runHeadless steps the emulator for a fixed number of frames with no
// window, dumping a handful of frames as PPM images for inspection — the
// same escape hatch the teacher's headless backend offered for testing
// without a display.
func runHeadless(nes *console.Console) {
	const targetFrames = 120
	frame := 0
	for frame < targetFrames {
		nes.Step()
		if !nes.FrameComplete() {
			continue
		}
		frame++
		if frame == 30 || frame == 60 || frame == 120 {
			name := fmt.Sprintf("frame_%03d.ppm", frame)
			if err := writeFrameAsPPM(nes.GetFrameBuffer(), name); err != nil {
				log.Printf("writing %s: %v", name, err)
				continue
			}
			fmt.Printf("wrote %s\n", name)
		}
	}
}

func writeFrameAsPPM(frame *[256 * 240]ppu.Color, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "P3\n256 240\n255\n")
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			c := frame[y*256+x]
			fmt.Fprintf(file, "%d %d %d ", c.R, c.G, c.B)
		}
		fmt.Fprintln(file)
	}
	return nil
}
