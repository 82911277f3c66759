// dvdbounce renders a transparent, always-on-top, click-through overlay with
// a logo bouncing around the screen, recoloring on wall bounces and flashing
// when it strikes a corner.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"dvdbounce/internal/audio"
	"dvdbounce/internal/config"
	"dvdbounce/internal/overlay"
)

const logoAsset = "assets/dvd.png"

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dvdbounce: %v\n", err)
		os.Exit(2)
	}

	// The shared quit flag: cleared by SIGINT/SIGTERM here and by the
	// focused Ctrl+C / Ctrl+Q hotkey in the frame loop, polled once per
	// frame. A tray menu or any other integration would write it too.
	var running atomic.Bool
	running.Store(true)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		running.Store(false)
	}()

	logo, err := overlay.LoadLogo(findAsset(logoAsset))
	if err != nil {
		fatal(err)
	}

	chime, err := audio.NewChime()
	if err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		chime = nil
	}

	ebiten.SetWindowTitle("dvdbounce")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetTPS(60)
	if w, h := ebiten.Monitor().Size(); w > 0 && h > 0 {
		ebiten.SetWindowPosition(0, 0)
		ebiten.SetWindowSize(w, h)
	}

	game := overlay.NewGame(opts, logo, chime, &running)
	runOpts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	}
	if err := ebiten.RunGameWithOptions(game, runOpts); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(fmt.Errorf("run overlay: %w", err))
	}
}

// findAsset resolves path relative to the working directory, falling back to
// the executable's directory when launched from elsewhere.
func findAsset(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}

// fatal reports a startup error on stderr and, best effort, in a native
// dialog, since the overlay is usually launched without a terminal.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "dvdbounce: %v\n", err)
	_ = zenity.Error(err.Error(), zenity.Title("dvdbounce"))
	os.Exit(1)
}
