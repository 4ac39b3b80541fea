//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conway/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	shell, err := app.NewShell(cfg, log.Default())
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(shell)

	size := shell.Sim().Size()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
