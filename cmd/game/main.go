package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/perihelion/salvage/internal/asset"
	"github.com/perihelion/salvage/internal/audio"
	"github.com/perihelion/salvage/internal/config"
	"github.com/perihelion/salvage/internal/game"
)

func main() {
	meshes := loadMeshes()
	soundOn := config.GetEnvBool("SALVAGE_AUDIO", true)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := game.Options{
		Meshes: meshes,
		Sound:  audio.NewEffects(soundOn),
	}
	if err := game.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// loadMeshes loads the mesh blob named by SALVAGE_MESHES, falling back to
// the built-in shapes when unset or unreadable.
func loadMeshes() *asset.Library {
	path := config.GetEnv("SALVAGE_MESHES", "")
	if path == "" {
		return asset.Builtin()
	}
	lib, err := asset.LoadFile(path)
	if err != nil {
		log.Warn("falling back to built-in meshes", "path", path, "err", err)
		return asset.Builtin()
	}
	return lib
}
