package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/zeninput/bindings"
)

func main() {
	file := flag.String("bindings", bindings.DefaultFile, "bindings file in bindings/ (falls back to the embedded copy)")
	watch := flag.Bool("watch", false, "reload bindings when files under bindings/ change")
	saved := flag.Bool("saved", false, "prefer bindings saved in the user data directory")
	save := flag.Bool("save", false, "save the loaded bindings to the user data directory and exit")
	flag.Parse()

	if *save {
		if err := saveBindings(*file); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("zeninput viewer")

	game, err := NewGame(Options{File: *file, Watch: *watch, Saved: *saved})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func saveBindings(file string) error {
	spec, err := bindings.FileSource(file)()
	if err != nil {
		return err
	}
	store, err := bindings.OpenStore(appName)
	if err != nil {
		return err
	}
	if err := store.Save(spec); err != nil {
		return err
	}
	log.Printf("Bindings: saved %s", file)
	return nil
}
