package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/starfield"
)

func init() {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "", "scene file (.toml, .yaml, .yml or .json)")
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "seed both effects; 0 seeds from the clock")
	headless := flag.Bool("headless", false, "run without a window")
	frames := flag.Uint64("frames", 0, "stop after this many frames; 0 runs until the window closes")
	flag.Parse()

	def := starfield.DefaultScene()
	if *scenePath != "" {
		loaded, err := starfield.LoadSceneFile(*scenePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		def = loaded
	}
	if *debug {
		def.Log.Debug = true
	}
	def = def.WithSeed(*seed)

	if *headless && *frames == 0 {
		fmt.Fprintln(os.Stderr, "-headless needs -frames")
		os.Exit(2)
	}

	app := starfield.NewAppBuilder().
		UseModule(def.Modules(!*headless)...).
		Build()

	if *frames == 0 {
		app.Run()
		return
	}
	for app.Frame() < *frames && !app.Exiting() {
		app.Step()
	}
	app.Shutdown()
}
