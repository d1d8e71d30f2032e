// Command raytracer renders a scene described by a JSON file to a PPM
// image (spec.md 6).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danaf/gorender/pkg/renderer"
	"github.com/danaf/gorender/pkg/scene"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	samples := fs.Int("samples", 100, "samples per pixel")
	maxDepth := fs.Int("max-depth", 50, "maximum path tracing recursion depth")
	workers := fs.Int("workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	out := fs.String("out", "output.ppm", "output PPM file path")
	progress := fs.Float64("progress", 0.1, "report progress every this fraction of rows (0 disables)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: raytracer [options] <scene_file>.json")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	log := renderer.NewDefaultLogger()
	sceneFile := fs.Arg(0)

	parsedScene, err := scene.Parse(sceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	camera := renderer.NewCamera(parsedScene.Camera)
	rt := renderer.NewRaytracer(parsedScene.World, camera, renderer.RenderConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
	})

	img := renderer.NewImage(camera.Width, camera.Height)
	pool := renderer.NewWorkerPool(rt, *workers)

	start := time.Now()
	pool.Render(img, *progress, func(fraction float64) {
		log.Printf("progress: %.0f%%\n", fraction*100)
	})
	log.Printf("render completed in %v\n", time.Since(start))

	if err := img.Dump(*out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	log.Printf("wrote %s\n", *out)

	return 0
}
