package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"github.com/ejharv/boxtracer/pkg/loaders"
	"github.com/ejharv/boxtracer/pkg/renderer"
	"github.com/ejharv/boxtracer/pkg/scene"
)

// previewWidth is the width of the optional downscaled preview image
const previewWidth = 256

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'facing' or 'cubes'")
	sceneFile := flag.String("file", "", "JSON scene description file (overrides -scene)")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	preview := flag.Bool("preview", false, "Also write a downscaled preview image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Box Tracer")
		fmt.Println("Usage: boxtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Single green cube seen from far off to the side")
		fmt.Println("  facing  - Single green cube seen head-on from the origin")
		fmt.Println("  cubes   - Three cubes at different depths")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	// Create scene from file or by name
	var selectedScene *scene.Scene
	var sceneName string
	var err error
	if *sceneFile != "" {
		selectedScene, err = loaders.LoadScene(*sceneFile)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			os.Exit(1)
		}
		sceneName = strings.TrimSuffix(filepath.Base(*sceneFile), filepath.Ext(*sceneFile))
	} else {
		selectedScene, err = createScene(*sceneType)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		sceneName = *sceneType
	}

	// Apply overrides on top of the scene defaults
	if *width > 0 {
		selectedScene.Width = *width
	}
	if *height > 0 {
		selectedScene.Height = *height
	}
	if *fov > 0 {
		selectedScene.FOV = *fov
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, selectedScene.Width, selectedScene.Height)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	pool := renderer.NewWorkerPool(raytracer, *workers)

	fmt.Printf("Rendering %dx%d with %d workers...\n",
		selectedScene.Width, selectedScene.Height, pool.GetNumWorkers())

	startTime := time.Now()
	fb, stats, err := pool.Render()
	if err != nil {
		fmt.Printf("Render error: %v\n", err)
		os.Exit(1)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Rays hit: %d of %d pixels (%d background)\n",
		stats.HitCount, stats.TotalPixels, stats.MissCount)

	// Create output directory for this scene
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	img := fb.ToRGBA()
	if err := writePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *preview {
		small := resize.Resize(previewWidth, 0, img, resize.Bilinear)
		previewName := filepath.Join(outputDir, fmt.Sprintf("render_%s_preview.png", timestamp))
		if err := writePNG(previewName, small); err != nil {
			fmt.Printf("Error saving preview PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", previewName)
	}
}

// createScene creates a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "facing":
		return scene.NewFacingScene(), nil
	case "cubes":
		return scene.NewCubesScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writePNG encodes img to a PNG file at path
func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
