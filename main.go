// Command face-cropper crops portrait photos down to face-only, transparent
// PNGs using skin segmentation, with an optional cascade-classifier detector.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"face-cropper/internal/crop"
	"face-cropper/internal/detect"
	"face-cropper/internal/imageio"
)

func main() {
	overwrite := flag.Bool("overwrite", false, "Recreate PNGs even when they already exist")
	feather := flag.Float64("feather-ratio", crop.DefaultFeatherRatio, "Inner radius (0-0.98) of full opacity before feathering to transparent")
	debugMasks := flag.Bool("debug-masks", false, "Emit intermediate mask previews beside the final crop")
	verbose := flag.Bool("verbose", false, "Log progress as files are processed")
	detector := flag.String("detector", "skin", "Mask producer: skin or cascade")
	cascadePath := flag.String("cascade", "haarcascade_frontalface_default.xml", "Cascade XML path, used with -detector cascade")
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: face-cropper [flags] <image-or-folder> <output-dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputDir := flag.Arg(0), flag.Arg(1)

	opts := crop.Options{FeatherRatio: *feather, EmitDebug: *debugMasks}
	switch *detector {
	case "skin":
		// Default producer.
	case "cascade":
		opts.Producer = detect.NewCascadeProducer(*cascadePath)
	default:
		log.Fatalf("unknown detector %q (want skin or cascade)", *detector)
	}

	inputs, err := imageio.CollectInputs(inputPath)
	if err != nil {
		log.Fatalf("collect inputs: %v", err)
	}
	if len(inputs) == 0 {
		log.Fatalf("no input images under %s", inputPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	failures := 0
	for i, src := range inputs {
		name := filepath.Base(src)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		outPath := filepath.Join(outputDir, stem+".png")

		if !*overwrite {
			if _, err := os.Stat(outPath); err == nil {
				if *verbose {
					log.Printf("[skip] %s: output already exists", name)
				}
				continue
			}
		}

		if *verbose {
			log.Printf("[%d/%d] Cropping %s ...", i+1, len(inputs), name)
		}

		img, err := imageio.Load(src)
		if err != nil {
			log.Printf("[error] %s: %v", name, err)
			failures++
			continue
		}

		result, err := crop.ToFace(img, opts)
		if err != nil {
			// Configuration errors are fatal; nothing downstream can recover.
			log.Fatalf("%s: %v", name, err)
		}

		if err := imageio.SavePNG(outPath, result.Image); err != nil {
			log.Printf("[error] %s: %v", name, err)
			failures++
			continue
		}

		if result.Debug != nil {
			saveDebugLayers(outputDir, stem, result)
		}

		if *verbose {
			note := ""
			if result.Fallback {
				note = " (fallback crop)"
			}
			log.Printf("    saved %s%s", outPath, note)
		}
	}

	if failures > 0 {
		log.Fatalf("%d of %d images failed", failures, len(inputs))
	}
}

func saveDebugLayers(outputDir, stem string, result *crop.Result) {
	debugDir := filepath.Join(outputDir, "debug")
	if err := imageio.SavePNG(filepath.Join(debugDir, stem+"_mask.png"), result.Debug.MaskPreview); err != nil {
		log.Printf("[warn] %s: %v", stem, err)
	}
	if err := imageio.SavePNG(filepath.Join(debugDir, stem+"_bounds.png"), result.Debug.BoundsOverlay); err != nil {
		log.Printf("[warn] %s: %v", stem, err)
	}
	if err := imageio.SavePNG(filepath.Join(debugDir, stem+"_crop.png"), result.Image); err != nil {
		log.Printf("[warn] %s: %v", stem, err)
	}
}
