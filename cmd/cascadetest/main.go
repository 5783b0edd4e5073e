// Command cascadetest runs the cascade-classifier mask producer on one photo
// and reports the detected faces and resulting crop box.
package main

import (
	"flag"
	"fmt"
	"os"

	"face-cropper/internal/crop"
	"face-cropper/internal/detect"
	"face-cropper/internal/imageio"
)

func main() {
	imagePath := flag.String("image", "", "Path to portrait image")
	cascadePath := flag.String("cascade", "haarcascade_frontalface_default.xml", "Cascade XML path")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: cascadetest -image <path> [-cascade <xml>]")
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	producer := detect.NewCascadeProducer(*cascadePath)
	faces, err := producer.DetectFaces(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDetected %d faces:\n", len(faces))
	for i, f := range faces {
		fmt.Printf("  %2d: %dx%d at (%d,%d)\n", i+1, f.Dx(), f.Dy(), f.Min.X, f.Min.Y)
	}
	if len(faces) == 0 {
		fmt.Println("  none; producer will stamp a centered pseudo-face")
	}

	opts := crop.DefaultOptions()
	opts.Producer = producer
	result, err := crop.ToFace(img, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nCrop box: rows %d-%d, cols %d-%d (%dx%d)\n",
		result.Box.Top, result.Box.Bottom, result.Box.Left, result.Box.Right,
		result.Box.Width(), result.Box.Height())
	if result.Fallback {
		fmt.Println("Fallback crop used")
	}
}
