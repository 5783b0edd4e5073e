// Command masktest runs the skin-segmentation stages on one photo and
// reports per-stage statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"face-cropper/internal/crop"
	"face-cropper/internal/imageio"
	"face-cropper/internal/mask"

	"gonum.org/v1/gonum/stat"
)

func main() {
	imagePath := flag.String("image", "", "Path to portrait image (JPEG, PNG, WebP, TIFF, or BMP)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: masktest -image <path>")
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	total := float64(w * h)
	fmt.Printf("Loaded image: %dx%d pixels\n", w, h)

	raw := mask.Skin(img)
	fmt.Printf("\nSkin threshold: %d pixels (%.1f%% coverage)\n", raw.Count(), 100*float64(raw.Count())/total)

	schedule := mask.DefaultSchedule()
	fmt.Printf("Refine schedule: open(%d) close(%d) dilate(%d)x%d\n",
		schedule.OpenKernel, schedule.CloseKernel, schedule.GrowKernel, schedule.GrowIterations)

	refined, err := schedule.Refine(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Refine failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Refined mask:   %d pixels (%.1f%% coverage)\n", refined.Count(), 100*float64(refined.Count())/total)

	regions := mask.Regions(refined)
	fmt.Printf("\nConnected regions: %d\n", len(regions))
	if len(regions) == 0 {
		fb := crop.FallbackBox(h, w)
		fmt.Printf("No skin found; fallback crop would be rows %d-%d, cols %d-%d (%dx%d)\n",
			fb.Top, fb.Bottom, fb.Left, fb.Right, fb.Width(), fb.Height())
		return
	}

	areas := make([]float64, len(regions))
	for i, r := range regions {
		areas[i] = float64(r.Area)
	}
	sort.Float64s(areas)
	fmt.Printf("Region area: mean %.0f, stddev %.0f, median %.0f, max %.0f\n",
		stat.Mean(areas, nil), stat.StdDev(areas, nil),
		stat.Quantile(0.5, stat.Empirical, areas, nil), areas[len(areas)-1])

	component, region, _ := mask.LargestComponent(refined)
	fmt.Printf("\nLargest region: %d pixels\n", region.Area)
	fmt.Printf("  Bounds:   %dx%d at (%d,%d)\n", region.Bounds.Width, region.Bounds.Height, region.Bounds.X, region.Bounds.Y)
	fmt.Printf("  Centroid: (%.1f, %.1f)\n", region.Centroid.X, region.Centroid.Y)
	fmt.Printf("  Component coverage: %.1f%% of mask\n", 100*float64(component.Count())/float64(refined.Count()))

	box := crop.FaceBox(region.Bounds, h, w)
	fmt.Printf("\nCrop box: rows %d-%d, cols %d-%d (%dx%d, center %.1f,%.1f)\n",
		box.Top, box.Bottom, box.Left, box.Right,
		box.Width(), box.Height(), box.Center().X, box.Center().Y)
}
