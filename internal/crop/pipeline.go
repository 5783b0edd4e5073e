package crop

import (
	"fmt"
	"image"

	"face-cropper/internal/debug"
	"face-cropper/internal/mask"
	"face-cropper/pkg/geometry"
)

// MaskProducer yields a face-candidate mask for an image. The built-in
// producer is the skin-segmentation pipeline; detector-backed producers
// (cascade classifiers and the like) plug in through the same contract.
type MaskProducer interface {
	Produce(img image.Image) (*mask.Bitmap, error)
}

// SkinProducer is the default MaskProducer: color thresholding followed by
// the morphological cleanup schedule.
type SkinProducer struct {
	Schedule mask.RefineSchedule
}

// Produce implements MaskProducer.
func (p SkinProducer) Produce(img image.Image) (*mask.Bitmap, error) {
	refined, err := p.Schedule.Refine(mask.Skin(img))
	if err != nil {
		return nil, fmt.Errorf("refine skin mask: %w", err)
	}
	return refined, nil
}

// Options configures ToFace.
type Options struct {
	// FeatherRatio is the inner radius of full opacity, clamped to [0, 0.98].
	FeatherRatio float64

	// EmitDebug attaches intermediate renders to the result.
	EmitDebug bool

	// Producer overrides the mask source. Nil selects the skin pipeline
	// with the default schedule.
	Producer MaskProducer
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{FeatherRatio: DefaultFeatherRatio}
}

// Layers holds the debug renders produced alongside a crop.
type Layers struct {
	MaskPreview   *image.Gray
	BoundsOverlay *image.NRGBA
}

// Result is the output of one pipeline invocation. Image is the only value
// intended to outlive the call; everything else is diagnostic.
type Result struct {
	Image    *image.NRGBA
	Box      geometry.CropBox
	Region   mask.Region
	Fallback bool
	Debug    *Layers
}

// ToFace runs the full pipeline on one photo: mask production, largest
// component selection, box geometry, feathering, and composition. When the
// mask has no region, or the derived box degenerates, the centered fallback
// crop is used instead. The computation is pure and deterministic; the only
// errors are configuration errors surfaced before pixel work, and those
// produce no partial output.
func ToFace(img image.Image, opts Options) (*Result, error) {
	producer := opts.Producer
	if producer == nil {
		producer = SkinProducer{Schedule: mask.DefaultSchedule()}
	}

	candidate, err := producer.Produce(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	frameH, frameW := bounds.Dy(), bounds.Dx()

	result := &Result{Fallback: true, Box: FallbackBox(frameH, frameW)}
	component, region, ok := mask.LargestComponent(candidate)
	if ok {
		box := FaceBox(region.Bounds, frameH, frameW)
		if !box.Empty() {
			result = &Result{Box: box, Region: region}
		}
	}

	alpha := FeatherAlpha(result.Box.Height(), result.Box.Width(), opts.FeatherRatio)
	result.Image = Composite(img, result.Box, alpha)

	if opts.EmitDebug {
		preview := component
		if preview == nil {
			preview = candidate
		}
		result.Debug = &Layers{
			MaskPreview:   debug.MaskPreview(preview),
			BoundsOverlay: debug.BoundsOverlay(img, result.Box),
		}
	}
	return result, nil
}
