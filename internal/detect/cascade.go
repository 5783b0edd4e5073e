// Package detect provides the cascade-classifier mask producer, an
// alternative to the built-in skin segmentation for photos where color
// thresholding struggles.
package detect

import (
	"fmt"
	"image"

	"face-cropper/internal/mask"

	"gocv.io/x/gocv"
)

// Ellipse placement inside a detected face rectangle. The cascade box hugs
// eyebrows-to-chin, so the mask ellipse sits slightly below the box center
// and extends past it to take in jaw and forehead.
const (
	ellipseCenterY = 0.55
	ellipseAxisX   = 0.60
	ellipseAxisY   = 0.85
)

// pseudoFaceFraction sizes the centered stand-in rectangle used when the
// cascade finds no face at all.
const pseudoFaceFraction = 0.36

// minFaceSize is the smallest face the classifier will report, in pixels.
const minFaceSize = 80

// CascadeProducer produces face-candidate masks with a Haar cascade
// classifier. It satisfies the crop.MaskProducer contract.
type CascadeProducer struct {
	xmlPath string
}

// NewCascadeProducer returns a producer backed by the cascade description at
// xmlPath. The file is loaded per call, keeping the producer stateless and
// safe for concurrent use.
func NewCascadeProducer(xmlPath string) *CascadeProducer {
	return &CascadeProducer{xmlPath: xmlPath}
}

// DetectFaces runs the classifier and returns the detected face rectangles
// in image coordinates.
func (p *CascadeProducer) DetectFaces(img image.Image) ([]image.Rectangle, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorRGBToGray)

	classifier := gocv.NewCascadeClassifier()
	defer classifier.Close()
	if !classifier.Load(p.xmlPath) {
		return nil, fmt.Errorf("load cascade %s", p.xmlPath)
	}

	rects := classifier.DetectMultiScaleWithParams(
		gray, 1.1, 5, 0,
		image.Pt(minFaceSize, minFaceSize), image.Pt(0, 0),
	)
	return rects, nil
}

// Produce implements the mask-producer contract: the strongest face
// rectangle becomes a filled ellipse mask. With no detection the mask falls
// back to a centered pseudo-face sized to pseudoFaceFraction of the frame,
// which downstream stages treat like any other region.
func (p *CascadeProducer) Produce(img image.Image) (*mask.Bitmap, error) {
	faces, err := p.DetectFaces(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	face := largestRect(faces)
	if face.Empty() {
		fw := int(float64(w) * pseudoFaceFraction)
		fh := int(float64(h) * pseudoFaceFraction)
		face = image.Rect((w-fw)/2, (h-fh)/2, (w-fw)/2+fw, (h-fh)/2+fh)
	}

	out := mask.NewBitmap(w, h)
	fw, fh := face.Dx(), face.Dy()
	cx := face.Min.X + fw/2
	cy := face.Min.Y + int(float64(fh)*ellipseCenterY)
	stampEllipse(out, cx, cy, int(float64(fw)*ellipseAxisX), int(float64(fh)*ellipseAxisY))
	return out, nil
}

func largestRect(rects []image.Rectangle) image.Rectangle {
	var best image.Rectangle
	bestArea := 0
	for _, r := range rects {
		if area := r.Dx() * r.Dy(); area > bestArea {
			bestArea = area
			best = r
		}
	}
	return best
}

// stampEllipse paints a filled ellipse onto the mask, clipped to its extent.
func stampEllipse(m *mask.Bitmap, cx, cy, ax, ay int) {
	if ax < 1 || ay < 1 {
		return
	}
	axf := float64(ax)
	ayf := float64(ay)
	for dy := -ay; dy <= ay; dy++ {
		ny := float64(dy) / ayf
		for dx := -ax; dx <= ax; dx++ {
			nx := float64(dx) / axf
			if nx*nx+ny*ny <= 1 {
				m.Set(cx+dx, cy+dy, true)
			}
		}
	}
}
