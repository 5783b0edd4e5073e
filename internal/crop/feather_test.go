package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatherAlpha_BoundaryValues(t *testing.T) {
	alpha := FeatherAlpha(100, 100, 0.92)
	require.Len(t, alpha, 100*100)

	// Full opacity at the center, fully transparent at the corners (ρ>1).
	assert.Equal(t, uint8(255), alpha[49*100+49])
	assert.Equal(t, uint8(255), alpha[50*100+50])
	assert.Equal(t, uint8(0), alpha[0])
	assert.Equal(t, uint8(0), alpha[99*100+99])
	assert.Equal(t, uint8(0), alpha[99])
}

func TestFeatherAlpha_PlateauAndRamp(t *testing.T) {
	alpha := FeatherAlpha(100, 100, 0.92)

	// Inside the inner radius the plateau holds; past it the ramp decreases
	// monotonically toward the edge.
	row := alpha[50*100 : 51*100]
	assert.Equal(t, uint8(255), row[50])
	assert.Equal(t, uint8(255), row[10], "ρ≈0.79 is inside the 0.92 plateau")
	for x := 50; x < 99; x++ {
		assert.GreaterOrEqual(t, row[x], row[x+1], "alpha must not increase toward the edge (x=%d)", x)
	}
	assert.Less(t, row[99], uint8(64), "edge of the ramp is nearly transparent")
}

func TestFeatherAlpha_CenterExactOnOddExtent(t *testing.T) {
	alpha := FeatherAlpha(101, 101, 0.5)
	assert.Equal(t, uint8(255), alpha[50*101+50])
}

func TestFeatherAlpha_RatioClamped(t *testing.T) {
	over := FeatherAlpha(64, 64, 1.5)
	capped := FeatherAlpha(64, 64, 0.98)
	assert.Equal(t, capped, over)

	negative := FeatherAlpha(64, 64, -2)
	zero := FeatherAlpha(64, 64, 0)
	assert.Equal(t, zero, negative)
}

func TestFeatherAlpha_EllipticalOnNonSquareExtent(t *testing.T) {
	alpha := FeatherAlpha(50, 100, 0.9)

	// Points at the same normalized radius on each axis share opacity; the
	// feather follows the crop aspect rather than a fixed circle.
	midY, midX := 24, 49
	nearRightEdge := alpha[midY*100+97]
	nearBottomEdge := alpha[48*100+midX]
	assert.Less(t, nearRightEdge, uint8(255))
	assert.Less(t, nearBottomEdge, uint8(255))
	assert.Equal(t, uint8(255), alpha[midY*100+midX])
}
