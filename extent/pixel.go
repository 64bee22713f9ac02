package extent

import "github.com/katalvlaran/poissondisk/geom"

// PixelMapper converts between world coordinates centred on the origin and
// pixel coordinates of a W×H canvas. Pixel (c, r) covers [c, c+1) × [r, r+1)
// and its centre maps to world space; world (0, 0) is the canvas centre.
//
// By default the y axis is flipped (world y grows upwards, rows grow
// downwards) and the visible world width is 2.
type PixelMapper struct {
	w, h   float64
	asp    float64
	ySign  float64
	width  float64
	height float64
}

// NewPixelMapper returns a mapper for a canvas of pixelWidth×pixelHeight.
func NewPixelMapper(pixelWidth, pixelHeight int) *PixelMapper {
	m := &PixelMapper{
		w:   float64(pixelWidth),
		h:   float64(pixelHeight),
		asp: float64(pixelWidth) / float64(pixelHeight),
	}
	m.SetFlipY(true)
	m.SetExtentWidth(2)
	return m
}

// SetFlipY selects whether world y grows upwards (true) or downwards.
func (m *PixelMapper) SetFlipY(flip bool) {
	if flip {
		m.ySign = -1
	} else {
		m.ySign = 1
	}
}

// SetExtentWidth sets the visible world width; the height follows the aspect ratio.
func (m *PixelMapper) SetExtentWidth(width float64) {
	m.width = width
	m.height = width / m.asp
}

// SetExtentHeight sets the visible world height; the width follows the aspect ratio.
func (m *PixelMapper) SetExtentHeight(height float64) {
	m.height = height
	m.width = m.asp * height
}

// Extent returns the visible world rectangle.
func (m *PixelMapper) Extent() Extent { return Centered(m.width, m.height) }

// ToPixel maps a world point to fractional pixel coordinates.
func (m *PixelMapper) ToPixel(p geom.Point) (col, row float64) {
	u := p[0]/m.width + 0.5
	v := p[1]*m.ySign/m.height + 0.5
	return u*m.w - 0.5, v*m.h - 0.5
}

// FromPixel maps pixel coordinates to the world point at that position.
func (m *PixelMapper) FromPixel(col, row float64) geom.Point {
	u := (col + 0.5) / m.w
	v := (row + 0.5) / m.h
	return geom.Pt((u-0.5)*m.width, (v-0.5)*m.height*m.ySign)
}
