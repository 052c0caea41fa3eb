package section

import (
	"fmt"
	"math"
)

// sizing holds the empirical proportions of a section family.
// The values are calibrated sizing rules and are used as-is.
type sizing struct {
	heightDivisor float64 // height ≈ √(Zreq / heightDivisor)
	minHeight     float64

	widthRatio float64 // width ≈ height / widthRatio
	minWidth   float64

	webRatio float64
	minWeb   float64

	flangeRatio float64
	minFlange   float64
}

var sizings = map[Type]sizing{
	IBeam: {
		heightDivisor: 20, minHeight: 160,
		widthRatio: 2, minWidth: 82,
		webRatio: 40, minWeb: 5,
		flangeRatio: 25, minFlange: 7,
	},
	Channel: {
		heightDivisor: 8, minHeight: 100,
		widthRatio: 3, minWidth: 50,
		webRatio: 50, minWeb: 4,
		flangeRatio: 30, minFlange: 5,
	},
}

// Standard rounding increments (mm)
const (
	HeightIncrement    = 10.0
	WidthIncrement     = 5.0
	ThicknessIncrement = 1.0
)

// roundUp rounds v up to the next multiple of step
func roundUp(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

// Dimensions returns height, width, web and flange thickness (mm) for a
// required section modulus zreq (mm³). Every dimension is rounded up.
func Dimensions(t Type, zreq float64) (h, b, tw, tf float64, err error) {
	s, ok := sizings[t]
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedSectionType, int(t))
	}
	if math.IsNaN(zreq) || math.IsInf(zreq, 0) || zreq < 0 {
		return 0, 0, 0, 0, &ValidationError{msg: fmt.Sprintf("required section modulus must be a non-negative number, got %v", zreq)}
	}

	h0 := math.Max(s.minHeight, math.Ceil(math.Sqrt(zreq/s.heightDivisor)))
	b0 := math.Max(s.minWidth, math.Ceil(h0/s.widthRatio))
	tw = math.Max(s.minWeb, math.Ceil(h0/s.webRatio))
	tf = math.Max(s.minFlange, math.Ceil(h0/s.flangeRatio))

	h = roundUp(h0, HeightIncrement)
	b = roundUp(b0, WidthIncrement)
	tw = roundUp(tw, ThicknessIncrement)
	tf = roundUp(tf, ThicknessIncrement)
	return h, b, tw, tf, nil
}

// Synthesize generates a section of type t sized for zreq (mm³).
// This is a single heuristic pass: the result is not iterated until
// Zx >= zreq, the capacity check reports any shortfall.
func Synthesize(t Type, zreq float64) (Properties, error) {
	h, b, tw, tf, err := Dimensions(t, zreq)
	if err != nil {
		return Properties{}, err
	}
	return Build(t, h, b, tw, tf)
}

// Build derives the full set of section properties from the four dimensions (mm)
func Build(t Type, h, b, tw, tf float64) (Properties, error) {
	if _, ok := sizings[t]; !ok {
		return Properties{}, fmt.Errorf("%w: %d", ErrUnsupportedSectionType, int(t))
	}

	p := Properties{
		Name:            fmt.Sprintf("%s-%.0fx%.0fx%.0fx%.0f", t.Prefix(), h, b, tw, tf),
		Type:            t,
		Height:          h,
		Width:           b,
		WebThickness:    tw,
		FlangeThickness: tf,
	}
	if err := p.Validate(); err != nil {
		return Properties{}, err
	}

	hw := h - 2*tf // clear web height

	p.Area = 2*b*tf + tw*hw

	// Strong axis: outer rectangle minus the void(s) beside the web.
	// Identical for I and Channel since the voids are symmetric about x.
	p.Ix = b*math.Pow(h, 3)/12 - (b-tw)*math.Pow(hw, 3)/12
	p.Zx = p.Ix / (h / 2)

	if t == Channel {
		p.Iy = channelIy(b, tw, tf, hw, p.Area)
	} else {
		// two flanges plus the web, all centred on the y axis
		p.Iy = 2*tf*math.Pow(b, 3)/12 + hw*math.Pow(tw, 3)/12
	}

	// St. Venant torsion, sum of thin rectangles bt³/3
	p.J = (2*b*math.Pow(tf, 3) + hw*math.Pow(tw, 3)) / 3

	// Warping constant, simplified
	p.Cw = p.Iy * math.Pow(h-tf, 2) / 4

	return p, nil
}

// channelIy is the weak-axis inertia about the channel's own centroid
func channelIy(b, tw, tf, hw, area float64) float64 {
	webArea := tw * hw
	flangeArea := b * tf

	// centroid measured from the back of the web
	xc := (webArea*tw/2 + 2*flangeArea*b/2) / area

	web := hw*math.Pow(tw, 3)/12 + webArea*math.Pow(xc-tw/2, 2)
	flanges := 2 * (tf*math.Pow(b, 3)/12 + flangeArea*math.Pow(b/2-xc, 2))
	return web + flanges
}
