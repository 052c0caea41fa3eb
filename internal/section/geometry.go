package section

import "math"

// Outline returns the section boundary counter-clockwise from the
// bottom-left corner, with the origin at the bottom of the web's back
// (Channel) or at the bottom-left flange tip (I-Beam).
func (p Properties) Outline() []Point {
	h, b, tw, tf := p.Height, p.Width, p.WebThickness, p.FlangeThickness

	if p.Type == Channel {
		return []Point{
			{0, 0},
			{b, 0},
			{b, tf},
			{tw, tf},
			{tw, h - tf},
			{b, h - tf},
			{b, h},
			{0, h},
		}
	}

	wl := (b - tw) / 2 // web left face
	wr := wl + tw      // web right face
	return []Point{
		{0, 0},
		{b, 0},
		{b, tf},
		{wr, tf},
		{wr, h - tf},
		{b, h - tf},
		{b, h},
		{0, h},
		{0, h - tf},
		{wl, h - tf},
		{wl, tf},
		{0, tf},
	}
}

// PolygonArea returns the area and centroid of a simple polygon using the
// shoelace formula
func PolygonArea(vertices []Point) (area, cx, cy float64) {
	n := len(vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// Bounds returns the bounding box of a set of vertices
func Bounds(vertices []Point) (minX, maxX, minY, maxY float64) {
	if len(vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = vertices[0].X, vertices[0].X
	minY, maxY = vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

// Contains reports whether (x, y) lies inside the polygon (even-odd rule)
func Contains(vertices []Point, x, y float64) bool {
	inside := false
	n := len(vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := vertices[i], vertices[j]
		if (a.Y > y) != (b.Y > y) {
			cross := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x < cross {
				inside = !inside
			}
		}
	}
	return inside
}
