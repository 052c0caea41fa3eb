package analysis

// Station is the state of the beam at distance X (m) from the left support
type Station struct {
	X          float64 // m
	Moment     float64 // kN-m
	Shear      float64 // kN
	Deflection float64 // mm, positive downward
}

// Profile samples moment, shear and deflection along the span.
// The curves are scaled so their peaks equal moment and maxDeflection.
func Profile(span, moment, maxDeflection float64, lt LoadType, points int) []Station {
	if points < 2 {
		points = 2
	}
	load := LoadFromMoment(span, moment, lt)
	stations := make([]Station, points)

	for i := range stations {
		x := span * float64(i) / float64(points-1)
		s := Station{X: x}

		if lt == PointCenter {
			// M(x) = Px/2 up to midspan, symmetric beyond
			// V(x) = +P/2 left of midspan, -P/2 right of it
			// δ(x) = Px(3L² - 4x²)/48EI, normalised by δmax = PL³/48EI
			a := x
			if x > span/2 {
				a = span - x
			}
			s.Moment = load * a / 2
			s.Shear = load / 2
			if x > span/2 {
				s.Shear = -load / 2
			}
			s.Deflection = a * (3*span*span - 4*a*a) / (span * span * span) * maxDeflection
		} else {
			// M(x) = wx(L - x)/2, V(x) = w(L/2 - x)
			// δ(x) = wx(L³ - 2Lx² + x³)/24EI, normalised by δmax = 5wL⁴/384EI
			s.Moment = load * x * (span - x) / 2
			s.Shear = load * (span/2 - x)
			s.Deflection = x * (span*span*span - 2*span*x*x + x*x*x) / (span * span * span * span) * 16 * maxDeflection / 5
		}
		stations[i] = s
	}

	return stations
}
