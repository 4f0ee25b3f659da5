package tui

// SplitVFixed splits region into top (height h) and bottom (rest).
func SplitVFixed(r Region, h int) (Region, Region) {
	if h < 0 {
		h = 0
	}
	if h > r.H {
		h = r.H
	}
	return r.Sub(0, 0, r.W, h), r.Sub(0, h, r.W, r.H-h)
}

// SplitHFixed splits region into left (width w) and right (rest).
func SplitHFixed(r Region, w int) (Region, Region) {
	if w < 0 {
		w = 0
	}
	if w > r.W {
		w = r.W
	}
	return r.Sub(0, 0, w, r.H), r.Sub(w, 0, r.W-w, r.H)
}

// SplitH splits region into columns by fractional widths. The last column
// absorbs rounding leftovers.
func SplitH(r Region, fractions ...float64) []Region {
	cols := make([]Region, len(fractions))
	x := 0
	for i, f := range fractions {
		w := int(float64(r.W) * f)
		if i == len(fractions)-1 {
			w = r.W - x
		}
		cols[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return cols
}

// SplitV splits region into rows by fractional heights. The last row
// absorbs rounding leftovers.
func SplitV(r Region, fractions ...float64) []Region {
	rows := make([]Region, len(fractions))
	y := 0
	for i, f := range fractions {
		h := int(float64(r.H) * f)
		if i == len(fractions)-1 {
			h = r.H - y
		}
		rows[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return rows
}
