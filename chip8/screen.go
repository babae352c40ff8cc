package chip8

// Screen is a consumer side copy of the display, rebuilt from the batches
// received on Display.Updates. It is not safe for concurrent use.
type Screen struct {
	cells [DisplayPixels]uint8
}

// Apply writes the pixels of one batch.
func (s *Screen) Apply(batch []Pixel) {
	for _, p := range batch {
		if int(p.X) >= DisplayWidth || int(p.Y) >= DisplayHeight {
			continue
		}
		s.cells[int(p.Y)*DisplayWidth+int(p.X)] = p.Value & 1
	}
}

// Drain applies every batch currently waiting on d without blocking and
// reports whether anything changed.
func (s *Screen) Drain(d *Display) bool {
	changed := false
	for {
		select {
		case batch := <-d.Updates():
			s.Apply(batch)
			changed = true
		default:
			return changed
		}
	}
}

// At returns the cell at x, y. Coordinates outside the display read as 0.
func (s *Screen) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= DisplayWidth || y >= DisplayHeight {
		return 0
	}
	return s.cells[y*DisplayWidth+x]
}
