package zombies

import "github.com/vovakirdan/tri-arcade/internal/core"

// Minimum terminal size that still leaves a usable field.
const (
	minScreenW = 40
	minScreenH = 14
)

// layout maps the playfield onto terminal cells: one HUD row on top and
// a bordered field below it.
type layout struct {
	frame core.Rect // Border rectangle
	inner core.Rect // Cells the playfield is projected onto
	w, h  float64   // Playfield size in pixels
}

func newLayout(screenW, screenH int, width, height float64) layout {
	frame := core.NewRect(0, 1, screenW, screenH-1)
	return layout{
		frame: frame,
		inner: core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		w:     width,
		h:     height,
	}
}

// toCell projects a playfield point to the cell that contains it.
func (l layout) toCell(p core.Vec2) (int, int) {
	cx := l.inner.X + int(p.X/l.w*float64(l.inner.W))
	cy := l.inner.Y + int(p.Y/l.h*float64(l.inner.H))
	return cx, cy
}

// visible reports whether a projected cell lies inside the field.
func (l layout) visible(cx, cy int) bool {
	return l.inner.Contains(cx, cy)
}

// toField maps a pointer position in cells back into the playfield,
// clamped to its bounds.
func (l layout) toField(x, y float64) core.Vec2 {
	fx := (x - float64(l.inner.X)) / float64(l.inner.W) * l.w
	fy := (y - float64(l.inner.Y)) / float64(l.inner.H) * l.h
	return core.V(core.ClampF(fx, 0, l.w), core.ClampF(fy, 0, l.h))
}
