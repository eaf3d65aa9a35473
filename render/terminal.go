package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvlath-ga/cities"
)

// Glyphs used by Terminal.
const (
	EdgeRune   = '.'
	MarkerRune = 'o'
)

var (
	// ErrScreenTooSmall is returned when the screen cannot hold a caption
	// row and a two-row drawing area.
	ErrScreenTooSmall = errors.New("render: screen too small")

	// ErrBadOrder is returned when an order does not match the table.
	ErrBadOrder = errors.New("render: order does not match table")
)

// Renderer draws one tour.
type Renderer interface {
	Render(table *cities.Table, order []int, caption string) error
}

// Terminal renders onto a tcell screen. The caller owns the screen: it
// must be initialized before the first Render and finalized afterwards.
type Terminal struct {
	screen  tcell.Screen
	edge    tcell.Style
	marker  tcell.Style
	label   tcell.Style
	caption tcell.Style
}

// NewTerminal wraps an initialized screen.
func NewTerminal(s tcell.Screen) *Terminal {
	return &Terminal{
		screen:  s,
		edge:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		marker:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		label:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		caption: tcell.StyleDefault.Bold(true),
	}
}

// Screen returns the wrapped screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Render implements Renderer. order must be a permutation of the table's
// ids; the closing edge back to order[0] is drawn too.
//
// Complexity: O(n + total edge length in cells).
func (t *Terminal) Render(table *cities.Table, order []int, caption string) error {
	if table == nil || len(order) != table.Len() {
		return ErrBadOrder
	}
	w, h := t.screen.Size()
	if w < 2 || h < 3 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrScreenTooSmall)
	}

	cs := table.Cities()
	pts := make([]cell, len(order))
	p := newProjection(table, w, h)
	for i, id := range order {
		if id < 0 || id >= len(cs) {
			return fmt.Errorf("id %d: %w", id, ErrBadOrder)
		}
		pts[i] = p.cell(cs[id])
	}

	t.screen.Clear()
	for i := range pts {
		t.line(pts[i], pts[(i+1)%len(pts)])
	}
	for i, id := range order {
		t.screen.SetContent(pts[i].x, pts[i].y, MarkerRune, nil, t.marker)
		t.text(pts[i].x+1, pts[i].y, cs[id].Name, t.label)
	}
	t.text(0, 0, caption, t.caption)
	t.screen.Show()

	return nil
}

// line traces a Bresenham segment between a and b, endpoints included.
func (t *Terminal) line(a, b cell) {
	var (
		dx  = abs(b.x - a.x)
		dy  = -abs(b.y - a.y)
		sx  = sign(b.x - a.x)
		sy  = sign(b.y - a.y)
		e   = dx + dy
		x   = a.x
		y   = a.y
		e2  int
		run = true
	)
	for run {
		t.screen.SetContent(x, y, EdgeRune, nil, t.edge)
		if x == b.x && y == b.y {
			run = false
			continue
		}
		e2 = 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// text writes s from (x, y), clipped at the right edge.
func (t *Terminal) text(x, y int, s string, st tcell.Style) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

// cell is a screen position.
type cell struct{ x, y int }

// projection maps city coordinates onto columns [0,w) and rows [1,h),
// with y growing upwards.
type projection struct {
	minX, minY   float64
	spanX, spanY float64
	w, h         int
}

func newProjection(table *cities.Table, w, h int) projection {
	minX, minY, maxX, maxY := table.Bounds()

	return projection{minX: minX, minY: minY, spanX: maxX - minX, spanY: maxY - minY, w: w, h: h}
}

func (p projection) cell(c cities.City) cell {
	col := (p.w - 1) / 2
	if p.spanX > 0 {
		col = int(math.Round((c.X - p.minX) / p.spanX * float64(p.w-1)))
	}
	row := 1 + (p.h-2)/2
	if p.spanY > 0 {
		row = 1 + int(math.Round((1-(c.Y-p.minY)/p.spanY)*float64(p.h-2)))
	}

	return cell{x: col, y: row}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
