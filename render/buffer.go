package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

var emptyCell = Cell{Rune: ' ', Fg: RgbStatusText, Bg: RgbBackground}

// Buffer is the frame compositor, flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), the empty cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes an opaque cell
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
}

// SetFg writes rune and foreground while keeping the background
func (b *Buffer) SetFg(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = tcell.AttrNone
}

// BlendBg mixes color into the background, rune and foreground untouched
func (b *Buffer) BlendBg(x, y int, color RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Blend(color, alpha)
}

// Fill paints a rectangle with blank cells of bg
func (b *Buffer) Fill(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, ' ', bg, bg, tcell.AttrNone)
		}
	}
}

// Text writes s left to right keeping backgrounds, clipped at maxWidth cells
// Returns the number of cells written
func (b *Buffer) Text(x, y int, s string, fg RGB, maxWidth int) int {
	n := 0
	for _, r := range s {
		if maxWidth >= 0 && n >= maxWidth {
			break
		}
		b.SetFg(x+n, y, r, fg)
		n++
	}
	return n
}

// Flush writes every cell to the screen; the caller shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell()).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
