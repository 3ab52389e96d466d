package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/core"
)

// cell is one composited terminal cell
type cell struct {
	r  rune
	fg core.RGB
}

// TcellRenderer scales the world onto the terminal grid
// Each cell samples the sprite at its center, tinted blits blend over the existing cell color
type TcellRenderer struct {
	screen tcell.Screen
	worldW int
	worldH int
	bg     core.RGB

	cols, rows int
	cells      []cell

	tint   core.RGB
	alpha  uint8
	tinted bool
}

// NewTcellRenderer creates a renderer mapping a worldW x worldH stage onto screen
func NewTcellRenderer(screen tcell.Screen, worldW, worldH int) *TcellRenderer {
	return &TcellRenderer{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
		bg:     core.RGBBlack,
	}
}

// Begin clears the cell buffer, picking up terminal resizes
func (t *TcellRenderer) Begin() {
	cols, rows := t.screen.Size()
	if cols != t.cols || rows != t.rows {
		t.cols, t.rows = cols, rows
		t.cells = make([]cell, max(cols*rows, 0))
	}
	for i := range t.cells {
		t.cells[i] = cell{r: ' ', fg: t.bg}
	}
	t.ResetTint()
}

func (t *TcellRenderer) Blit(s *asset.Sprite, x, y int) {
	if s == nil {
		return
	}
	t.BlitRect(s, core.Rect{W: s.W, H: s.H}, x, y)
}

// BlitRect draws the src region of s with its top-left at world (x, y)
// A region smaller than a cell still marks the cell holding its center
func (t *TcellRenderer) BlitRect(s *asset.Sprite, src core.Rect, x, y int) {
	if s == nil || src.W <= 0 || src.H <= 0 || t.cols == 0 || t.rows == 0 {
		return
	}
	cellW := float64(t.worldW) / float64(t.cols)
	cellH := float64(t.worldH) / float64(t.rows)

	c0 := int(math.Floor(float64(x) / cellW))
	c1 := int(math.Ceil(float64(x+src.W) / cellW))
	r0 := int(math.Floor(float64(y) / cellH))
	r1 := int(math.Ceil(float64(y+src.H) / cellH))

	drawn := false
	for row := max(r0, 0); row < min(r1, t.rows); row++ {
		py := int((float64(row)+0.5)*cellH) - y
		if py < 0 || py >= src.H {
			continue
		}
		for col := max(c0, 0); col < min(c1, t.cols); col++ {
			px := int((float64(col)+0.5)*cellW) - x
			if px < 0 || px >= src.W {
				continue
			}
			t.plot(col, row, s, src.X+px, src.Y+py)
			drawn = true
		}
	}

	if !drawn {
		cx := float64(x) + float64(src.W)/2
		cy := float64(y) + float64(src.H)/2
		col, row := int(cx/cellW), int(cy/cellH)
		if cx >= 0 && cy >= 0 && col < t.cols && row < t.rows {
			t.plot(col, row, s, src.X+src.W/2, src.Y+src.H/2)
		}
	}
}

func (t *TcellRenderer) plot(col, row int, s *asset.Sprite, px, py int) {
	ch := s.Glyph(px, py)
	if ch == ' ' {
		return
	}
	c := &t.cells[row*t.cols+col]
	if !t.tinted {
		c.r, c.fg = ch, s.Color
		return
	}
	if t.alpha == 0 {
		return
	}
	c.r = ch
	c.fg = c.fg.Blend(s.Color.Modulate(t.tint), float64(t.alpha)/255)
}

func (t *TcellRenderer) SetTint(tint core.RGB, alpha uint8) {
	t.tint, t.alpha, t.tinted = tint, alpha, true
}

func (t *TcellRenderer) ResetTint() {
	t.tint, t.alpha, t.tinted = core.RGBWhite, 255, false
}

// Present flushes the cell buffer to the screen
func (t *TcellRenderer) Present() {
	bg := tcell.NewRGBColor(int32(t.bg.R), int32(t.bg.G), int32(t.bg.B))
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			c := t.cells[row*t.cols+col]
			fg := tcell.NewRGBColor(int32(c.fg.R), int32(c.fg.G), int32(c.fg.B))
			t.screen.SetContent(col, row, c.r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	t.screen.Show()
}
