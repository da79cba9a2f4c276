package banyan

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugLayer draws the visible tile neighborhood as an overlay: tile
// borders, the 5×5 cell grid, and each tile's address and depth. Call
// Draw from the host's Draw after rendering content. Intended for
// development; rendering real content is the host's job.
type DebugLayer struct {
	Engine *Engine

	// ShowCells draws the interior 5×5 cell lines of each tile.
	ShowCells bool
	// ShowAddresses labels each visible tile with its address within
	// its parent and its depth below the current top.
	ShowAddresses bool
	// BorderColor and CellColor tint the tile border and interior cell
	// lines.
	BorderColor color.Color
	CellColor   color.Color
}

// NewDebugLayer creates a debug overlay for the given engine with cells
// and addresses shown.
func NewDebugLayer(engine *Engine) *DebugLayer {
	return &DebugLayer{
		Engine:        engine,
		ShowCells:     true,
		ShowAddresses: true,
		BorderColor:   color.RGBA{R: 255, G: 160, B: 40, A: 255},
		CellColor:     color.RGBA{R: 90, G: 90, B: 110, A: 255},
	}
}

// Draw renders the overlay onto screen.
func (l *DebugLayer) Draw(screen *ebiten.Image) {
	cam := l.Engine.Camera()
	g := l.Engine.Grid()
	w := g.Extent.Width
	h := g.Extent.Height

	for _, tv := range l.Engine.Visible() {
		left := tv.Offset.X - w/2
		top := tv.Offset.Y - h/2

		if l.ShowCells {
			for k := 1; k < Subdivision; k++ {
				x := left + float64(k)*w/Subdivision
				strokeWorldLine(screen, cam, x, top, x, top+h, 1, l.CellColor)
				y := top + float64(k)*h/Subdivision
				strokeWorldLine(screen, cam, left, y, left+w, y, 1, l.CellColor)
			}
		}

		strokeWorldLine(screen, cam, left, top, left+w, top, 2, l.BorderColor)
		strokeWorldLine(screen, cam, left+w, top, left+w, top+h, 2, l.BorderColor)
		strokeWorldLine(screen, cam, left+w, top+h, left, top+h, 2, l.BorderColor)
		strokeWorldLine(screen, cam, left, top+h, left, top, 2, l.BorderColor)

		if l.ShowAddresses {
			sx, sy := cam.WorldToScreen(tv.Offset.X, tv.Offset.Y)
			label := "top"
			if addr, ok := tv.Tile.Address(); ok {
				label = addr.String()
			}
			label = fmt.Sprintf("%s d%d", label, tv.Tile.DepthBelowTop())
			ebitenutil.DebugPrintAt(screen, label, int(sx), int(sy))
		}
	}
}

// strokeWorldLine projects a segment from the active tile's local space
// and strokes it in screen space.
func strokeWorldLine(dst *ebiten.Image, cam *Camera, x0, y0, x1, y1 float64, width float32, clr color.Color) {
	sx0, sy0 := cam.WorldToScreen(x0, y0)
	sx1, sy1 := cam.WorldToScreen(x1, y1)
	vector.StrokeLine(dst, float32(sx0), float32(sy0), float32(sx1), float32(sy1), width, clr, true)
}
