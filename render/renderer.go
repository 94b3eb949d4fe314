package render

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// hudRows is the number of rows above the arena
const hudRows = 1

// Renderer draws the world onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
	order  []core.Entity
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack),
		order:  make([]core.Entity, 0, 8),
	}
}

// Viewport returns the projection for the current screen size
func (r *Renderer) Viewport() Viewport {
	w, h := r.screen.Size()
	rows := h - hudRows
	if rows < 1 {
		rows = 1
	}
	return Viewport{Cols: max(w, 1), Rows: rows, OffsetY: hudRows}
}

// Render draws one frame: sprites back to front, then the score line
func (r *Renderer) Render(w *engine.World) {
	r.screen.SetStyle(r.bg)
	r.screen.Clear()

	vp := r.Viewport()
	c := &w.Components

	r.order = append(r.order[:0], c.Sprite.All()...)
	sort.SliceStable(r.order, func(i, j int) bool {
		ti, _ := c.Transform.Get(r.order[i])
		tj, _ := c.Transform.Get(r.order[j])
		return drawsBefore(ti, tj)
	})

	for _, e := range r.order {
		tr, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		sp, _ := c.Sprite.Get(e)
		r.drawSprite(vp, tr, sp)
	}

	r.drawHUD(w)
	r.screen.Show()
}

func (r *Renderer) drawSprite(vp Viewport, tr component.TransformComponent, sp component.SpriteComponent) {
	style := r.bg.Foreground(toColor(sp.Color))
	pos := tr.Translation

	if !sp.HasSize() {
		// Textured sprites have no terminal asset, draw a single glyph at the center
		col, row, inside := vp.Clip(vp.ToCell(pos.X, pos.Y))
		if inside {
			r.screen.SetContent(col, row, parameter.GlyphBall, nil, style)
		}
		return
	}

	hw, hh := sp.Size.X/2, sp.Size.Y/2
	c0, r0, c1, r1, ok := vp.CellRect(pos.X-hw, pos.Y-hh, pos.X+hw, pos.Y+hh)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, parameter.GlyphBlock, nil, style)
		}
	}
}

// drawsBefore orders by translation Z, equal depths by scale Z so the ball stays above walls
func drawsBefore(a, b component.TransformComponent) bool {
	if a.Translation.Z != b.Translation.Z {
		return a.Translation.Z < b.Translation.Z
	}
	return a.Scale.Z < b.Scale.Z
}

// drawHUD writes "Player1 0 : 0 Player2" centered on the top row
func (r *Renderer) drawHUD(w *engine.World) {
	width, _ := r.screen.Size()
	line := ScoreLine(w)
	x := (width - len(line)) / 2
	if x < 0 {
		x = 0
	}
	style := r.bg.Foreground(tcell.ColorWhite)
	for i, ch := range line {
		if x+i >= width {
			break
		}
		r.screen.SetContent(x+i, 0, ch, nil, style)
	}
}

// ScoreLine formats both paddles' names and points, missing paddles show as "?"
func ScoreLine(w *engine.World) string {
	c := &w.Components
	var names [component.PaddleRoleCount]string
	var points [component.PaddleRoleCount]string
	for role := component.PaddleRole(0); role < component.PaddleRoleCount; role++ {
		names[role], points[role] = "?", "-"
		e, err := w.Resource.Roles.Paddle(role)
		if err != nil {
			continue
		}
		if n, ok := c.Name.Get(e); ok {
			names[role] = n.Name
		}
		if s, ok := c.Score.Get(e); ok {
			points[role] = fmt.Sprint(s.Points)
		}
	}
	return fmt.Sprintf("%s %s : %s %s",
		names[component.PlayerOne], points[component.PlayerOne],
		points[component.PlayerTwo], names[component.PlayerTwo])
}

func toColor(c core.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(r, g, b)
}
