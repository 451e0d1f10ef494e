package render

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/vmath"
)

// FloorRenderer paints the walkable lane, its walls and static obstacles
type FloorRenderer struct{}

func (FloorRenderer) Render(ctx Context, buf *Buffer) {
	s := ctx.Session
	if s == nil {
		return
	}
	proj := ctx.Projection()
	// One cell of depth, used to outline the lane
	edge := 1 / proj.zoom
	outer := core.Bounds{
		MinX: s.Bounds.MinX - edge/cellAspect, MaxX: s.Bounds.MaxX + edge/cellAspect,
		MinZ: s.Bounds.MinZ - edge, MaxZ: s.Bounds.MaxZ + edge,
	}

	for row := 0; row < proj.Rows(); row++ {
		for col := 0; col < proj.Cols(); col++ {
			pt := proj.ToWorld(col, row)
			switch {
			case blocked(s.Obstacles, pt):
				buf.Set(col, row, ' ', RgbObstacle, RgbObstacle, tcell.AttrNone)
			case s.Bounds.Contains(pt):
				buf.Set(col, row, ' ', RgbFloor, RgbFloor, tcell.AttrNone)
			case outer.Contains(pt):
				buf.Set(col, row, '░', RgbWall, RgbBackground, tcell.AttrNone)
			}
		}
	}
}

func blocked(obstacles []core.Obstacle, pt mgl64.Vec2) bool {
	for _, o := range obstacles {
		if pt.Sub(o.Center).Len() <= o.Radius {
			return true
		}
	}
	return false
}

// ObjectRenderer draws doors, statues and the console with their halo
type ObjectRenderer struct{}

func (ObjectRenderer) Render(ctx Context, buf *Buffer) {
	s := ctx.Session
	if s == nil {
		return
	}
	proj := ctx.Projection()

	for i, o := range s.Objects {
		col, row, ok := proj.ToCell(o.Position)
		if !ok {
			continue
		}
		drawHalo(buf, col, row, o.Halo)

		glyph, color := objectGlyph(o)
		attrs := tcell.AttrNone
		if i == s.Interest.Nearest && s.Interest.InRange {
			attrs = tcell.AttrBold
		}
		bg := buf.Get(col, row).Bg
		buf.Set(col, row, glyph, color.Add(RgbHalo.Scale(o.Light*0.3)), bg, attrs)

		if o.Statue != nil && row+1 < proj.Rows() {
			label := o.Statue.Plaque
			buf.Text(col-len([]rune(label))/2, row+1, label, RgbPanelText, proj.Cols())
		}
	}
}

// drawHalo tints the cells around an object by its halo intensity
func drawHalo(buf *Buffer, col, row int, halo float64) {
	if halo <= 0 {
		return
	}
	alpha := vmath.Clamp01(halo)
	for dy := -1; dy <= 1; dy++ {
		for dx := -2; dx <= 2; dx++ {
			a := alpha
			if dx != 0 || dy != 0 {
				a *= 0.5
			}
			buf.BlendBg(col+dx, row+dy, RgbHalo, a)
		}
	}
}

// objectGlyph picks the glyph by kind and reveal progress
func objectGlyph(o *component.Interactive) (rune, RGB) {
	switch o.Kind {
	case component.KindConsole:
		if o.Console != nil && o.Console.ListOpen {
			return '◉', RgbConsole
		}
		return '◎', RgbConsole
	case component.KindStatue:
		return 'Ω', RgbStatue.Blend(RgbDoorOpen, o.OpenAmount)
	}

	color := RgbDoorClosed.Blend(RgbDoorOpen, o.OpenAmount)
	switch {
	case o.OpenAmount > 0.66:
		return ' ', color
	case o.OpenAmount > 0.33:
		return '▏', color
	case o.State.Revealing():
		return '▌', color
	default:
		return '█', color
	}
}

// AvatarRenderer draws the walker from its sprite
// Draws the placeholder glyph until the sprite future resolves
type AvatarRenderer struct {
	sprite *engine.Future[Sprite]
	logger *slog.Logger
	warned bool
}

func NewAvatarRenderer(sprite *engine.Future[Sprite], logger *slog.Logger) *AvatarRenderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AvatarRenderer{sprite: sprite, logger: logger}
}

// current polls the sprite without blocking
func (r *AvatarRenderer) current() (Sprite, bool) {
	if r.sprite == nil || !r.sprite.Resolved() {
		return Sprite{}, false
	}
	s, err := r.sprite.Result()
	if err != nil {
		if !r.warned {
			r.logger.Warn("sprite unavailable, using default", "error", err)
			r.warned = true
		}
		return DefaultSprite(), true
	}
	return s, true
}

func (r *AvatarRenderer) Render(ctx Context, buf *Buffer) {
	s := ctx.Session
	if s == nil || !s.Avatar.Visible {
		return
	}
	proj := ctx.Projection()
	col, row, ok := proj.ToCell(vmath.Planar(s.Avatar.Position))
	if !ok {
		return
	}

	color := RgbAvatar.Scale(s.Avatar.Scale)
	sprite, ready := r.current()
	if !ready {
		buf.SetFg(col, row, PlaceholderGlyph, RgbPlaceholder)
		return
	}

	buf.SetFg(col, row, sprite.Glyph(s.Avatar.Mode, s.Stats().SimTime), color)
	if arrow := sprite.Arrow(s.Avatar.Velocity.X(), s.Avatar.Velocity.Z()); arrow != 0 && s.Avatar.Mode != core.ModeIdle {
		buf.SetFg(col+1, row, arrow, color.Scale(0.7))
	}
}
