package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/status"
)

func TestBufferSetGetAndClip(t *testing.T) {
	buf := NewBuffer(4, 2)

	buf.Set(1, 1, 'x', RgbAvatar, RgbFloor, tcell.AttrBold)
	assert.Equal(t, Cell{Rune: 'x', Fg: RgbAvatar, Bg: RgbFloor, Attrs: tcell.AttrBold}, buf.Get(1, 1))

	// Out of bounds writes are dropped, reads return the empty cell
	buf.Set(9, 9, 'y', RgbAvatar, RgbFloor, tcell.AttrNone)
	assert.Equal(t, emptyCell, buf.Get(9, 9))

	assert.Equal(t, 2, buf.Text(0, 0, "abc", RgbStatusText, 2))
	assert.Equal(t, 'b', buf.Get(1, 0).Rune)
	assert.Equal(t, ' ', buf.Get(2, 0).Rune)

	buf.SetFg(1, 1, 'z', RgbPanelText)
	assert.Equal(t, RgbFloor, buf.Get(1, 1).Bg, "SetFg keeps background")

	buf.Clear()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, emptyCell, buf.Get(x, y))
		}
	}

	buf.Resize(10, 3)
	w, h := buf.Bounds()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
}

func TestRGBHelpers(t *testing.T) {
	black := RGB{}
	white := RGB{255, 255, 255}
	assert.Equal(t, black, black.Blend(white, 0))
	assert.Equal(t, white, black.Blend(white, 1))
	assert.Equal(t, RGB{127, 127, 127}, black.Blend(white, 0.5))
	assert.Equal(t, white, RGB{200, 200, 200}.Add(RGB{100, 100, 100}))
	assert.Equal(t, RGB{50, 0, 255}, RGB{100, 0, 200}.Scale(0.5).Add(RGB{0, 0, 155}))
}

func TestProjectionForwardIsUp(t *testing.T) {
	sess := &engine.Session{}
	sess.Camera.LookTarget = mgl64.Vec3{0, 0, -10}
	ctx := Context{Session: sess, Width: 80, Height: 43, HUDRows: HUDRows, Zoom: 2}
	proj := ctx.Projection()
	assert.Equal(t, 40, proj.Rows())

	col, row, ok := proj.ToCell(mgl64.Vec2{0, -10})
	require.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 20, row)

	_, ahead, _ := proj.ToCell(mgl64.Vec2{0, -15})
	assert.Less(t, ahead, row, "forward (-z) renders above")

	right, _, _ := proj.ToCell(mgl64.Vec2{1, -10})
	assert.Equal(t, col+4, right, "x is stretched for cell aspect")

	_, _, ok = proj.ToCell(mgl64.Vec2{0, 40})
	assert.False(t, ok)

	back := proj.ToWorld(col, row)
	assert.InDelta(t, 0, back.X(), 0.5)
	assert.InDelta(t, -10, back.Y(), 0.5)
}

type stubRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (p stubRenderer) Render(Context, *Buffer) { *p.log = append(*p.log, p.name) }
func (p stubRenderer) IsVisible() bool         { return p.visible }

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	_, closer, err := InitScreen(sim)
	require.NoError(t, err)
	t.Cleanup(closer)
	sim.SetSize(w, h)
	return sim
}

func TestOrchestratorOrderAndVisibility(t *testing.T) {
	sim := newSimScreen(t, 20, 5)
	o := NewOrchestrator(sim)

	var log []string
	o.Register(stubRenderer{"ui", &log, true}, PriorityUI)
	o.Register(stubRenderer{"floor", &log, true}, PriorityFloor)
	o.Register(stubRenderer{"hidden", &log, false}, PriorityObject)
	o.Register(stubRenderer{"ui-2", &log, true}, PriorityUI)
	o.Register(stubRenderer{"avatar", &log, true}, PriorityAvatar)

	o.RenderFrame(Context{})
	assert.Equal(t, []string{"floor", "avatar", "ui", "ui-2"}, log)
}

func simText(sim tcell.SimulationScreen) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func TestOverlayState(t *testing.T) {
	ov := NewOverlay()
	var _ engine.Overlay = ov

	ov.ShowPrompt("Near door: Ring buffers")
	ov.SetStatus("Loaded 3 post doors.")
	assert.Equal(t, "Near door: Ring buffers", ov.Prompt())
	assert.Equal(t, "Loaded 3 post doors.", ov.Status())
	ov.ClearPrompt()
	assert.Empty(t, ov.Prompt())

	_, ok := ov.Panel()
	assert.False(t, ok)
	ov.OpenPanel(engine.Panel{Title: "T", Destination: "/t/"})
	p, ok := ov.Panel()
	require.True(t, ok)
	assert.Equal(t, "T", p.Title)
	ov.ClosePanel()
	_, ok = ov.Panel()
	assert.False(t, ok)

	ov.OpenList([]core.Entry{{Title: "A"}})
	assert.Len(t, ov.List(), 1)
	ov.CloseList()
	assert.Nil(t, ov.List())
}

func TestPanelLinesWrap(t *testing.T) {
	p := engine.Panel{
		Title:       "Building a terminal walker",
		Meta:        "Feb 11, 2024 · go, tcell",
		Summary:     strings.Repeat("walk the corridor and open doors ", 6),
		Destination: "/posts/terminal-walker/",
		Details:     []string{"supercalifragilisticexpialidocious-word"},
	}
	lines := PanelLines(p, 20)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Building a terminal", lines[0])
	for _, l := range lines {
		if strings.HasPrefix(l, "Enter:") || strings.HasPrefix(l, "/posts") {
			continue
		}
		assert.LessOrEqual(t, len([]rune(l)), 20, "line %q", l)
	}
	assert.Contains(t, strings.Join(lines, "\n"), "Esc:")
}

func TestListLinesNumbered(t *testing.T) {
	lines := ListLines([]core.Entry{
		{Title: "Roam", DateLabel: "2024"},
		{Title: "An extremely long project title that will not fit"},
	}, 24)
	assert.Contains(t, lines, "1. Roam (2024)")
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "2. ") {
			found = true
			assert.LessOrEqual(t, len([]rune(l)), 24)
			assert.True(t, strings.HasSuffix(l, "…"))
		}
	}
	assert.True(t, found)
}

func TestSpriteParseAndGlyphs(t *testing.T) {
	s, err := ParseSprite([]byte("name: bot\nidle: \"B\"\nwalk: \"bd\"\nfps: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "bd", s.Run, "run falls back to walk")
	assert.Equal(t, 'B', s.Glyph(core.ModeIdle, 3))
	assert.Equal(t, 'b', s.Glyph(core.ModeWalk, 0))
	assert.Equal(t, 'd', s.Glyph(core.ModeRun, 0.5))
	assert.Equal(t, rune(0), s.Arrow(1, 0), "no facing arrows configured")

	_, err = ParseSprite([]byte("name: empty\n"))
	require.Error(t, err)
	oe, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "ASSET_INVALID", oe.Code())

	_, err = ParseSprite([]byte("idle: x\nfacing: \"↑↓\"\n"))
	assert.ErrorContains(t, err, "8 arrows")

	d := DefaultSprite()
	assert.Equal(t, '↓', d.Arrow(0, 1))
	assert.Equal(t, '→', d.Arrow(1, 0))
	assert.Equal(t, '↑', d.Arrow(0, -1))
	assert.Equal(t, '←', d.Arrow(-1, 0))
	assert.Equal(t, '↖', d.Arrow(-1, -1))
	assert.Equal(t, rune(0), d.Arrow(0, 0))
}

func TestLoadSprite(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("default", func(t *testing.T) {
		f := LoadSprite(ctx, "", nil)
		require.True(t, f.Resolved())
		s, err := f.Result()
		require.NoError(t, err)
		assert.Equal(t, "default", s.Name)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sprite.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: file\nidle: \"&\"\n"), 0o644))
		s, err := LoadSprite(ctx, path, nil).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, "file", s.Name)
	})

	t.Run("missing file exhausts retries", func(t *testing.T) {
		_, err := LoadSprite(ctx, filepath.Join(t.TempDir(), "nope.yaml"), nil).Wait(ctx)
		require.Error(t, err)
		oe, ok := oops.AsOops(err)
		require.True(t, ok)
		assert.Equal(t, "ASSET_UNAVAILABLE", oe.Code())
	})

	t.Run("decode error is not retried", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("idle: [unclosed"), 0o644))
		start := time.Now()
		_, err := LoadSprite(ctx, path, nil).Wait(ctx)
		require.Error(t, err)
		assert.Less(t, time.Since(start), spriteRetryBase)
	})
}

func testSession(t *testing.T, overlay engine.Overlay) *engine.Session {
	t.Helper()
	sess, err := engine.NewSession(engine.Config{
		Profile: parameter.CorridorProfile(),
		Kind:    core.KindPost,
		Bounds:  core.Bounds{MinX: -4.2, MaxX: 4.2, MinZ: -40, MaxZ: 7.6},
		Objects: []*component.Interactive{
			component.NewDoor(0, mgl64.Vec2{-8.2, 0}, &core.Entry{Title: "Door", Destination: "/d/"}),
		},
		AvatarStart: mgl64.Vec3{0, 0, 0},
		Overlay:     overlay,
		Navigator:   engine.NopNavigator{},
	})
	require.NoError(t, err)
	return sess
}

func TestFullFrame(t *testing.T) {
	sim := newSimScreen(t, 60, 24)
	ov := NewOverlay()
	sess := testSession(t, ov)
	ov.SetStatus("Loaded 1 post door.")

	o := NewOrchestrator(sim)
	o.Register(FloorRenderer{}, PriorityFloor)
	o.Register(ObjectRenderer{}, PriorityObject)

	pending := engine.NewFuture[Sprite]()
	avatar := NewAvatarRenderer(pending, nil)
	o.Register(avatar, PriorityAvatar)
	o.Register(NewHUD(ov, func() bool { return true }), PriorityUI)
	o.Register(ov, PriorityOverlay)
	debug := NewDebugRenderer(status.NewRegistry())
	o.Register(debug, PriorityDebug)

	ctx := Context{Session: sess, HUDRows: HUDRows, Zoom: 1}
	o.RenderFrame(ctx)
	text := simText(sim)
	assert.Contains(t, text, string(PlaceholderGlyph), "placeholder until the sprite resolves")
	assert.Contains(t, text, "Loaded 1 post door.")
	assert.Contains(t, text, "[muted]")
	assert.Contains(t, text, "█", "closed door")

	pending.Resolve(DefaultSprite(), nil)
	o.RenderFrame(ctx)
	text = simText(sim)
	assert.Contains(t, text, "@")
	assert.NotContains(t, text, string(PlaceholderGlyph))

	ov.OpenPanel(engine.PanelFor(0, sess.Objects[0].Entry))
	o.RenderFrame(ctx)
	assert.Contains(t, simText(sim), "Enter: go to /d/")

	assert.False(t, debug.IsVisible())
	debug.Toggle()
	assert.True(t, debug.IsVisible())
}
