package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (dst RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Scale multiplies every channel by f, clamped to [0, 255]
func (c RGB) Scale(f float64) RGB {
	ch := func(v uint8) uint8 {
		s := float64(v) * f
		if s <= 0 {
			return 0
		}
		if s >= 255 {
			return 255
		}
		return uint8(s)
	}
	return RGB{ch(c.R), ch(c.G), ch(c.B)}
}

func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbFloor      = RGB{36, 40, 59}
	RgbWall       = RGB{86, 95, 137}
	RgbObstacle   = RGB{65, 72, 104}

	RgbDoorClosed = RGB{122, 162, 247}
	RgbDoorOpen   = RGB{255, 199, 119}
	RgbStatue     = RGB{187, 154, 247}
	RgbConsole    = RGB{125, 207, 255}
	RgbHalo       = RGB{224, 175, 104}

	RgbAvatar       = RGB{158, 206, 106}
	RgbPlaceholder  = RGB{120, 120, 120}
	RgbStatusText   = RGB{192, 202, 245}
	RgbPromptText   = RGB{255, 158, 100}
	RgbHintText     = RGB{86, 95, 137}
	RgbPanelBg      = RGB{31, 35, 53}
	RgbPanelBorder  = RGB{122, 162, 247}
	RgbPanelTitle   = RGB{255, 199, 119}
	RgbPanelText    = RGB{169, 177, 214}
	RgbPanelMeta    = RGB{115, 218, 202}
	RgbDebugText    = RGB{130, 130, 130}
	RgbListSelected = RGB{158, 206, 106}
)
