package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/core"
)

// OpenScreen initializes the terminal and registers its teardown for crash reports
// The returned closer restores the terminal; it is safe to call more than once
func OpenScreen() (tcell.Screen, func(), error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, oops.Code("SETUP_FAILED").Wrapf(err, "create screen")
	}
	return InitScreen(screen)
}

// InitScreen prepares an existing screen, used directly with simulation screens in tests
func InitScreen(screen tcell.Screen) (tcell.Screen, func(), error) {
	if err := screen.Init(); err != nil {
		return nil, nil, oops.Code("SETUP_FAILED").Wrapf(err, "init screen")
	}
	screen.SetStyle(tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbStatusText.Tcell()))
	screen.HideCursor()
	screen.Clear()

	closed := false
	closer := func() {
		if closed {
			return
		}
		closed = true
		core.SetCrashRestore(nil)
		screen.Fini()
	}
	core.SetCrashRestore(screen.Fini)
	return screen, closer, nil
}
