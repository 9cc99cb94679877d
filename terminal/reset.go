package terminal

import (
	"io"
	"os"
)

var (
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiSGR0           = []byte("\x1b[0m")
	csiAutoWrapOn     = []byte("\x1b[?7h")
)

// EmergencyReset restores a sane terminal without going through tcell
// Used from panic handlers where the screen state is unknown
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}
