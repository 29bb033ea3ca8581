package system

// EnterGraphics hides the console cursor and switches the VT to graphics
// mode. Failures are logged and otherwise ignored; the watchface still
// renders, the console may just show through.
func EnterGraphics(l Logger) {
	logResult(l, "KD_GRAPHICS set", "KD_GRAPHICS failed", SetGraphicsMode())
	logResult(l, "cursor hidden", "hide cursor failed", HideCursor())
}

// LeaveGraphics undoes EnterGraphics.
func LeaveGraphics(l Logger) {
	logResult(l, "cursor shown", "show cursor failed", ShowCursor())
	logResult(l, "KD_TEXT set", "KD_TEXT failed", RestoreTextMode())
}

func logResult(l Logger, ok, failed string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
		return
	}
	l.Infof("tty", "%s", ok)
}
