package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	tc "github.com/gdamore/tcell/v2"
)

func newDriver() gruid.Driver {
	return tcell.NewDriver(tcell.Config{StyleManager: styler{}})
}

// styler implements the tcell.StyleManager interface, mapping the 16-color
// palette to terminal colors.
type styler struct{}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	if cst.Bg == gruid.ColorDefault {
		st = st.Background(tc.ColorDefault)
	} else {
		st = st.Background(tc.ColorValid + tc.Color(cst.Bg) - 1)
	}
	if cst.Fg == gruid.ColorDefault {
		st = st.Foreground(tc.ColorDefault)
	} else {
		st = st.Foreground(tc.ColorValid + tc.Color(cst.Fg) - 1)
	}
	if cst.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if cst.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	return st
}
