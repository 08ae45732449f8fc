package crunchbang

import (
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Colors of the main palette. They are given 16-palette color numbers
// compatible with terminals; front-ends map them to precise colors.
const (
	ColorBackground          gruid.Color = gruid.ColorDefault // background
	ColorBackgroundSecondary gruid.Color = 1 + 0              // black
	ColorForeground          gruid.Color = gruid.ColorDefault
	ColorForegroundSecondary gruid.Color = 1 + 7  // white
	ColorForegroundEmph      gruid.Color = 1 + 15 // bright white
	ColorRed                 gruid.Color = 1 + 9  // bright red
	ColorGreen               gruid.Color = 1 + 2
	ColorYellow              gruid.Color = 1 + 3
	ColorBlue                gruid.Color = 1 + 4
	ColorMagenta             gruid.Color = 1 + 5
	ColorCyan                gruid.Color = 1 + 6
	ColorOrange              gruid.Color = 1 + 1  // red
	ColorViolet              gruid.Color = 1 + 12 // bright blue
)

var colorNames = map[string]gruid.Color{
	"default":   ColorForeground,
	"black":     ColorBackgroundSecondary,
	"white":     ColorForegroundSecondary,
	"emph":      ColorForegroundEmph,
	"red":       ColorRed,
	"green":     ColorGreen,
	"yellow":    ColorYellow,
	"blue":      ColorBlue,
	"magenta":   ColorMagenta,
	"purple":    ColorMagenta,
	"cyan":      ColorCyan,
	"orange":    ColorOrange,
	"violet":    ColorViolet,
	"secondary": ColorForegroundSecondary,
}

// ColorByName returns the palette color with the given name, as used in
// templates. Unknown names give the default foreground.
func ColorByName(name string) gruid.Color {
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return ColorForeground
	}
	return c
}

// IsColorName reports whether name is a known palette color name.
func IsColorName(name string) bool {
	_, ok := colorNames[strings.ToLower(name)]
	return ok
}
