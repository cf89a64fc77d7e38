package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/constants"
)

// badgeBase holds the full-intensity color per badge tier.
var badgeBase = map[chip.Badge]colorful.Color{
	chip.BadgeCategory: mustHex("#f5a623"),
	chip.BadgeBold:     mustHex("#ffffff"),
	chip.BadgePopular:  mustHex("#4fc3f7"),
	chip.BadgePro:      mustHex("#ba68c8"),
	chip.BadgeDemo:     mustHex("#81c784"),
	chip.BadgeFun:      mustHex("#ff8a65"),
	chip.BadgeNone:     mustHex("#b0bec5"),
}

var paletteBg = mustHex("#10141a")

// BadgeStyle returns the chip style for a badge at a zoom level. Shrinking
// the scale blends chips toward the background, a cheap depth cue.
// Category chips render bold: they are controls, not content.
func BadgeStyle(b chip.Badge, scale float64) tcell.Style {
	base, ok := badgeBase[b]
	if !ok {
		base = badgeBase[chip.BadgeNone]
	}

	depth := (scale - constants.MinScale) / (1.0 - constants.MinScale)
	if depth > 1 {
		depth = 1
	}
	if depth < 0.35 {
		depth = 0.35
	}
	blended := paletteBg.BlendLab(base, depth).Clamped()

	style := tcell.StyleDefault.Foreground(toTcell(blended))
	if b == chip.BadgeCategory {
		style = style.Bold(true)
	}
	return style
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
