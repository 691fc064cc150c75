package shape

import (
	"unicode"

	"github.com/grindlemire/go-gui/internal/font"
)

// globalMask is carried by every glyph; features applied to the whole run
// use it.
const globalMask uint32 = 1

var (
	tagIsol = font.MakeTag("isol")
	tagFina = font.MakeTag("fina")
	tagMedi = font.MakeTag("medi")
	tagInit = font.MakeTag("init")
)

// joiningMasks holds the positional features, each with its own mask bit.
var joiningMasks = map[font.Tag]uint32{
	tagIsol: 1 << 1,
	tagFina: 1 << 2,
	tagMedi: 1 << 3,
	tagInit: 1 << 4,
}

func tagSet(tags ...string) map[font.Tag]bool {
	out := make(map[font.Tag]bool, len(tags))
	for _, t := range tags {
		out[font.MakeTag(t)] = true
	}
	return out
}

var (
	defaultSubstFeatures = tagSet(
		"ccmp", "locl", "rlig", "liga", "clig", "calt", "rclt", "mset",
		"nukt", "akhn", "rphf", "rkrf", "pref", "blwf", "abvf", "half", "pstf", "vatu", "cjct",
		"pres", "abvs", "blws", "psts", "haln",
	)
	defaultPosFeatures = tagSet("kern", "mark", "mkmk", "curs", "dist", "abvm", "blwm")
	joiningScripts     = tagSet("arab", "syrc", "mong", "nko")
)

func substFeatures(script font.Tag) func(font.Tag) bool {
	joining := joiningScripts[script]
	return func(t font.Tag) bool {
		if _, ok := joiningMasks[t]; ok {
			return joining
		}
		return defaultSubstFeatures[t]
	}
}

func posFeatures(t font.Tag) bool { return defaultPosFeatures[t] }

type joiningType uint8

const (
	joinNone joiningType = iota
	joinRight
	joinDual
	joinCausing
	joinTransparent
)

// rightJoining lists the letters that only connect to the preceding letter.
var rightJoining = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0622, Hi: 0x0625, Stride: 1},
		{Lo: 0x0627, Hi: 0x0627, Stride: 1},
		{Lo: 0x0629, Hi: 0x0629, Stride: 1},
		{Lo: 0x062F, Hi: 0x0632, Stride: 1},
		{Lo: 0x0648, Hi: 0x0648, Stride: 1},
		{Lo: 0x0671, Hi: 0x0673, Stride: 1},
		{Lo: 0x0675, Hi: 0x0677, Stride: 1},
		{Lo: 0x0688, Hi: 0x0699, Stride: 1},
		{Lo: 0x06C0, Hi: 0x06C0, Stride: 1},
		{Lo: 0x06C3, Hi: 0x06CB, Stride: 1},
		{Lo: 0x06CD, Hi: 0x06CD, Stride: 1},
		{Lo: 0x06CF, Hi: 0x06CF, Stride: 1},
		{Lo: 0x06D2, Hi: 0x06D3, Stride: 1},
		{Lo: 0x06D5, Hi: 0x06D5, Stride: 1},
		{Lo: 0x06EE, Hi: 0x06EF, Stride: 1},
		{Lo: 0x0710, Hi: 0x0710, Stride: 1},
		{Lo: 0x0715, Hi: 0x0719, Stride: 1},
		{Lo: 0x071E, Hi: 0x071E, Stride: 1},
		{Lo: 0x0728, Hi: 0x0728, Stride: 1},
		{Lo: 0x072A, Hi: 0x072A, Stride: 1},
		{Lo: 0x072C, Hi: 0x072C, Stride: 1},
	},
}

func joiningOf(r rune) joiningType {
	switch {
	case r == 0x200D || r == 0x0640 || r == 0x07FA:
		return joinCausing
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return joinTransparent
	case unicode.Is(rightJoining, r):
		return joinRight
	case r == 0x0621 || r == 0x0674 || r == 0x06DD:
		return joinNone
	case unicode.IsLetter(r) && unicode.In(r, unicode.Arabic, unicode.Syriac, unicode.Nko, unicode.Mongolian):
		return joinDual
	}
	return joinNone
}

// assignMasks gives every glyph the global mask plus, for joining scripts,
// the mask of its positional form.
func assignMasks(glyphs []RawGlyph, script font.Tag) {
	for i := range glyphs {
		glyphs[i].mask = globalMask
	}
	if !joiningScripts[script] {
		return
	}
	types := make([]joiningType, len(glyphs))
	for i, g := range glyphs {
		if len(g.Unicodes) > 0 {
			types[i] = joiningOf(g.Unicodes[0])
		}
	}
	neighbour := func(i, step int) joiningType {
		for j := i + step; j >= 0 && j < len(types); j += step {
			if types[j] != joinTransparent {
				return types[j]
			}
		}
		return joinNone
	}
	for i, t := range types {
		if t != joinDual && t != joinRight {
			continue
		}
		prev, next := neighbour(i, -1), neighbour(i, 1)
		joinsPrev := prev == joinDual || prev == joinCausing
		joinsNext := t == joinDual && (next == joinDual || next == joinRight || next == joinCausing)
		form := tagIsol
		switch {
		case joinsPrev && joinsNext:
			form = tagMedi
		case joinsPrev:
			form = tagFina
		case joinsNext:
			form = tagInit
		}
		glyphs[i].mask |= joiningMasks[form]
	}
}
