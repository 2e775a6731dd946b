package main

import (
	"html/template"
	"io"
	"strconv"
	"strings"

	lucide "github.com/eduardolat/gomponents-lucide"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon names a lucide outline glyph.
type Icon string

const (
	IconGitHub       Icon = "github"
	IconLinkedIn     Icon = "linkedin"
	IconMail         Icon = "mail"
	IconGlobe        Icon = "globe"
	IconSmartphone   Icon = "smartphone"
	IconTerminal     Icon = "terminal"
	IconExternalLink Icon = "external-link"
)

type glyph interface {
	Render(w io.Writer) error
}

var glyphs = map[Icon]func() glyph{
	IconGitHub:       func() glyph { return lucide.Github() },
	IconLinkedIn:     func() glyph { return lucide.Linkedin() },
	IconMail:         func() glyph { return lucide.Mail() },
	IconGlobe:        func() glyph { return lucide.Globe() },
	IconSmartphone:   func() glyph { return lucide.Smartphone() },
	IconTerminal:     func() glyph { return lucide.Terminal() },
	IconExternalLink: func() glyph { return lucide.ExternalLink() },
}

func (i Icon) Known() bool {
	_, ok := glyphs[i]
	return ok
}

// SVG renders the glyph inside a square box of size px. Unknown glyphs, or
// glyphs that fail to render, come out as nothing.
func (i Icon) SVG(size int) template.HTML {
	newGlyph, ok := glyphs[i]
	if !ok {
		return ""
	}

	var svg strings.Builder
	if err := newGlyph().Render(&svg); err != nil {
		return ""
	}

	px := strconv.Itoa(size) + "px"
	var b strings.Builder
	err := h.Span(
		h.Class("icon icon-"+string(i)),
		h.Style("width:"+px+";height:"+px),
		h.Aria("hidden", "true"),
		g.Raw(svg.String()),
	).Render(&b)
	if err != nil {
		return ""
	}
	return template.HTML(b.String())
}
