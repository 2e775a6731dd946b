package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconSVG(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(IconGitHub.SVG(20))))
	require.NoError(t, err)

	box := doc.Find("span.icon.icon-github")
	require.Equal(t, 1, box.Length())
	assert.Equal(t, "width:20px;height:20px", box.AttrOr("style", ""))
	assert.Equal(t, "true", box.AttrOr("aria-hidden", ""))

	svg := box.Children().First()
	assert.Equal(t, "svg", goquery.NodeName(svg))
	assert.Equal(t, "currentColor", svg.AttrOr("stroke", ""))
	assert.Equal(t, "0 0 24 24", svg.AttrOr("viewBox", svg.AttrOr("viewbox", "")))
}

func TestIconsRenderDistinctGlyphs(t *testing.T) {
	seen := map[string]Icon{}
	for i := range glyphs {
		svg := string(i.SVG(24))
		require.NotEmpty(t, svg, i)

		body := strings.TrimPrefix(svg, `<span class="icon icon-`+string(i)+`"`)
		if prev, dup := seen[body]; dup {
			t.Errorf("%s renders the same glyph as %s", i, prev)
		}
		seen[body] = i
	}
}

func TestUnknownIconRendersNothing(t *testing.T) {
	assert.False(t, Icon("rocket").Known())
	assert.Empty(t, Icon("rocket").SVG(20))
}

func TestSiteUsesKnownIcons(t *testing.T) {
	for _, l := range site.Profile.Links {
		assert.True(t, l.Icon.Known(), l.Label)
	}
	for _, s := range site.Skills {
		assert.True(t, s.Icon.Known(), s.Title)
	}
}
