package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Should uppercase hex", "#ff0000", "#FF0000"},
		{"Should keep short hex uppercased", "#abc", "#ABC"},
		{"Should convert rgb to hex", "rgb(255, 0, 0)", "#FF0000"},
		{"Should convert rgba and drop alpha", "rgba(0, 128, 255, 0.5)", "#0080FF"},
		{"Should tolerate tight rgb spacing", "rgb(1,2,3)", "#010203"},
		{"Should clamp out-of-range channels", "rgb(300, 0, 0)", "#FF0000"},
		{"Should drop transparent", "transparent", ""},
		{"Should drop inherit", "inherit", ""},
		{"Should drop inherit case-insensitively", "Inherit", ""},
		{"Should pass named colors through", "rebeccapurple", "rebeccapurple"},
		{"Should pass unparsable values through", "var(--brand)", "var(--brand)"},
		{"Should return empty for empty input", "", ""},
		{"Should trim surrounding whitespace", "  #00ff00  ", "#00FF00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Color(tc.in))
		})
	}
}

func TestAlignment(t *testing.T) {
	t.Run("Should prefer block attribute over computed style", func(t *testing.T) {
		assert.Equal(t, "center", Alignment("center", "right"))
	})
	t.Run("Should fall back to computed style", func(t *testing.T) {
		assert.Equal(t, "right", Alignment("", "right"))
	})
	t.Run("Should default to left", func(t *testing.T) {
		assert.Equal(t, "left", Alignment("", ""))
	})
	t.Run("Should reject unknown attribute values", func(t *testing.T) {
		assert.Equal(t, "justify", Alignment("middle", "justify"))
	})
	t.Run("Should normalize case", func(t *testing.T) {
		assert.Equal(t, "center", Alignment("CENTER", ""))
	})
}

func TestExpandSpacing(t *testing.T) {
	t.Run("Should apply one value to all sides", func(t *testing.T) {
		assert.Equal(t, Spacing{"10px", "10px", "10px", "10px"}, ExpandSpacing("10px"))
	})
	t.Run("Should split two values vertical then horizontal", func(t *testing.T) {
		assert.Equal(t, Spacing{"10px", "20px", "10px", "20px"}, ExpandSpacing("10px 20px"))
	})
	t.Run("Should split three values with shared horizontal", func(t *testing.T) {
		assert.Equal(t, Spacing{"1em", "2em", "3em", "2em"}, ExpandSpacing("1em 2em 3em"))
	})
	t.Run("Should map four values clockwise", func(t *testing.T) {
		assert.Equal(t, Spacing{"1px", "2px", "3px", "4px"}, ExpandSpacing("1px 2px 3px 4px"))
	})
	t.Run("Should yield zero spacing for empty input", func(t *testing.T) {
		assert.True(t, ExpandSpacing("").IsZero())
	})
	t.Run("Should yield zero spacing for over-long shorthand", func(t *testing.T) {
		assert.True(t, ExpandSpacing("1px 2px 3px 4px 5px").IsZero())
	})
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t,
		"&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;",
		EscapeHTML(`<a href="x">Tom & Jerry's</a>`))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"), "already-escaped input is escaped again")
}
