package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinks(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ParseLinks(""))
		assert.Empty(t, ParseLinks("  ,  , "))
	})

	t.Run("hostname label with www stripped", func(t *testing.T) {
		t.Parallel()
		links := ParseLinks("https://www.example.org/report")
		require.Len(t, links, 1)
		assert.Equal(t, "https://www.example.org/report", links[0].URL)
		assert.Equal(t, "example.org", links[0].Label)
	})

	t.Run("scheme-less token kept verbatim", func(t *testing.T) {
		t.Parallel()
		links := ParseLinks("http://a.org, www.b.org")
		require.Len(t, links, 2)
		assert.Equal(t, Link{URL: "http://a.org", Label: "a.org"}, links[0])
		assert.Equal(t, Link{URL: "www.b.org", Label: "www.b.org"}, links[1])
	})

	t.Run("mixed separators preserve order", func(t *testing.T) {
		t.Parallel()
		links := ParseLinks("https://one.net two,https://three.io\nfour")
		require.Len(t, links, 4)
		assert.Equal(t, "one.net", links[0].Label)
		assert.Equal(t, "two", links[1].Label)
		assert.Equal(t, "three.io", links[2].Label)
		assert.Equal(t, "four", links[3].Label)
	})

	t.Run("every non-empty token yields exactly one link", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"a b c",
			"%%% ::: not-a-url",
			"https://x.org,,,y",
		}
		want := []int{3, 3, 2}
		for i, in := range inputs {
			assert.Len(t, ParseLinks(in), want[i], "input %q", in)
		}
	})
}
