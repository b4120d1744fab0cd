package uaxbreak

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/inline"
)

func request(text string, width dimen.Dimen) inline.BreakRequest {
	return inline.BreakRequest{
		Text: text,
		Measure: func(frag string) dimen.Dimen {
			return dimen.Dimen(len(frag))
		},
		Width:   func(dimen.Dimen) dimen.Dimen { return width },
		Indent:  func(int) dimen.Dimen { return 0 },
		Leading: 10,
	}
}

func TestGreedyFillsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	g := New()
	lines, err := g.Break(request("aaa bbb ccc", 10))
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	require.Equal(t, "aaa bbb ", textOf(lines[0], "aaa bbb ccc"))
	require.Equal(t, dimen.Dimen(7), lines[0].Width,
		"trailing spaces do not count against the width")
	require.Equal(t, "ccc", textOf(lines[1], "aaa bbb ccc"))
}

func TestGreedySingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	g := New()
	lines, err := g.Break(request("fits easily", 100))
	require.NoError(t, err)
	require.Equal(t, 1, len(lines))
	require.Equal(t, 0, lines[0].From)
	require.Equal(t, len("fits easily"), lines[0].To)
}

func TestGreedyMandatoryBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	g := New()
	lines, err := g.Break(request("ab\ncd", 100))
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	require.Equal(t, "cd", textOf(lines[1], "ab\ncd"))
}

func TestGreedyOverlongWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	g := New()
	// A single word longer than the line overflows instead of breaking
	// mid-word.
	lines, err := g.Break(request("incomprehensibilities", 5))
	require.NoError(t, err)
	require.Equal(t, 1, len(lines))
}

func TestGreedyVaryingWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	g := New()
	req := request("aaa bbb ccc ddd", 100)
	// The first line is narrowed, as if next to a float.
	req.Width = func(y dimen.Dimen) dimen.Dimen {
		if y < 10 {
			return 8
		}
		return 100
	}
	lines, err := g.Break(req)
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	require.Equal(t, "aaa bbb ", textOf(lines[0], "aaa bbb ccc ddd"))
	require.Equal(t, "ccc ddd", textOf(lines[1], "aaa bbb ccc ddd"))
}

func TestOptimizedAvoidsRunt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	o := NewOptimized()
	req := request("aa bb cc dd", 8)
	req.Mode = inline.LinebreaksOptimized
	req.Costs = inline.Costs{Hyphenation: 1, Runt: 1}
	lines, err := o.Break(req)
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	// Greedy would fill "aa bb cc" and leave "dd" alone on the last line.
	require.Equal(t, "aa bb ", textOf(lines[0], "aa bb cc dd"))
	require.Equal(t, "cc dd", textOf(lines[1], "aa bb cc dd"))
}

func TestOptimizedSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	o := NewOptimized()
	req := request("fits easily", 100)
	req.Mode = inline.LinebreaksOptimized
	lines, err := o.Break(req)
	require.NoError(t, err)
	require.Equal(t, 1, len(lines))
	require.Equal(t, "fits easily", textOf(lines[0], "fits easily"))
}

func TestOptimizedMandatoryBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	o := NewOptimized()
	req := request("ab\ncd", 100)
	req.Mode = inline.LinebreaksOptimized
	lines, err := o.Break(req)
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	require.Equal(t, "cd", textOf(lines[1], "ab\ncd"))
}

func TestOptimizedOverlongWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	o := NewOptimized()
	req := request("incomprehensibilities", 5)
	req.Mode = inline.LinebreaksOptimized
	lines, err := o.Break(req)
	require.NoError(t, err)
	require.Equal(t, 1, len(lines))
}

func TestOptimizedSimpleModeDelegates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.inline")
	defer teardown()
	o := NewOptimized()
	req := request("aaa bbb ccc", 10)
	req.Mode = inline.LinebreaksSimple
	lines, err := o.Break(req)
	require.NoError(t, err)
	require.Equal(t, 2, len(lines))
	require.Equal(t, "aaa bbb ", textOf(lines[0], "aaa bbb ccc"))
}

// textOf is a test helper returning the line's text slice.
func textOf(l inline.Line, text string) string {
	return text[l.From:l.To]
}
