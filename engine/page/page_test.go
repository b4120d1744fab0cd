package page

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/flow"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/inline"
	"github.com/npillmayer/pagina/engine/styles"
)

// cellShaper measures one unit per byte.
type cellShaper struct{}

func (cellShaper) Measure(frag string, size dimen.Dimen) inline.Metrics {
	return inline.Metrics{W: dimen.Dimen(len(frag)), H: 8, D: 2}
}

// spaceBreaker breaks greedily at spaces.
type spaceBreaker struct{}

func (spaceBreaker) Break(req inline.BreakRequest) ([]inline.Line, error) {
	var lines []inline.Line
	pos, cur := 0, 0
	for _, word := range strings.SplitAfter(req.Text, " ") {
		candidate := strings.TrimRight(req.Text[pos:cur+len(word)], " ")
		y := dimen.Dimen(len(lines)) * req.Leading
		if cur > pos && req.Measure(candidate) > req.Width(y)-req.Indent(len(lines)) {
			trimmed := strings.TrimRight(req.Text[pos:cur], " ")
			lines = append(lines, inline.Line{From: pos, To: cur, Width: req.Measure(trimmed)})
			pos = cur
		}
		cur += len(word)
	}
	if cur > pos {
		trimmed := strings.TrimRight(req.Text[pos:cur], " ")
		lines = append(lines, inline.Line{From: pos, To: cur, Width: req.Measure(trimmed)})
	}
	return lines, nil
}

func testConfig() Config {
	return Config{Flow: flow.Config{Shaper: cellShaper{}, Breaker: spaceBreaker{}}}
}

func pageGroup() *styles.Group {
	return styles.NewGroup().Outer().
		Set(styles.PageWidth, dimen.Dimen(200)).
		Set(styles.PageHeight, dimen.Dimen(300)).
		Set(styles.PageMarginTop, dimen.Dimen(20)).
		Set(styles.PageMarginBottom, dimen.Dimen(20)).
		Set(styles.PageMarginLeft, dimen.Dimen(20)).
		Set(styles.PageMarginRight, dimen.Dimen(20))
}

func TestPageRunBreaksOverflowingParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	parSty := initial.Extend(styles.NewGroup().Set(styles.ParLeading, dimen.Dimen(10)))
	// 40 lines of 10 units each overflow the 260-unit content area.
	word := strings.Repeat("a", 100)
	text := strings.TrimSpace(strings.Repeat(word+" ", 40))
	blocks := []flow.Block{
		flow.Paragraph{
			Children: []inline.Child{{Text: text, Styles: parSty}},
			Styles:   parSty,
		},
	}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, blocks, initial)
	require.NoError(t, err)
	require.Equal(t, 2, len(layouted), "400 units of lines need two 260-unit pages")
	require.LessOrEqual(t, layouted[0].Inner.Height(), dimen.Dimen(260))
	require.Equal(t, dimen.Dimen(160), layouted[0].Inner.Width())
}

func TestPageRunUnstyledBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	// Children without a chain of their own still get pages sized by the
	// styles active at the page break.
	blocks := []flow.Block{
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
	}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, blocks, initial)
	require.NoError(t, err)
	require.Equal(t, 1, len(layouted))
	require.Equal(t, dimen.Dimen(160), layouted[0].Inner.Width())
	require.Equal(t, dimen.Dimen(260), layouted[0].Inner.Height())
	require.Equal(t, dimen.Dimen(20), layouted[0].Margin.Top)
}

func TestPageMarginDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{styles.NewGroup().Outer().
		Set(styles.PageWidth, 210*dimen.MM).
		Set(styles.PageHeight, 297*dimen.MM)}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	require.Equal(t, 1, len(layouted))
	require.Equal(t, 25*dimen.MM, layouted[0].Margin.Top,
		"margins default to 2.5cm on an A4 page")
}

func TestPageMarginDefaultWithoutPageSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{styles.NewGroup().Outer()}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	require.Equal(t, 1, len(layouted))
	// Both axes size to content; the default margin falls back to the
	// A4 width.
	require.Equal(t, 25*dimen.MM, layouted[0].Margin.Left)
}

func TestPageStyleLifting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	// A page set rule inside the run lifts to the page level.
	lifted := styles.NewGroup().Outer().Lifted().
		Set(styles.PageMarginTop, dimen.Dimen(40))
	sty := initial.Extend(lifted)
	blocks := []flow.Block{
		flow.Box{Size: frame.Size{W: 10, H: 10}, Styles: sty},
	}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, blocks, initial)
	require.NoError(t, err)
	require.Equal(t, dimen.Dimen(40), layouted[0].Margin.Top,
		"the liftable margin override applies to the page")
	require.Equal(t, dimen.Dimen(20), layouted[0].Margin.Bottom)
}

func TestPageBindingFollowsTextDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup().Set(styles.TextDir, frame.RTL)}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	require.Equal(t, BindRight, layouted[0].Binding)
}

func TestPageNumberingRoutedToFooter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup().Set(styles.PageNumbering, "1")}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	lp := layouted[0]
	require.Nil(t, lp.Header)
	require.NotNil(t, lp.Footer, "numbering defaults to the footer")
	marker := lp.Footer.Items()[0]
	require.Equal(t, "1", marker.Item.(frame.Marker).Pattern)
	require.Equal(t, dimen.Dimen(80), marker.Pos.X,
		"the number is centered in the 160-unit footer")
}

func TestPageNumberingRoutedToHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup().
		Set(styles.PageNumbering, "1").
		Set(styles.PageNumberAlign, frame.Alignments{X: frame.End, Y: frame.Start})}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	require.NotNil(t, layouted[0].Header)
	require.Nil(t, layouted[0].Footer)
}

func TestPageNumberingYieldsToExplicitFooter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	footer := []flow.Block{flow.Box{Size: frame.Size{W: 30, H: 10}}}
	initial := styles.Chain{pageGroup().
		Set(styles.PageNumbering, "1").
		Set(styles.PageFooter, footer)}
	layouted, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	lp := layouted[0]
	require.NotNil(t, lp.Footer)
	_, isMarker := lp.Footer.Items()[0].Item.(frame.Marker)
	require.False(t, isMarker, "the explicit footer wins over the numbering")
}

func TestPageMarginalOverflowFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	header := []flow.Block{flow.Box{Size: frame.Size{W: 30, H: 50}}}
	initial := styles.Chain{pageGroup().Set(styles.PageHeader, header)}
	_, err := LayoutRun(testConfig(), core.NoSpan, nil, initial)
	require.Error(t, err, "a 50-unit header cannot fit the 14-unit header area")
	require.Equal(t, core.ELAYOUT, core.Code(err))
}

func TestFinalizePageSwapsTwoSidedMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	counter := NewCounter()
	lp := func() *LayoutedPage {
		return &LayoutedPage{
			Inner:    frame.NewFrame(frame.Size{W: 100, H: 200}),
			Margin:   Sides{Top: 10, Bottom: 10, Left: 10, Right: 30},
			Binding:  BindLeft,
			TwoSided: true,
		}
	}
	page1 := FinalizePage(counter, lp())
	page2 := FinalizePage(counter, lp())
	require.Equal(t, 1, page1.Number)
	require.Equal(t, 2, page2.Number)
	require.Equal(t, dimen.Dimen(10), page1.Frame.Items()[0].Pos.X,
		"odd pages of a left-bound document keep their margins")
	require.Equal(t, dimen.Dimen(30), page2.Frame.Items()[0].Pos.X,
		"even pages swap inside and outside margins")
}

func TestDocumentEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, nil, initial)
	require.NoError(t, err)
	require.Equal(t, 1, len(pages), "an empty document still has one page")
}

func TestDocumentWeakPagebreakAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	children := []interface{}{
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		Pagebreak{Weak: true, Styles: initial},
	}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, children, initial)
	require.NoError(t, err)
	require.Equal(t, 1, len(pages), "a trailing weak pagebreak adds no page")
}

func TestDocumentStrongPagebreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	children := []interface{}{
		Pagebreak{Styles: initial},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		Pagebreak{Styles: initial},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
	}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, children, initial)
	require.NoError(t, err)
	require.Equal(t, 3, len(pages),
		"a leading strong pagebreak produces a blank first page")
}

func TestDocumentParityInsertsFiller(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	children := []interface{}{
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		Pagebreak{Parity: ToOdd, Styles: initial},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
	}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, children, initial)
	require.NoError(t, err)
	require.Equal(t, 3, len(pages),
		"a filler page moves the second box to an odd page")
	require.Equal(t, 3, pages[2].Number)
}

func TestFormatNumbering(t *testing.T) {
	require.Equal(t, "7", FormatNumbering("1", 7))
	require.Equal(t, "- 12 -", FormatNumbering("- 1 -", 12))
	require.Equal(t, "iv", FormatNumbering("i", 4))
	require.Equal(t, "XC", FormatNumbering("I", 90))
	require.Equal(t, "aa", FormatNumbering("a", 27))
	require.Equal(t, "B", FormatNumbering("A", 2))
}

func TestResolveNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup().Set(styles.PageNumbering, "1")}
	children := []interface{}{
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		Pagebreak{Styles: initial},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
	}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, children, initial)
	require.NoError(t, err)
	require.Equal(t, 2, len(pages))
	ResolveNumbers(pages, nil)
	footer := findText(pages[1].Frame)
	require.NotNil(t, footer)
	require.Equal(t, "2", footer.Content)
}

// findText returns the first text item in a frame tree.
func findText(f *frame.Frame) *frame.TextItem {
	for _, it := range f.Items() {
		switch item := it.Item.(type) {
		case frame.TextItem:
			return &item
		case *frame.Frame:
			if found := findText(item); found != nil {
				return found
			}
		}
	}
	return nil
}

func TestDocumentParityAlreadySatisfied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.page")
	defer teardown()
	initial := styles.Chain{pageGroup()}
	children := []interface{}{
		flow.Box{Size: frame.Size{W: 10, H: 10}},
		Pagebreak{Parity: ToEven, Styles: initial},
		flow.Box{Size: frame.Size{W: 10, H: 10}},
	}
	pages, err := LayoutDocument(testConfig(), core.NoSpan, children, initial)
	require.NoError(t, err)
	require.Equal(t, 2, len(pages), "the second box already lands on page two")
}
