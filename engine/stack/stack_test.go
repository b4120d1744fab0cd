package stack

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/region"
	"github.com/npillmayer/pagina/engine/styles"
)

// blockOfSizes lays out a "block" which is simply a list of frame sizes,
// one frame per size.
func blockOfSizes(block interface{}, sty styles.Chain,
	regs region.Regions) (frame.Fragment, error) {
	//
	sizes := block.([]frame.Size)
	frames := make([]*frame.Frame, len(sizes))
	for i, s := range sizes {
		frames[i] = frame.NewFrame(s)
	}
	return frame.FragmentFrames(frames), nil
}

func TestStackAbsoluteSpacingOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 100}, frame.Expansion{})
	for _, order := range [][]dimen.Dimen{{10, 20, 30}, {30, 10, 20}} {
		sl := NewLayouter(core.NoSpan, frame.TTB, regs)
		for _, d := range order {
			sl.LayoutSpacing(Abs(d))
		}
		fragment, err := sl.Finish()
		require.NoError(t, err)
		require.Equal(t, 1, fragment.Len())
		require.Equal(t, dimen.Dimen(60), fragment.Frame(0).Height(),
			"used main size is the sum of spacings, independent of order")
	}
}

func TestStackFractionalSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 100}, frame.Expansion{})
	sl := NewLayouter(core.NoSpan, frame.TTB, regs)
	sl.LayoutSpacing(Frac(1))
	err := sl.LayoutBlock([]frame.Size{{W: 50, H: 20}}, nil, frame.Alignments{}, blockOfSizes)
	require.NoError(t, err)
	sl.LayoutSpacing(Frac(1))
	fragment, err := sl.Finish()
	require.NoError(t, err)
	require.Equal(t, 1, fragment.Len())
	out := fragment.Frame(0)
	require.Equal(t, dimen.Dimen(100), out.Height(),
		"fractional spacing stretches the stack to the full region")
	items := out.Items()
	require.Equal(t, 1, len(items))
	require.Equal(t, dimen.Dimen(40), items[0].Pos.Y,
		"each of the two fractions resolves to half of the 80 leftover units")
}

func TestStackBlockSpansRegions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 50}, frame.Expansion{})
	sl := NewLayouter(core.NoSpan, frame.TTB, regs)
	// A block that comes back as two frames finishes the region in between.
	err := sl.LayoutBlock([]frame.Size{{W: 100, H: 50}, {W: 100, H: 30}},
		nil, frame.Alignments{}, blockOfSizes)
	require.NoError(t, err)
	fragment, err := sl.Finish()
	require.NoError(t, err)
	require.Equal(t, 2, fragment.Len())
	require.Equal(t, dimen.Dimen(50), fragment.Frame(0).Height())
	require.Equal(t, dimen.Dimen(30), fragment.Frame(1).Height())
}

func TestStackRulerAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 100}, frame.Expansion{Y: true})
	sl := NewLayouter(core.NoSpan, frame.TTB, regs)
	err := sl.LayoutBlock([]frame.Size{{W: 100, H: 10}}, nil,
		frame.Alignments{Y: frame.Start}, blockOfSizes)
	require.NoError(t, err)
	err = sl.LayoutBlock([]frame.Size{{W: 100, H: 10}}, nil,
		frame.Alignments{Y: frame.Center}, blockOfSizes)
	require.NoError(t, err)
	fragment, err := sl.Finish()
	require.NoError(t, err)
	items := fragment.Frame(0).Items()
	require.Equal(t, 2, len(items))
	require.Equal(t, dimen.Dimen(0), items[0].Pos.Y)
	require.Equal(t, dimen.Dimen(50), items[1].Pos.Y,
		"the ruler advances to center: 80/2 extra plus the 10 unit cursor")
}

func TestStackSpacingLimitedToRemaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 30}, frame.Expansion{})
	sl := NewLayouter(core.NoSpan, frame.TTB, regs)
	sl.LayoutSpacing(Abs(100))
	fragment, err := sl.Finish()
	require.NoError(t, err)
	require.Equal(t, dimen.Dimen(30), fragment.Frame(0).Height(),
		"absolute spacing is clipped to the remaining space")
}

func TestStackInfiniteSpacingFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: dimen.Infinity},
		frame.Expansion{Y: true})
	sl := NewLayouter(core.NoSpan, frame.TTB, regs)
	sl.LayoutSpacing(Frac(1))
	_, err := sl.Finish()
	require.Error(t, err)
	require.Equal(t, core.ELAYOUT, core.Code(err))
}

func TestStackDriverInsertsGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagina.frame")
	defer teardown()
	regs := region.Repeat(frame.Size{W: 100, H: 100}, frame.Expansion{})
	gap := Abs(5)
	children := []Child{
		BlockChild([]frame.Size{{W: 100, H: 10}}, nil, frame.Alignments{}),
		BlockChild([]frame.Size{{W: 100, H: 10}}, nil, frame.Alignments{}),
		SpacingChild(Abs(20)),
		BlockChild([]frame.Size{{W: 100, H: 10}}, nil, frame.Alignments{}),
	}
	fragment, err := Layout(core.NoSpan, frame.TTB, &gap, children, blockOfSizes, regs)
	require.NoError(t, err)
	// 10 + gap 5 + 10 + explicit 20 + 10; explicit spacing suppresses the gap.
	require.Equal(t, dimen.Dimen(55), fragment.Frame(0).Height())
}
