package inline

import (
	"github.com/npillmayer/cords"

	"github.com/npillmayer/pagina/engine/styles"
)

// Child is one inline child of a paragraph: a text span with its styles.
type Child struct {
	Text   string
	Styles styles.Chain
}

// styleRun maps a byte range of the merged paragraph text to the styles of
// the child it came from.
type styleRun struct {
	from, to uint64
	styles   styles.Chain
}

// collected is the output of the collect stage: the paragraph's children
// merged into a single text buffer plus the run map.
type collected struct {
	text cords.Cord
	runs []styleRun
}

// textLeaf is a cord leaf holding a fragment of paragraph text.
type textLeaf string

func (l textLeaf) Weight() uint64 {
	return uint64(len(l))
}

func (l textLeaf) String() string {
	return string(l)
}

func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return textLeaf(l[:i]), textLeaf(l[i:])
}

func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l[i:j])
}

var _ cords.Leaf = textLeaf("")

// collect merges the paragraph's children into one text cord and records
// which byte range carries which styles. Empty children vanish.
func collect(children []Child) collected {
	b := cords.NewBuilder()
	runs := make([]styleRun, 0, len(children))
	var pos uint64
	for _, child := range children {
		if child.Text == "" {
			continue
		}
		b.Append(textLeaf(child.Text))
		end := pos + uint64(len(child.Text))
		runs = append(runs, styleRun{from: pos, to: end, styles: child.Styles})
		pos = end
	}
	coll := collected{text: b.Cord(), runs: runs}
	tracer().Debugf("collected %d children into %d text bytes", len(children), pos)
	return coll
}
