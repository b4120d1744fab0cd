package markup

import (
	"io"
	"strings"
	"unicode"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/npillmayer/pagina/core"
	"github.com/npillmayer/pagina/core/dimen"
	"github.com/npillmayer/pagina/engine/flow"
	"github.com/npillmayer/pagina/engine/frame"
	"github.com/npillmayer/pagina/engine/inline"
	"github.com/npillmayer/pagina/engine/page"
	"github.com/npillmayer/pagina/engine/styles"
)

// Document is parsed markup, ready to hand to the page layouter: a flat
// list of flow blocks and page breaks, plus the style chain in effect at
// the document root.
type Document struct {
	Children []interface{}
	Styles   styles.Chain
}

// Parse reads an HTML fragment and a stylesheet and converts them to
// layoutable content. Unknown elements and CSS properties are skipped.
func Parse(r io.Reader, stylesheet string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, core.ErrorAt(core.NoSpan, core.EINVALID,
			"cannot parse markup: %v", err)
	}
	rules, err := compileRules(stylesheet)
	if err != nil {
		return nil, err
	}
	b := &builder{rules: rules}
	body := findElement(root, "body")
	if body == nil {
		return nil, core.ErrorAt(core.NoSpan, core.EINVALID, "markup has no body")
	}
	chain, _ := b.chainFor(body, nil)
	doc := &Document{Styles: chain}
	doc.Children = b.blocks(body, chain, true)
	tracer().Infof("markup yields %d document children", len(doc.Children))
	return doc, nil
}

// rule is one compiled stylesheet rule: a selector plus the style group
// its declarations map to.
type rule struct {
	sel        cascadia.Selector
	group      *styles.Group
	breaksPage bool
}

func compileRules(stylesheet string) ([]rule, error) {
	if stylesheet == "" {
		return nil, nil
	}
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, core.ErrorAt(core.NoSpan, core.EINVALID,
			"cannot parse stylesheet: %v", err)
	}
	var rules []rule
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping CSS at-rule %q", r.Prelude)
			continue
		}
		group, breaksPage := groupFromDeclarations(r.Declarations)
		group.Outer().Lifted()
		for _, s := range r.Selectors {
			sel, err := cascadia.Compile(s)
			if err != nil {
				tracer().Errorf("cannot compile selector %q: %v", s, err)
				continue
			}
			rules = append(rules, rule{sel: sel, group: group, breaksPage: breaksPage})
		}
	}
	return rules, nil
}

// groupFromDeclarations maps CSS declarations to a style group. The
// second return value reports a 'break-before: page' declaration, which
// maps to a page break rather than a property.
func groupFromDeclarations(decls []*css.Declaration) (*styles.Group, bool) {
	g := styles.NewGroup()
	breaksPage := false
	for _, d := range decls {
		v := strings.TrimSpace(d.Value)
		switch strings.ToLower(d.Property) {
		case "font-size":
			setDimen(g, styles.TextSize, v)
		case "line-height":
			setDimen(g, styles.ParLeading, v)
		case "text-indent":
			setDimen(g, styles.ParFirstLineIndent, v)
		case "direction":
			switch v {
			case "ltr":
				g.Set(styles.TextDir, frame.LTR)
			case "rtl":
				g.Set(styles.TextDir, frame.RTL)
			}
		case "hyphens":
			g.Set(styles.TextHyphenate, v == "auto")
		case "text-align":
			switch v {
			case "left":
				g.Set(styles.ParAlign, frame.Start)
			case "center":
				g.Set(styles.ParAlign, frame.Center)
			case "right":
				g.Set(styles.ParAlign, frame.End)
			case "justify":
				g.Set(styles.ParJustify, true)
			}
		case "background":
			g.Set(styles.PageFill, v)
		case "margin-top":
			setDimen(g, styles.PageMarginTop, v)
		case "margin-bottom":
			setDimen(g, styles.PageMarginBottom, v)
		case "margin-left":
			setDimen(g, styles.PageMarginLeft, v)
		case "margin-right":
			setDimen(g, styles.PageMarginRight, v)
		case "page-width":
			setDimen(g, styles.PageWidth, v)
		case "page-height":
			setDimen(g, styles.PageHeight, v)
		case "page-numbering":
			g.Set(styles.PageNumbering, strings.Trim(v, `"'`))
		case "break-before":
			breaksPage = v == "page"
		default:
			tracer().Infof("ignoring CSS property %q", d.Property)
		}
	}
	return g, breaksPage
}

func setDimen(g *styles.Group, p styles.Property, v string) {
	d, pcnt, err := dimen.ParseDimen(v)
	if err != nil || pcnt {
		tracer().Errorf("cannot use dimension value %q", v)
		return
	}
	g.Set(p, d)
}

// builder walks the parsed markup tree.
type builder struct {
	rules []rule
}

// chainFor extends the parent chain by the groups of all matching
// stylesheet rules, the element's style attribute, and its lang
// attribute. The second return value reports a page break request.
func (b *builder) chainFor(n *html.Node, parent styles.Chain) (styles.Chain, bool) {
	chain := parent
	breaksPage := false
	for _, r := range b.rules {
		if r.sel.Match(n) {
			chain = chain.Extend(r.group)
			breaksPage = breaksPage || r.breaksPage
		}
	}
	if lang := attrOf(n, "lang"); lang != "" {
		chain = chain.Extend(styles.NewGroup().Set(styles.TextLang, lang))
	}
	if sty := attrOf(n, "style"); sty != "" {
		decls, err := parser.ParseDeclarations(terminated(sty))
		if err != nil {
			tracer().Errorf("cannot parse style attribute %q: %v", sty, err)
		} else {
			g, pb := groupFromDeclarations(decls)
			chain = chain.Extend(g)
			breaksPage = breaksPage || pb
		}
	}
	return chain, breaksPage
}

// terminated appends a semicolon to a declaration list. The CSS parser
// drops the value of a final declaration without one.
func terminated(css string) string {
	if strings.HasSuffix(strings.TrimSpace(css), ";") {
		return css
	}
	return css + ";"
}

// blocks converts the children of a block container. Page breaks are only
// honored at the top level; flows nested in a division cannot span pages.
func (b *builder) blocks(n *html.Node, chain styles.Chain, topLevel bool) []interface{} {
	var out []interface{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if text := collapse(c.Data); strings.TrimSpace(text) != "" {
				out = append(out, flow.Paragraph{
					Children: []inline.Child{{Text: strings.TrimSpace(text), Styles: chain}},
					Styles:   chain,
				})
			}
			continue
		}
		if c.Type != html.ElementNode {
			continue
		}
		cchain, breaksPage := b.chainFor(c, chain)
		if breaksPage {
			if topLevel {
				out = append(out, page.Pagebreak{Styles: chain})
			} else {
				tracer().Infof("ignoring page break on nested element <%s>", c.Data)
			}
		}
		switch c.Data {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			out = append(out, flow.Paragraph{
				Children: b.inlines(c, cchain),
				Styles:   cchain,
			})
		case "div", "section", "article":
			out = append(out, flow.Group{
				Blocks: onlyBlocks(b.blocks(c, cchain, false)),
				Styles: cchain,
			})
		default:
			tracer().Infof("skipping element <%s>", c.Data)
		}
	}
	return out
}

// inlines converts the contents of a paragraph-level element. Styled
// inline elements contribute children with extended chains.
func (b *builder) inlines(n *html.Node, chain styles.Chain) []inline.Child {
	var children []inline.Child
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := collapse(c.Data); text != "" {
				children = append(children, inline.Child{Text: text, Styles: chain})
			}
		case html.ElementNode:
			switch c.Data {
			case "span", "b", "i", "em", "strong", "a":
				cchain, _ := b.chainFor(c, chain)
				children = append(children, b.inlines(c, cchain)...)
			case "br":
				children = append(children, inline.Child{Text: "\n", Styles: chain})
			default:
				tracer().Infof("skipping inline element <%s>", c.Data)
			}
		}
	}
	return children
}

// onlyBlocks drops everything which is not a flow block.
func onlyBlocks(children []interface{}) []flow.Block {
	blocks := make([]flow.Block, 0, len(children))
	for _, c := range children {
		if blk, ok := c.(flow.Block); ok {
			blocks = append(blocks, blk)
		}
	}
	return blocks
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// collapse folds runs of whitespace into single spaces, keeping boundary
// spaces so that text around inline elements stays separated.
func collapse(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if unicode.IsSpace(rune(s[0])) {
		out = " " + out
	}
	if unicode.IsSpace(rune(s[len(s)-1])) {
		out = out + " "
	}
	return out
}
