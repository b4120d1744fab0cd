package page

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pagina/engine/frame"
)

// NumberingFormatter formats a page number according to a pattern.
type NumberingFormatter func(pattern string, number int) string

// ResolveNumbers replaces the page-number markers of finished pages with
// formatted text. A nil format selects FormatNumbering. Marker text is
// left unmeasured; rendering backends shape marginal text on output.
func ResolveNumbers(pages []*Page, format NumberingFormatter) {
	if format == nil {
		format = FormatNumbering
	}
	for _, p := range pages {
		number := p.Number
		p.Frame.MapItems(func(it frame.Item) frame.Item {
			if m, ok := it.(frame.Marker); ok {
				return frame.TextItem{Content: format(m.Pattern, number)}
			}
			return it
		})
	}
}

// FormatNumbering implements the common numbering patterns. The counting
// symbols '1', 'a', 'A', 'i' and 'I' are replaced by the page number in
// the respective representation; all other runes are literal.
func FormatNumbering(pattern string, number int) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '1':
			b.WriteString(strconv.Itoa(number))
		case 'a':
			b.WriteString(alphabetic(number))
		case 'A':
			b.WriteString(strings.ToUpper(alphabetic(number)))
		case 'i':
			b.WriteString(strings.ToLower(roman(number)))
		case 'I':
			b.WriteString(roman(number))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// alphabetic renders n in bijective base 26: a..z, aa..az, ba..
func alphabetic(n int) string {
	if n <= 0 {
		return ""
	}
	var digits []byte
	for n > 0 {
		n--
		digits = append(digits, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// roman renders n as an uppercase roman numeral. Zero and negative
// numbers have no roman representation and yield "N".
func roman(n int) string {
	if n <= 0 {
		return "N"
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}
