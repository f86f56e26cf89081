package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/fontnamer/internal/names"
	"github.com/backmassage/fontnamer/internal/term"
)

// KeyValueTable renders rows of (label, value) pairs with aligned labels.
func KeyValueTable(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, r[0], r[1])
	}
	return sb.String()
}

// FormatParsedName renders one parsed filename as an aligned block. The
// family line is highlighted when colors are enabled.
func FormatParsedName(p names.ParsedName) string {
	family := p.Family
	if term.Bold != "" {
		family = term.Bold + family + term.NC
	}
	return KeyValueTable([][2]string{
		{"Input", p.Original},
		{"Base", p.Base},
		{"Family", family},
		{"Subfamily", valueOrDash(p.Subfamily)},
	})
}

// FormatCount returns "<n> <noun>" with a plural "s" when n != 1.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
