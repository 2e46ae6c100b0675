package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner centres the banner art in width columns. A width of zero
// or less uses the current terminal width.
func RenderBanner(width int) string {
	if width <= 0 {
		width = TermWidth()
	}

	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")
	artW := 0
	for _, l := range lines {
		artW = max(artW, len(l))
	}
	pad := ""
	if width > artW {
		pad = strings.Repeat(" ", (width-artW)/2)
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(pad)
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the stdout column count, or 80 when stdout is not a
// terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}

// Interactive reports whether both stdin and stdout are terminals, which
// the full-screen UI needs.
func Interactive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}
