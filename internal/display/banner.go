package display

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

const bannerArt = `
 ┏━┓┏━╸┏━╸╻┏━┓┏━╸┏┓ ┏━┓╻ ╻
 ┣┳┛┣╸ ┃  ┃┣━┛┣╸ ┣┻┓┃ ┃┏╋┛
 ╹┗╸┗━╸┗━╸╹╹  ┗━╸┗━┛┗━┛╹ ╹`

// RenderBanner returns the banner art horizontally centred for the
// current terminal width.
func RenderBanner() string {
	width := TermWidth()

	lines := strings.Split(strings.Trim(bannerArt, "\n"), "\n")

	// Find the widest line.
	maxW := 0
	for _, l := range lines {
		if w := len([]rune(l)); w > maxW {
			maxW = w
		}
	}

	var b strings.Builder
	for _, l := range lines {
		if width > maxW {
			b.WriteString(strings.Repeat(" ", (width-maxW)/2))
		}
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the current terminal column count, or 80 as fallback.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
