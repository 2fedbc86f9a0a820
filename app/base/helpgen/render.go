package helpgen

import (
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 60
)

// render writes markdown to out, as ANSI if the mode calls for it.
// If the ANSI renderer fails for any reason, the markdown is written unrendered.
func render(out io.Writer, markdown []byte, mode RenderMode) {
	if mode == Mode_Auto {
		mode = detectMode(out)
	}
	if mode == Mode_ANSI {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(style()),
			glamour.WithWordWrap(terminalWidth(out)),
		)
		if err == nil {
			if rendered, err := r.Render(string(markdown)); err == nil {
				io.WriteString(out, rendered)
				return
			}
		}
	}
	out.Write(markdown)
}

func fd(w io.Writer) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func detectMode(w io.Writer) RenderMode {
	if fd, ok := fd(w); ok && term.IsTerminal(fd) {
		return Mode_ANSI
	}
	return Mode_Markdown
}

func terminalWidth(w io.Writer) int {
	fd, ok := fd(w)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

// style is glamour's dark style, with less margin and less decoration on headings.
func style() ansi.StyleConfig {
	style := glamour.DarkStyleConfig
	stringPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }
	style.Document.Margin = uintPtr(0)
	style.Paragraph.Margin = uintPtr(4)
	style.Code.Prefix = "`"
	style.Code.Suffix = "`"
	style.CodeBlock.Margin = uintPtr(4)
	style.H2.Prefix = ""
	style.H2.Color = stringPtr("135")
	return style
}
