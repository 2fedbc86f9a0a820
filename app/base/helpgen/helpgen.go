/*
This package contains our custom help text generator,
and wires it into `urfave/cli` at package init time.

We use templates which emit markdown.
When the help is going to a terminal, the markdown is rendered with ANSI codes;
otherwise it's emitted as-is, which also makes it suitable for docs.

(The use of package init time is unfortunate,
but package sideeffects cannot be avoided:
package-scope vars are the only option for customizing help processing
that the `urfave/cli` package currently makes available.)
*/
package helpgen

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/urfave/cli/v2"
)

type RenderMode uint8

const (
	Mode_Auto     RenderMode = iota // Mode_ANSI if the writer is a terminal; Mode_Markdown otherwise.
	Mode_Markdown                   // Plain, honorable, and indentation-free markdown.
	Mode_ANSI                       // Rendered for a terminal, with colors, and wrapped to the terminal's width.
)

// Mode controls how help is rendered.  Tests may want to pin it.
var Mode = Mode_Auto

// printHelpCustom is the entrypoint for `urfave/cli`'s customization.
//
// See the function of the same name upstream for reference.
func printHelpCustom(out io.Writer, tmpl string, data interface{}, customFuncs map[string]interface{}) {
	funcMap := template.FuncMap{
		"join":   strings.Join,
		"trim":   strings.TrimSpace,
		"indent": indent,
	}
	for key, value := range customFuncs {
		funcMap[key] = value
	}

	var buf bytes.Buffer
	t := template.Must(template.New("help").Funcs(funcMap).Parse(tmpl))
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}
	render(out, buf.Bytes(), Mode)
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

func init() {
	cli.HelpPrinterCustom = printHelpCustom
	cli.HelpPrinter = func(out io.Writer, tmpl string, data interface{}) {
		printHelpCustom(out, tmpl, data, nil)
	}
}
