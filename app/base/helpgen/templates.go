package helpgen

import (
	"github.com/MakeNowJust/heredoc"
)

// helper for heredoc dedenting plus don't do a trailing linebreak.
func docnl(s string) string {
	s = heredoc.Doc(s)
	return s[:len(s)-1]
}

// UsageText is the synopsis.  It's indented as a code block by the help template.
var UsageText = docnl(`
	modcreator --name NAME[:SLOT] [--jars JAR[:JAR...]] [--deps DEP[:SLOT][,DEP[:SLOT]...]]
	modcreator -h | --help
`)

// Description is the prose part of the help.
var Description = docnl(`
	Creates the directory for module NAME, copies each JAR into it,
	and writes a module.xml descriptor there that lists the copied resources
	and the dependencies.

	Each dot in NAME becomes a directory level, and SLOT is the last level.
	When no SLOT is given, the directory uses "main", but the descriptor has no slot attribute.
	Existing files are overwritten, so running again with the same arguments
	regenerates the same module.

	Arguments other than the flags above are ignored.

	Example:

	    modcreator --name com.redhat.gss:main --jars resource1.jar:resource2.jar --deps javax.api,org.apache.cxf
`)

// AppHelpTemplate is used for the root command, which is the only command.
var AppHelpTemplate = heredoc.Doc(`
	## NAME
	{{.Name}} - {{.Usage}}

	## USAGE
	{{indent 4 .UsageText}}

	## DESCRIPTION
	{{.Description}}

	## ENVIRONMENT
	- ` + "`MODCREATOR_DEBUG`" + ` -- print debug output to stderr
	- ` + "`MODCREATOR_QUIET`" + ` -- don't print a summary after creating a module
	- ` + "`MODCREATOR_JSON`" + ` -- print the result as JSON on stdout, and errors as JSON on stderr
	- ` + "`MODCREATOR_TRACE_FILE`" + ` -- write trace spans to the named file
	- ` + "`MODCREATOR_TRACE_HTTP_ENABLE`" + ` -- send trace spans to an OTLP collector over HTTP
	- ` + "`MODCREATOR_TRACE_HTTP_INSECURE`" + ` -- talk to the collector without TLS
	- ` + "`MODCREATOR_TRACE_HTTP_ENDPOINT`" + ` -- host and port of the collector
`)
