package appbase

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ipld/go-ipld-prime"
	ipldjson "github.com/ipld/go-ipld-prime/codec/json"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/urfave/cli/v2"

	"github.com/warptools/modcreator/app/base/helpgen"
	"github.com/warptools/modcreator/pkg/logging"
)

const VERSION = "v1.0.0"

// App is the modcreator command.
//
// Flag parsing is left to package modargs, which has its own (permissive) rules,
// so urfave/cli only hands over the raw arguments.
// Ambient switches such as debug output or JSON mode come from the environment instead; see package config.
var App = &cli.App{
	Name:        "modcreator",
	Version:     VERSION,
	Usage:       "create a module directory and its module.xml descriptor",
	UsageText:   helpgen.UsageText,
	Description: helpgen.Description,

	Reader:    closedReader{}, // Replace with os.Stdin in real application; or other wiring, in tests.
	Writer:    panicWriter{},  // Replace with os.Stdout in real application; or other wiring, in tests.
	ErrWriter: panicWriter{},  // Replace with os.Stderr in real application; or other wiring, in tests.

	SkipFlagParsing: true,
	HideHelp:        true,
	HideVersion:     true,

	CustomAppHelpTemplate: helpgen.AppHelpTemplate,

	// The Action is set by the package that implements it.
	// Import the parent of this package to get that all done for you!

	ExitErrHandler: exitErrHandler,
	After:          afterFunc,
}

// Called after the action returns a non-nil error value.
// Prints the formatted error to stderr.
func exitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if logging.Ctx(c.Context).Json() {
		bytes, err := json.Marshal(err)
		if err != nil {
			panic("error marshaling json")
		}
		fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
	} else {
		fmt.Fprintf(c.App.ErrWriter, "error: %s\n", err)
	}
}

// Called after the action completes. The action may optionally set
// c.App.Metadata["result"] to a datamodel.Node value before returning to
// have the result output to stdout.
// The result is removed once printed, since App is reused between runs in tests.
func afterFunc(c *cli.Context) error {
	if c.App.Metadata["result"] == nil {
		return nil
	}
	n, ok := c.App.Metadata["result"].(datamodel.Node)
	if !ok {
		panic("invalid result value - not a datamodel.Node")
	}
	delete(c.App.Metadata, "result")

	serial, err := ipld.Encode(n, ipldjson.Encode)
	if err != nil {
		panic("failed to serialize output")
	}
	fmt.Fprintf(c.App.Writer, "%s\n", serial)
	return nil
}

type closedReader struct{}

// Read is a dummy method that always returns EOF.
func (c closedReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

type panicWriter struct{}

// Write is a dummy method that always panics.  You're supposed to replace panicWriter values before use.
func (p panicWriter) Write(data []byte) (int, error) {
	panic("replace the Writer and ErrWriter on the App value in packages that use it!")
}
