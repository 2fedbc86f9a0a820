package modapp_test

import (
	"testing"

	"github.com/warptools/modcreator/app/testutil"
)

/*
	These are whole-system tests: each one runs the app as the command line would,
	against the fixtures in the examples dir.
*/

func TestExampleDirCLI(t *testing.T) {
	testutil.TestFileContainingTestmarkexec(t, "../examples/500-cli/cli.md", nil)
}

func TestExampleDirCLIHelp(t *testing.T) {
	testutil.TestFileContainingTestmarkexec(t, "../examples/500-cli/help.md", nil)
}

func TestExampleDirCLIErrors(t *testing.T) {
	testutil.TestFileContainingTestmarkexec(t, "../examples/500-cli/errors.md", nil)
}
