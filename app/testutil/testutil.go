package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/warpfork/go-testmark"
	"github.com/warpfork/go-testmark/testexec"

	modapp "github.com/warptools/modcreator/app"
)

// TestFileContainingTestmarkexec runs every testexec directory found in fileName.
// If workDir is given, the process changes to that directory first.
func TestFileContainingTestmarkexec(t *testing.T, fileName string, workDir *string) {
	t.Logf("loading test file: %q", fileName)
	doc, err := testmark.ReadFile(fileName)
	if err != nil {
		t.Fatalf("spec file parse failed?!: %s", err)
	}

	if workDir != nil {
		pwd, err := os.Getwd()
		qt.Assert(t, err, qt.IsNil)
		defer os.Chdir(pwd)
		err = os.Chdir(*workDir)
		qt.Assert(t, err, qt.IsNil)
	}

	doc.BuildDirIndex()
	patches := testmark.PatchAccumulator{}
	defer func() {
		if *testmark.Regen {
			patches.WriteFileWithPatches(doc, fileName)
		}
	}()
	for _, dir := range doc.DirEnt.ChildrenList {
		dir := dir
		t.Run(dir.Name, func(t *testing.T) {
			test := testexec.Tester{
				ExecFn:   buildExecFn(t),
				Patches:  &patches,
				AssertFn: assertFn,
			}
			test.TestSequence(t, dir)
		})
	}
}

// cleanOutput trims surrounding whitespace, so fixtures don't need to be exact about trailing newlines.
func cleanOutput(str string) string {
	return strings.TrimSpace(str)
}

// Warning!  Impure function!  Cannot safely be used in parallel!
// This mutates the CLI app object to wire the IO streams,
// and sets environment variables on this process for the duration of each command.
//
// A few commands are emulated rather than run, since there's no shell:
//
//   - `cd DIR` changes directory.
//   - `cat FILE...` prints files.
//   - `ls DIR` prints the files under DIR, recursively, one relative path per line.
//
// Leading `KEY=VALUE` arguments are set as environment variables, as a shell would.
func buildExecFn(t *testing.T) func([]string, io.Reader, io.Writer, io.Writer) (int, error) {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
		bufout, buferr := &bytes.Buffer{}, &bytes.Buffer{}
		var testout io.Writer = bufout
		if stdout != nil {
			testout = io.MultiWriter(stdout, bufout)
		}
		var testerr io.Writer = buferr
		if stderr != nil {
			testerr = io.MultiWriter(stderr, buferr)
		}

		for len(args) > 0 && strings.Contains(args[0], "=") && !strings.HasPrefix(args[0], "-") {
			kv := strings.SplitN(args[0], "=", 2)
			restore := setenv(kv[0], kv[1])
			defer restore()
			args = args[1:]
		}
		if len(args) == 0 {
			return 0, nil
		}

		switch args[0] {
		case "cd":
			if err := os.Chdir(args[1]); err != nil {
				return 1, err
			}
			return 0, nil
		case "cat":
			return cat(args[1:], testout, testerr), nil
		case "ls":
			return ls(args[1:], testout, testerr), nil
		}

		wd, err := os.Getwd()
		if err != nil {
			panic("failed to find working directory")
		}
		t.Log("╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱")
		t.Logf("Working Directory: %q", wd)

		color.NoColor = true
		modapp.App.Reader = stdin
		modapp.App.Writer = testout
		modapp.App.ErrWriter = testerr
		err = modapp.App.Run(args)

		exitCode := 0
		if err != nil {
			exitCode = 1
		}

		t.Logf("Args: %v", args)
		for err != nil {
			t.Logf("Code: %s", serum.Code(err))
			t.Logf("Message: %s", serum.Message(err))
			t.Logf("Details: %v", serum.Details(err))
			err = errors.Unwrap(err)
			if err != nil {
				t.Logf("caused by:")
			}
		}
		t.Logf("==============")
		t.Logf("⌄⌄⌄ stdout ⌄⌄⌄\n%s", bufout.String())
		t.Logf("⌃⌃⌃ stdout ⌃⌃⌃")
		t.Logf("==============")
		t.Logf("⌄⌄⌄ stderr ⌄⌄⌄\n%s", buferr.String())
		t.Logf("⌃⌃⌃ stderr ⌃⌃⌃")
		t.Logf("==============")
		return exitCode, nil
	}
}

// setenv sets an environment variable and returns a func that puts it back how it was.
func setenv(key, value string) func() {
	prev, existed := os.LookupEnv(key)
	os.Setenv(key, value)
	return func() {
		if existed {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	}
}

func cat(files []string, stdout, stderr io.Writer) int {
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "cat: %s\n", err)
			return 1
		}
		stdout.Write(b)
	}
	return 0
}

func ls(dirs []string, stdout, stderr io.Writer) int {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		var found []string
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			if rel == "." {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if info.IsDir() {
				rel += "/"
			}
			found = append(found, rel)
			return nil
		})
		if err != nil {
			fmt.Fprintf(stderr, "ls: %s\n", err)
			return 1
		}
		sort.Strings(found)
		for _, f := range found {
			fmt.Fprintln(stdout, f)
		}
	}
	return 0
}

func assertFn(t *testing.T, actual, expect string) {
	actual = cleanOutput(actual)
	expect = cleanOutput(expect)
	qt.Assert(t, actual, qt.Equals, expect)
}
