package modapp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/json"

	modapp "github.com/warptools/modcreator/app"
	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/config"
)

// run runs the app in dir, and returns what it printed.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	pwd, err := os.Getwd()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, os.Chdir(dir), qt.IsNil)
	defer os.Chdir(pwd)

	color.NoColor = true
	var stdout, stderr bytes.Buffer
	modapp.App.Writer = &stdout
	modapp.App.ErrWriter = &stderr
	err = modapp.App.Run(append([]string{"modcreator"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestJsonResult(t *testing.T) {
	t.Setenv(config.EnvModcreatorJson, "true")
	dir := t.TempDir()
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "a.jar"), []byte("a"), 0644), qt.IsNil)

	stdout, stderr, err := run(t, dir, "--name", "com.example:v1", "--jars", "a.jar", "--deps", "foo:1,bar")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, stderr, qt.Equals, "")

	var result modapi.GenerateResult
	_, err = ipld.Unmarshal([]byte(stdout), json.Decode, &result, modapi.TypeSystem.TypeByName("GenerateResult"))
	qt.Assert(t, err, qt.IsNil)

	v1, one := modapi.SlotName("v1"), modapi.SlotName("1")
	qt.Assert(t, result, qt.DeepEquals, modapi.GenerateResult{
		Directory:  filepath.Join("com", "example", "v1"),
		Descriptor: filepath.Join("com", "example", "v1", "module.xml"),
		Module: modapi.ModuleSpec{
			Name:      "com.example",
			Slot:      &v1,
			Resources: []modapi.ResourceRef{{Path: "a.jar"}},
			Dependencies: []modapi.DependencyRef{
				{Name: "foo", Slot: &one},
				{Name: "bar"},
			},
		},
	})

	t.Run("result is not repeated by the next run", func(t *testing.T) {
		t.Setenv(config.EnvModcreatorJson, "false")
		stdout, _, err := run(t, dir, "--name", "again")
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, stdout, qt.Equals, "")
	})
}

func TestJsonError(t *testing.T) {
	t.Setenv(config.EnvModcreatorJson, "true")
	stdout, stderr, err := run(t, t.TempDir(), "--name", "x:y:z")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Assert(t, stdout, qt.Equals, "")
	qt.Assert(t, strings.HasPrefix(stderr, "{"), qt.IsTrue, qt.Commentf("stderr: %s", stderr))
	qt.Assert(t, stderr, qt.Contains, modapi.CodeUsage)
}

func TestErrorMessages(t *testing.T) {
	for _, tt := range []struct {
		name   string
		args   []string
		expect []string
	}{
		{"missing value", []string{"--jars"}, []string{`"--jars"`}},
		{"value is a flag", []string{"--name", "--deps"}, []string{`"--name"`, `"--deps"`}},
		{"too many colons", []string{"--deps", "a:b:c"}, []string{`"a:b:c"`}},
		{"no name", []string{"--deps", "a"}, []string{"no module name"}},
		{"missing resource", []string{"--name", "x", "--jars", "nope.jar"}, []string{`"nope.jar"`}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, t.TempDir(), tt.args...)
			qt.Assert(t, err, qt.IsNotNil)
			qt.Assert(t, strings.HasPrefix(stderr, "error: "), qt.IsTrue, qt.Commentf("stderr: %s", stderr))
			for _, e := range tt.expect {
				qt.Assert(t, stderr, qt.Contains, e)
			}
		})
	}
}

func TestHelpSetsNothingUp(t *testing.T) {
	t.Setenv(config.EnvModcreatorTraceFile, "trace.out")
	dir := t.TempDir()

	stdout, stderr, err := run(t, dir)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, stderr, qt.Equals, "")
	qt.Assert(t, stdout, qt.Contains, "modcreator")

	entries, err := os.ReadDir(dir)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, entries, qt.HasLen, 0)
}

func TestTraceFile(t *testing.T) {
	t.Setenv(config.EnvModcreatorTraceFile, "trace.out")
	dir := t.TempDir()
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "a.jar"), []byte("a"), 0644), qt.IsNil)

	_, _, err := run(t, dir, "--name", "x", "--jars", "a.jar")
	qt.Assert(t, err, qt.IsNil)

	_, err = os.Stat(filepath.Join(dir, "x", "main", "module.xml"))
	qt.Assert(t, err, qt.IsNil)
	trace, err := os.ReadFile(filepath.Join(dir, "trace.out"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, string(trace), qt.Contains, `"Name": "modcreator"`)
	qt.Assert(t, string(trace), qt.Contains, `"Value": "github.com/warptools/modcreator"`)
}
