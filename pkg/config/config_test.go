package config

import (
	"context"
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLoadState(t *testing.T) {
	t.Setenv(EnvModcreatorDebug, "true")
	t.Setenv(EnvModcreatorTraceFile, "trace.json")
	t.Setenv("MODCREATOR_NOT_A_KEY", "1")

	state, err := LoadState()
	qt.Assert(t, err, qt.IsNil)

	wd, err := os.Getwd()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, state.WorkingDirectory, qt.Equals, wd)

	qt.Assert(t, state.Enabled(EnvModcreatorDebug), qt.IsTrue)
	v, ok := state.Lookup(EnvModcreatorTraceFile)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, v, qt.Equals, "trace.json")
	_, ok = state.Lookup("MODCREATOR_NOT_A_KEY")
	qt.Assert(t, ok, qt.IsFalse)
}

func TestEnabled(t *testing.T) {
	for _, tt := range []struct {
		value  string
		set    bool
		expect bool
	}{
		{"", false, false},
		{"1", true, true},
		{"true", true, true},
		{"TRUE", true, true},
		{"0", true, false},
		{"yes", true, false},
		{"", true, false},
	} {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			state := State{Env: map[string]string{}}
			if tt.set {
				state.Env[EnvModcreatorQuiet] = tt.value
			}
			qt.Assert(t, state.Enabled(EnvModcreatorQuiet), qt.Equals, tt.expect)
		})
	}
}

func TestStateContext(t *testing.T) {
	_, ok := FromCtx(context.Background())
	qt.Assert(t, ok, qt.IsFalse)

	state := State{WorkingDirectory: "/somewhere", Env: map[string]string{EnvModcreatorJson: "1"}}
	got, ok := FromCtx(state.WithContext(context.Background()))
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, got, qt.DeepEquals, state)
}
