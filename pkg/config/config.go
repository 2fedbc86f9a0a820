package config

import (
	"context"
	"os"
	"strconv"

	"github.com/warptools/modcreator/modapi"
)

// State is a snapshot of the process environment that modcreator cares about.
// Things like env vars and pwd can change during runtime,
// so they're read once, up front, and handed down explicitly from there.
type State struct {
	Env              map[string]string
	WorkingDirectory string
}

// LoadState reads the current environment.
//
// Errors:
//
//   - modcreator-error-internal -- the working directory cannot be determined
func LoadState() (State, error) {
	state := State{
		Env: make(map[string]string, len(envKeys)),
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			state.Env[key] = v
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return State{}, modapi.ErrorInternal("unable to get working directory", err)
	}
	state.WorkingDirectory = wd
	return state, nil
}

// Enabled reports whether the env var named key was set to a true value,
// as understood by strconv.ParseBool.
// Unset and unparsable values are both false.
func (s State) Enabled(key string) bool {
	v, ok := s.Env[key]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Lookup returns the value of the env var named key, if it was set.
func (s State) Lookup(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}

type ctxKey struct{}

// WithContext returns a new context carrying this state.
func (s State) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromCtx returns the state stored in ctx, if any.
func FromCtx(ctx context.Context) (State, bool) {
	s, ok := ctx.Value(ctxKey{}).(State)
	return s, ok
}
