package util

import (
	"github.com/urfave/cli/v2"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/config"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

// ChainCmdMiddleware returns a cli ActionFunc that is wrapped by the given middleware.
// Middleware is executed in order. E.G. `middleware[0](middleware[1](cmd))`
func ChainCmdMiddleware(cmd cli.ActionFunc, middlewares ...func(cli.ActionFunc) cli.ActionFunc) cli.ActionFunc {
	if len(middlewares) < 1 {
		return cmd
	}
	wrapped := cmd
	// loop in reverse to preserve middleware order
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}

	return wrapped
}

// CmdMiddlewareConfig loads the config.State and places it in the command's context.
//
// Errors:
//
//   - modcreator-error-internal -- when the environment can't be read
func CmdMiddlewareConfig(f cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		state, err := config.LoadState()
		if err != nil {
			return err
		}
		c.Context = state.WithContext(c.Context)
		return f(c)
	}
}

// CmdMiddlewareLogging configures the logging system before executing the CLI command.
// It expects CmdMiddlewareConfig to have run already.
func CmdMiddlewareLogging(f cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		state, _ := config.FromCtx(c.Context)
		logger := logging.NewLogger(c.App.Writer, c.App.ErrWriter,
			state.Enabled(config.EnvModcreatorJson),
			state.Enabled(config.EnvModcreatorQuiet),
			state.Enabled(config.EnvModcreatorDebug),
		)
		c.Context = logger.WithContext(c.Context)
		return f(c)
	}
}

// CmdMiddlewareTracingSpan starts a span with the command name that ends when
// the middleware exits after returning from the command or next middleware
func CmdMiddlewareTracingSpan(f cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx, span := tracing.Start(c.Context, c.App.Name)
		defer span.End()
		c.Context = ctx
		err := f(c)
		if err != nil {
			setSpanError(ctx, err)
		}
		return err
	}
}

// CmdMiddlewareTracingConfig configures the tracing system before executing the CLI command.
// It expects CmdMiddlewareConfig and CmdMiddlewareLogging to have run already.
//
// Errors:
//
//   - modcreator-error-internal -- when an exporter can't be set up
func CmdMiddlewareTracingConfig(f cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		state, _ := config.FromCtx(c.Context)
		tracerProvider, err := newTracingProvider(c.Context, state, c.App.Version)
		if err != nil {
			return modapi.ErrorInternal("could not initialize tracing", err)
		}
		if tracerProvider == nil {
			c.Context = tracing.SetTracer(c.Context, nil)
			return f(c)
		}
		ctx := c.Context
		defer func() {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				logger := logging.Ctx(ctx)
				logger.Debug("", "tracing shutdown error: %s", err.Error())
			}
		}()

		tr := tracerProvider.Tracer(Module)
		c.Context = tracing.SetTracer(ctx, tr)
		return f(c)
	}
}
