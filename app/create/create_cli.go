package createcli

import (
	"github.com/urfave/cli/v2"

	appbase "github.com/warptools/modcreator/app/base"
	"github.com/warptools/modcreator/app/base/util"
	"github.com/warptools/modcreator/pkg/config"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/modargs"
	"github.com/warptools/modcreator/pkg/modulegen"
)

const LOG_TAG = "[create]"

func init() {
	appbase.App.Action = util.ChainCmdMiddleware(cmdCreate,
		cmdMiddlewareHelp,
		util.CmdMiddlewareConfig,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	)
}

// cmdMiddlewareHelp shows usage instead of running the rest of the chain when the arguments ask for it.
// It goes first so that asking for help never sets anything up, trace files included.
func cmdMiddlewareHelp(f cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		if modargs.WantsHelp(c.Args().Slice()) {
			return cli.ShowAppHelp(c)
		}
		return f(c)
	}
}

// cmdCreate decodes the arguments and generates the module they describe.
//
// Errors:
//
//   - modcreator-error-usage -- when the arguments can't be decoded
//   - modcreator-error-directory-creation -- when no name was given, or the module directory can't be created
//   - modcreator-error-resource-not-found -- when a resource can't be opened, or isn't a regular file
//   - modcreator-error-copy-failed -- when copying a resource fails
//   - modcreator-error-serialization -- when the descriptor can't be written
//   - modcreator-error-internal -- when the working directory can't be determined
func cmdCreate(c *cli.Context) error {
	logger := logging.Ctx(c.Context)
	decoded, err := modargs.Parse(c.Args().Slice())
	if err != nil {
		return err
	}
	for _, arg := range decoded.Ignored {
		logger.Debug(LOG_TAG, "ignoring unrecognized argument %q", arg)
	}

	state, ok := config.FromCtx(c.Context)
	if !ok {
		if state, err = config.LoadState(); err != nil {
			return err
		}
	}
	cfg := modulegen.Config{
		BaseDir: state.WorkingDirectory,
	}
	result, err := modulegen.Generate(c.Context, cfg, &decoded.Spec)
	if err != nil {
		return err
	}

	logger.Info("", "created module %s at %s", result.Module, result.Directory)
	if logger.Json() {
		c.App.Metadata["result"] = result.Node()
	}
	return nil
}
