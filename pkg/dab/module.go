package dab

import (
	"context"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

const LOG_TAG = "[dab]"

// ModuleDir returns the directory a module lives in, relative to wherever modules are being placed.
// Each dot-separated segment of the module name becomes a directory,
// and the slot (or modapi.DefaultSlot) is the last one.
//
// Errors:
//
//   - modcreator-error-directory-creation -- when the spec has no name
func ModuleDir(spec modapi.ModuleSpec) (string, error) {
	if spec.Name == "" {
		return "", modapi.ErrorModuleNameMissing()
	}
	segments := append(spec.Name.Segments(), string(spec.SlotOrDefault()))
	return filepath.Join(segments...), nil
}

// MaterializeModuleDir creates dir and any missing parents.
// A directory that already exists is fine.
//
// Errors:
//
//   - modcreator-error-directory-creation -- when the directory cannot be created
func MaterializeModuleDir(ctx context.Context, dir string) (err error) {
	ctx, span := tracing.StartFn(ctx, "mkdir")
	span.SetAttributes(attribute.String(tracing.AttrKeyModcreatorModuleDir, dir))
	defer func() { tracing.EndWithStatus(span, err) }()

	logging.Ctx(ctx).Debug(LOG_TAG, "creating module directory %q", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return modapi.ErrorDirectoryCreation(dir, err)
	}
	return nil
}
