/*
Package modulegen runs the whole module generation pipeline for one ModuleSpec:
the module directory is created, resources are copied into it, and the descriptor is written last.

Every stage stops the run on its first error, and nothing is rolled back.
In particular, a resource that can't be read means no descriptor is written at all,
though the resources before it will already have been copied.
*/
package modulegen

import (
	"context"
	"path/filepath"

	"github.com/warpfork/go-fsx"
	"github.com/warpfork/go-fsx/osfs"
	"go.opentelemetry.io/otel/attribute"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/dab"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

const LOG_TAG = "[modulegen]"

// Config holds the environment a generation runs in.
type Config struct {
	// BaseDir is where module directories are placed, and what relative resource paths are resolved against.
	// Usually the working directory.  Empty means the working directory.
	BaseDir string
	// Source is the filesystem resources are read from, rooted at "/".
	// Nil means the host filesystem.
	Source fsx.FS
}

func (cfg Config) source() fsx.FS {
	if cfg.Source == nil {
		return osfs.DirFS("/")
	}
	return cfg.Source
}

// Generate materializes spec under cfg.BaseDir.
//
// spec is modified in place: once Generate returns, each resource that was copied has
// its path rewritten to the basename it was stored under.
// The returned GenerateResult reports paths relative to cfg.BaseDir.
//
// Errors:
//
//   - modcreator-error-directory-creation -- when spec has no name, or its directory can't be created
//   - modcreator-error-resource-not-found -- when a resource can't be opened, or isn't a regular file
//   - modcreator-error-copy-failed -- when copying a resource fails
//   - modcreator-error-serialization -- when the descriptor can't be written
func Generate(ctx context.Context, cfg Config, spec *modapi.ModuleSpec) (_ modapi.GenerateResult, err error) {
	ctx, span := tracing.StartFn(ctx, "generate")
	span.SetAttributes(
		attribute.String(tracing.AttrKeyModcreatorModuleName, string(spec.Name)),
		attribute.String(tracing.AttrKeyModcreatorModuleSlot, string(spec.SlotOrDefault())),
		attribute.Int(tracing.AttrKeyModcreatorResourceCount, len(spec.Resources)),
		attribute.Int(tracing.AttrKeyModcreatorDependencyCount, len(spec.Dependencies)),
	)
	defer func() { tracing.EndWithStatus(span, err) }()

	log := logging.Ctx(ctx)

	relDir, err := dab.ModuleDir(*spec)
	if err != nil {
		return modapi.GenerateResult{}, err
	}
	dir := filepath.Join(cfg.BaseDir, relDir)
	log.Debug(LOG_TAG, "generating module %s in %q", spec, dir)

	if err := dab.MaterializeModuleDir(ctx, dir); err != nil {
		return modapi.GenerateResult{}, err
	}
	if err := dab.CopyResources(ctx, cfg.source(), cfg.BaseDir, dir, spec); err != nil {
		return modapi.GenerateResult{}, err
	}
	if _, err := dab.WriteDescriptor(ctx, dir, *spec); err != nil {
		return modapi.GenerateResult{}, err
	}

	return modapi.GenerateResult{
		Directory:  relDir,
		Descriptor: filepath.Join(relDir, modapi.DescriptorFilename),
		Module:     *spec,
	}, nil
}
