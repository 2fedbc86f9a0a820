package dab

import (
	"context"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/descriptor"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

// WriteDescriptor renders spec and writes it to modapi.DescriptorFilename inside dir,
// replacing any descriptor already there.
// It returns the path of the written file.
//
// Resource paths are written as they are in spec,
// so CopyResources should have been called on spec first.
//
// Errors:
//
//   - modcreator-error-serialization -- when the descriptor cannot be rendered or written
func WriteDescriptor(ctx context.Context, dir string, spec modapi.ModuleSpec) (_ string, err error) {
	ctx, span := tracing.StartFn(ctx, "descriptor")
	defer func() { tracing.EndWithStatus(span, err) }()

	path := filepath.Join(dir, modapi.DescriptorFilename)
	span.SetAttributes(attribute.String(tracing.AttrKeyModcreatorModuleDir, dir))

	data, err := descriptor.Marshal(spec)
	if err != nil {
		return "", err
	}
	logging.Ctx(ctx).Debug(LOG_TAG, "writing descriptor %q", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", modapi.ErrorSerialization("writing module descriptor", path, err)
	}
	return path, nil
}
