package dab

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/warpfork/go-fsx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

// CopyResources copies every resource of spec into dir, in order,
// and rewrites each resource's path to its basename as soon as it has been copied.
// Relative resource paths are resolved against basisPath.
// Existing files in dir are overwritten.
//
// The first failure stops the whole operation:
// resources before it have been copied (and rewritten), and the rest are untouched.
//
// Errors:
//
//   - modcreator-error-resource-not-found -- when a resource cannot be opened, or isn't a regular file
//   - modcreator-error-copy-failed -- when reading the resource or writing its copy fails
func CopyResources(ctx context.Context, fsys fsx.FS, basisPath string, dir string, spec *modapi.ModuleSpec) (err error) {
	ctx, span := tracing.StartFn(ctx, "copy")
	span.SetAttributes(
		attribute.String(tracing.AttrKeyModcreatorModuleDir, dir),
		attribute.Int(tracing.AttrKeyModcreatorResourceCount, len(spec.Resources)),
	)
	defer func() { tracing.EndWithStatus(span, err) }()

	for i := range spec.Resources {
		res := &spec.Resources[i]
		base, err := CopyResource(ctx, fsys, basisPath, dir, res.Path)
		if err != nil {
			return err
		}
		res.Path = base
	}
	return nil
}

// CopyResource copies the single file at path into dir, and returns the basename it was stored under.
//
// Errors:
//
//   - modcreator-error-resource-not-found -- when path cannot be opened, or isn't a regular file
//   - modcreator-error-copy-failed -- when reading the resource or writing its copy fails
func CopyResource(ctx context.Context, fsys fsx.FS, basisPath string, dir string, path string) (_ string, err error) {
	ctx, span := tracing.Start(ctx, "copy resource")
	span.SetAttributes(attribute.String(tracing.AttrKeyModcreatorResourcePath, path))
	defer func() { tracing.EndWithStatus(span, err) }()

	src := path
	if !filepath.IsAbs(src) {
		src = filepath.Join(basisPath, src)
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return "", modapi.ErrorResourceNotFound(path, err)
	}
	name := fsPath(src)
	if isFile, _ := fsx.IsPathFile(fsys, name); !isFile {
		if _, err := fs.Stat(fsys, name); err != nil {
			return "", modapi.ErrorResourceNotFound(path, err)
		}
		return "", modapi.ErrorResourceNotAFile(path)
	}

	base := filepath.Base(src)
	dest := filepath.Join(dir, base)
	if sameFile(src, dest) {
		logging.Ctx(ctx).Debug(LOG_TAG, "resource %q is already in place", path)
		return base, nil
	}
	logging.Ctx(ctx).Debug(LOG_TAG, "copying %q to %q", path, dest)
	if err := copyFile(fsys, name, path, dest); err != nil {
		return "", err
	}
	return base, nil
}

// fsPath trims an absolute path so it can be opened from an fsx.FS rooted at "/".
func fsPath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "."
	}
	return path
}

// sameFile reports whether src and dest are the same file on the host filesystem.
// Copying a file onto itself would truncate it, so that case is skipped.
func sameFile(src, dest string) bool {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, destInfo)
}

// copyFile streams name (from fsys) into dest, truncating dest if it already exists.
// original is only used for error reporting.
func copyFile(fsys fsx.FS, name string, original string, dest string) (err error) {
	in, err := fsys.Open(name)
	if err != nil {
		return modapi.ErrorResourceNotFound(original, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return modapi.ErrorCopyFailed(original, dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = modapi.ErrorCopyFailed(original, dest, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return modapi.ErrorCopyFailed(original, dest, err)
	}
	return nil
}
