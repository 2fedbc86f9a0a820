package modapi

import (
	"github.com/serum-errors/go-serum"
)

const (
	CodeUsage             = "modcreator-error-usage"
	CodeDirectoryCreation = "modcreator-error-directory-creation"
	CodeResourceNotFound  = "modcreator-error-resource-not-found"
	CodeCopyFailed        = "modcreator-error-copy-failed"
	CodeSerialization     = "modcreator-error-serialization"
	CodeInternal          = "modcreator-error-internal"
	CodeUnknown           = "modcreator-error-unknown"
)

// ErrorUnknown is returned when an unknown error occurs
//
// Errors:
//
//   - modcreator-error-unknown --
func ErrorUnknown(msgTmpl string, cause error) error {
	return serum.Errorf(CodeUnknown, "%s: %w", msgTmpl, cause)
}

// ErrorInternal is for miscellaneous errors that should be handled internally.
// In most cases, prefer to use more specific errors.
//
// Errors:
//
//   - modcreator-error-internal --
func ErrorInternal(msgTmpl string, cause error) error {
	return serum.Errorf(CodeInternal, "%s: %w", msgTmpl, cause)
}

// ErrorMissingFlagValue is returned when a flag is the last argument
// and so has no value token following it.
//
// Errors:
//
//   - modcreator-error-usage --
func ErrorMissingFlagValue(flag string) error {
	return serum.Error(CodeUsage,
		serum.WithMessageTemplate("expected argument after {{flag|q}}"),
		serum.WithDetail("flag", flag),
	)
}

// ErrorFlagValueIsFlag is returned when the token following a flag
// looks like another flag instead of a value.
//
// Errors:
//
//   - modcreator-error-usage --
func ErrorFlagValueIsFlag(flag string, token string) error {
	return serum.Error(CodeUsage,
		serum.WithMessageTemplate("expected value argument after {{flag|q}}, got {{token|q}}"),
		serum.WithDetail("flag", flag),
		serum.WithDetail("token", token),
	)
}

// ErrorModuleNameInvalid is returned when a `name[:slot]` module token
// has more than one colon.
//
// Errors:
//
//   - modcreator-error-usage --
func ErrorModuleNameInvalid(flag string, token string) error {
	return serum.Error(CodeUsage,
		serum.WithMessageTemplate("invalid module name {{token|q}} given to {{flag|q}}: expected NAME or NAME:SLOT"),
		serum.WithDetail("flag", flag),
		serum.WithDetail("token", token),
	)
}

// ErrorModuleNameMissing is returned when a module directory is requested
// for a module that was never given a name.
//
// Errors:
//
//   - modcreator-error-directory-creation --
func ErrorModuleNameMissing() error {
	return serum.Error(CodeDirectoryCreation,
		serum.WithMessageLiteral("cannot create module directory: no module name given (use --name NAME[:SLOT])"),
	)
}

// ErrorDirectoryCreation is returned when the module directory cannot be created
//
// Errors:
//
//   - modcreator-error-directory-creation --
func ErrorDirectoryCreation(path string, cause error) error {
	result := serum.Errorf(CodeDirectoryCreation,
		"failed to create module dir %q: %w", path, cause)
	addDetails(result, [][2]string{
		{"path", path},
	})
	return result
}

// ErrorResourceNotFound is returned when a resource file cannot be opened for reading
//
// Errors:
//
//   - modcreator-error-resource-not-found --
func ErrorResourceNotFound(path string, cause error) error {
	result := serum.Errorf(CodeResourceNotFound,
		"resource %q cannot be read: %w", path, cause)
	addDetails(result, [][2]string{
		{"path", path},
	})
	return result
}

// ErrorResourceNotAFile is returned when a resource path names something
// other than a regular file, such as a directory.
//
// Errors:
//
//   - modcreator-error-resource-not-found --
func ErrorResourceNotAFile(path string) error {
	return serum.Error(CodeResourceNotFound,
		serum.WithMessageTemplate("resource {{path|q}} is not a regular file"),
		serum.WithDetail("path", path),
	)
}

// ErrorCopyFailed is returned when copying a resource into the module directory fails
// after the source was opened.
//
// Errors:
//
//   - modcreator-error-copy-failed --
func ErrorCopyFailed(source string, destination string, cause error) error {
	result := serum.Errorf(CodeCopyFailed,
		"copying %q to %q failed: %w", source, destination, cause)
	addDetails(result, [][2]string{
		{"source", source},
		{"destination", destination},
	})
	return result
}

// ErrorSerialization is returned when the descriptor cannot be rendered or written
//
// Errors:
//
//   - modcreator-error-serialization --
func ErrorSerialization(context string, path string, cause error) error {
	result := serum.Errorf(CodeSerialization,
		"serialization error: %s: %w", context, cause)
	addDetails(result, [][2]string{
		{"context", context},
		{"path", path},
	})
	return result
}

// addDetails is a helper method to get around the fact that doing a type coercion within
// an exported function is not currently allowed by serum.
// We won't need this if serum supports adding details when using serum.Errorf.
func addDetails(err error, details [][2]string) {
	s := err.(*serum.ErrorValue)
	s.Data.Details = append(s.Data.Details, details...)
}
