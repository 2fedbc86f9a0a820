/*
Package modargs decodes the command line of modcreator into a modapi.ModuleSpec.

The accepted flags are deliberately few, and the decoding is deliberately permissive:
anything that isn't one of the recognized flags is skipped (and reported back in
Decoded.Ignored, so a caller can mention it), rather than rejected.
Each recognized flag takes exactly one value token, which must not itself look like a flag.
*/
package modargs

import (
	"strings"

	"github.com/warptools/modcreator/modapi"
)

const (
	FlagName = "--name" // Value: NAME[:SLOT]
	FlagJars = "--jars" // Value: JAR[:JAR...]
	FlagDeps = "--deps" // Value: DEP[:SLOT][,DEP[:SLOT]...]

	listSeparatorJars = ":"
	listSeparatorDeps = ","
	slotSeparator     = ":"
)

// Decoded is the result of decoding an argument list.
type Decoded struct {
	Spec    modapi.ModuleSpec
	Ignored []string // Tokens that were not recognized, in the order they were seen.
}

// WantsHelp reports whether the argument list asks for usage text:
// that's the case when there are no arguments at all,
// or when the first one is "-h" or "--help".
// Help flags anywhere else are just unrecognized tokens.
func WantsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	return args[0] == "-h" || args[0] == "--help"
}

// Parse consumes args left to right, once.
// args should not include the program name.
//
// No flag is required; a spec without a name is returned happily,
// and it's up to later stages to refuse to do anything with it.
// A flag given more than once is applied again:
// a later --name replaces the earlier one, and later --jars or --deps append.
//
// Errors:
//
//   - modcreator-error-usage -- when a flag has no value, the value looks like a flag, or a module token has too many colons.
func Parse(args []string) (Decoded, error) {
	var result Decoded
	spec := &result.Spec
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case FlagName, FlagJars, FlagDeps:
			// handled below
		default:
			result.Ignored = append(result.Ignored, arg)
			continue
		}

		if i == len(args)-1 {
			return Decoded{}, modapi.ErrorMissingFlagValue(arg)
		}
		i++
		value := args[i]
		if strings.HasPrefix(value, "--") {
			return Decoded{}, modapi.ErrorFlagValueIsFlag(arg, value)
		}

		switch arg {
		case FlagName:
			name, slot, err := ParseModuleRef(arg, value)
			if err != nil {
				return Decoded{}, err
			}
			spec.Name = name
			spec.Slot = slot
		case FlagJars:
			for _, jar := range splitList(value, listSeparatorJars) {
				spec.Resources = append(spec.Resources, modapi.ResourceRef{Path: jar})
			}
		case FlagDeps:
			for _, dep := range splitList(value, listSeparatorDeps) {
				name, slot, err := ParseModuleRef(arg, dep)
				if err != nil {
					return Decoded{}, err
				}
				spec.Dependencies = append(spec.Dependencies, modapi.DependencyRef{Name: name, Slot: slot})
			}
		}
	}
	return result, nil
}

// ParseModuleRef splits a "name[:slot]" token.
// An empty slot ("name:") is treated the same as no slot at all.
// The flag is only used for error reporting.
//
// Errors:
//
//   - modcreator-error-usage -- when the token contains more than one colon.
func ParseModuleRef(flag string, token string) (modapi.ModuleName, *modapi.SlotName, error) {
	parts := strings.Split(token, slotSeparator)
	if len(parts) > 2 {
		return "", nil, modapi.ErrorModuleNameInvalid(flag, token)
	}
	name := modapi.ModuleName(parts[0])
	if len(parts) == 1 || parts[1] == "" {
		return name, nil, nil
	}
	slot := modapi.SlotName(parts[1])
	return name, &slot, nil
}

// splitList splits on sep and drops empty entries.
func splitList(value string, sep string) []string {
	parts := strings.Split(value, sep)
	result := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}
