package modapi

import (
	"strings"
)

// DefaultSlot is the slot a module lives in when none was named.
const DefaultSlot SlotName = "main"

// DescriptorFilename is the name of the descriptor written into every module directory.
const DescriptorFilename = "module.xml"

// ModuleName is a dot-separated module identifier, such as "org.example.foo".
type ModuleName string

// Segments splits the name on dots.
// These become the directory segments of the module's location.
func (n ModuleName) Segments() []string {
	return strings.Split(string(n), ".")
}

// SlotName selects one variant of a module.
type SlotName string

// ModuleSpec is everything a single run knows about the module it is producing.
//
// Resources and Dependencies keep the order they were given in,
// and that order is carried through to the descriptor.
type ModuleSpec struct {
	Name         ModuleName
	Slot         *SlotName // Absent unless given.  Directory placement falls back to DefaultSlot.
	Resources    []ResourceRef
	Dependencies []DependencyRef
}

// SlotOrDefault returns the slot, or DefaultSlot if none was given.
func (m ModuleSpec) SlotOrDefault() SlotName {
	if m.Slot == nil {
		return DefaultSlot
	}
	return *m.Slot
}

// String renders "name:slot", using the default slot when none was given.
func (m ModuleSpec) String() string {
	return string(m.Name) + ":" + string(m.SlotOrDefault())
}

// ResourceRef points at one resource root.
//
// Before the module directory is populated, Path is the path the user gave.
// Once the resource has been copied, Path is only the file's basename,
// which is its location relative to the module directory.
type ResourceRef struct {
	Path string
}

// DependencyRef names another module this one depends on.
type DependencyRef struct {
	Name ModuleName
	Slot *SlotName
}

func (d DependencyRef) String() string {
	if d.Slot == nil {
		return string(d.Name)
	}
	return string(d.Name) + ":" + string(*d.Slot)
}

// GenerateResult describes what a run produced.
type GenerateResult struct {
	Directory  string     // Path of the module directory.
	Descriptor string     // Path of the written descriptor file.
	Module     ModuleSpec // The module as described in the descriptor; resource paths are basenames.
}
