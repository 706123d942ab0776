package buildmodel

// Property keys the pipeline is allowed to ask about. This is the whole
// vocabulary; nothing in the tool queries properties outside this list.
const (
	PropType               = "TYPE"
	PropLinkLibraries      = "LINK_LIBRARIES"
	PropAliasedTarget      = "ALIASED_TARGET"
	PropSubdirectories     = "SUBDIRECTORIES"
	PropBuildsystemTargets = "BUILDSYSTEM_TARGETS"
)

// Model is the read-only view of a build the rest of the tool works
// against. The second return reports whether the property is set; an unset
// property is not an error.
type Model interface {
	TargetProperty(target, key string) ([]string, bool)
	DirectoryProperty(dir, key string) ([]string, bool)
	IsTarget(name string) bool
}

type TargetType string

const (
	Executable       TargetType = "EXECUTABLE"
	StaticLibrary    TargetType = "STATIC_LIBRARY"
	SharedLibrary    TargetType = "SHARED_LIBRARY"
	ModuleLibrary    TargetType = "MODULE_LIBRARY"
	ObjectLibrary    TargetType = "OBJECT_LIBRARY"
	InterfaceLibrary TargetType = "INTERFACE_LIBRARY"
	Utility          TargetType = "UTILITY"
	Unknown          TargetType = "UNKNOWN"
)

func ParseTargetType(s string) TargetType {
	switch TargetType(s) {
	case Executable, StaticLibrary, SharedLibrary, ModuleLibrary,
		ObjectLibrary, InterfaceLibrary, Utility:
		return TargetType(s)
	default:
		return Unknown
	}
}

// TypeOf resolves a target's declared type through the model, mapping
// anything unrecognized (or unset) to Unknown.
func TypeOf(m Model, target string) TargetType {
	values, ok := m.TargetProperty(target, PropType)
	if !ok || len(values) == 0 {
		return Unknown
	}
	return ParseTargetType(values[0])
}

// AliasedTarget reports the real target behind an alias, if the name is a
// defined alias target.
func AliasedTarget(m Model, name string) (string, bool) {
	values, ok := m.TargetProperty(name, PropAliasedTarget)
	if !ok || len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
