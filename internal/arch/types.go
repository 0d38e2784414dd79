package arch

import "slices"

// ResourceType identifies a scaffoldable resource kind.
type ResourceType string

// Supported resource types.
const (
	TypeComponent ResourceType = "component"
	TypeHook      ResourceType = "hook"
	TypePage      ResourceType = "page"
	TypeService   ResourceType = "service"
	TypeContext   ResourceType = "context"
	TypeStore     ResourceType = "store"
	TypeType      ResourceType = "type"
	TypeAPI       ResourceType = "api"
	TypeFeature   ResourceType = "feature"
)

// resourceTypes lists every supported resource type in display order.
var resourceTypes = []ResourceType{
	TypeComponent, TypeHook, TypePage, TypeService, TypeContext,
	TypeStore, TypeType, TypeAPI, TypeFeature,
}

// ResourceTypes returns all supported resource types.
func ResourceTypes() []ResourceType {
	return slices.Clone(resourceTypes)
}

// IsValidResourceType reports whether s names a supported resource type.
func IsValidResourceType(s string) bool {
	return slices.Contains(resourceTypes, ResourceType(s))
}

// AtomicLevel is the atomic-design sub-classification of a component.
type AtomicLevel string

// Atomic design levels. LevelPage is only available under the react
// framework, where Next.js does not own the page concept.
const (
	LevelAtom     AtomicLevel = "atom"
	LevelMolecule AtomicLevel = "molecule"
	LevelOrganism AtomicLevel = "organism"
	LevelTemplate AtomicLevel = "template"
	LevelPage     AtomicLevel = "page"
)

// AtomicLevels returns the atomic levels valid for the given framework.
func AtomicLevels(framework string) []AtomicLevel {
	levels := []AtomicLevel{LevelAtom, LevelMolecule, LevelOrganism, LevelTemplate}
	if framework == "react" {
		levels = append(levels, LevelPage)
	}
	return levels
}

// IsValidAtomicLevel reports whether s names a known atomic level for the
// given framework.
func IsValidAtomicLevel(s, framework string) bool {
	return slices.Contains(AtomicLevels(framework), AtomicLevel(s))
}
