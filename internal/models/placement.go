package models

// PlacementQuery is either PlacementByFeatures or PlacementBySkills.
type PlacementQuery interface {
	isPlacementQuery()
}

// PlacementByFeatures carries a feature bag that is forwarded opaquely; the
// placement service owns its schema.
type PlacementByFeatures struct {
	Features map[string]any
}

func (PlacementByFeatures) isPlacementQuery() {}

type PlacementBySkills struct {
	Skills SkillSet
}

func (PlacementBySkills) isPlacementQuery() {}
