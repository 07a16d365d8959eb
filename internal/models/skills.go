package models

import "strings"

// SkillSet is a collection of trimmed, non-empty skills with no two entries
// equal under case-insensitive comparison. The first spelling seen is kept.
type SkillSet struct {
	values []string
	index  map[string]struct{}
}

func NewSkillSet(raw []string) SkillSet {
	s := SkillSet{
		values: make([]string, 0, len(raw)),
		index:  make(map[string]struct{}, len(raw)),
	}
	for _, skill := range raw {
		s.add(skill)
	}
	return s
}

func (s *SkillSet) add(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	key := strings.ToLower(skill)
	if _, exists := s.index[key]; exists {
		return
	}
	s.index[key] = struct{}{}
	s.values = append(s.values, skill)
}

func (s SkillSet) Len() int {
	return len(s.values)
}

func (s SkillSet) IsEmpty() bool {
	return len(s.values) == 0
}

func (s SkillSet) Contains(skill string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Values returns a copy of the skills in insertion order.
func (s SkillSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}
