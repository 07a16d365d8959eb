package models

const DefaultTopN = 5

// RecommendationQuery is either RecommendByStudent or RecommendBySkills.
type RecommendationQuery interface {
	Limit() int
	isRecommendationQuery()
}

type RecommendByStudent struct {
	StudentID string
	TopN      int
}

func (q RecommendByStudent) Limit() int { return limitOrDefault(q.TopN) }

func (RecommendByStudent) isRecommendationQuery() {}

type RecommendBySkills struct {
	Skills SkillSet
	TopN   int
}

func (q RecommendBySkills) Limit() int { return limitOrDefault(q.TopN) }

func (RecommendBySkills) isRecommendationQuery() {}

// RecommendationResult keeps the downstream ordering untouched.
type RecommendationResult []string

func limitOrDefault(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return n
}
