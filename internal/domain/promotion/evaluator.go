package promotion

import "badge-promotion-engine/internal/domain/badge"

// Requirement is the per-rule outcome of an evaluation.
type Requirement struct {
	Category  RuleCategory `json:"category"`
	Level     badge.Level  `json:"level"`
	Required  int          `json:"required"`
	Current   int          `json:"current"`
	Satisfied bool         `json:"satisfied"`
}

// MissingRequirement is an unsatisfied rule with its remaining deficit.
type MissingRequirement struct {
	Category RuleCategory `json:"category"`
	Level    badge.Level  `json:"level"`
	Count    int          `json:"count"`
}

type EvaluationResult struct {
	IsValid      bool
	Requirements []Requirement
	Missing      []MissingRequirement
}

// Evaluate checks held badges against the rules. Levels match exactly: a
// gold badge never counts toward a silver or bronze rule. A wildcard rule
// counts every category at its level, so one badge may satisfy both a
// wildcard rule and a category rule.
func Evaluate(rules []Rule, held []badge.Key) EvaluationResult {
	counts := make(map[badge.Key]int, len(held))
	byLevel := make(map[badge.Level]int, 3)
	for _, k := range held {
		counts[k]++
		byLevel[k.Level]++
	}

	result := EvaluationResult{
		IsValid:      true,
		Requirements: make([]Requirement, 0, len(rules)),
		Missing:      []MissingRequirement{},
	}
	for _, r := range rules {
		var current int
		if c, ok := r.Category.Category(); ok {
			current = counts[badge.Key{Category: c, Level: r.Level}]
		} else {
			current = byLevel[r.Level]
		}

		satisfied := current >= r.Count
		result.Requirements = append(result.Requirements, Requirement{
			Category:  r.Category,
			Level:     r.Level,
			Required:  r.Count,
			Current:   current,
			Satisfied: satisfied,
		})
		if !satisfied {
			result.IsValid = false
			result.Missing = append(result.Missing, MissingRequirement{
				Category: r.Category,
				Level:    r.Level,
				Count:    r.Count - current,
			})
		}
	}
	return result
}
