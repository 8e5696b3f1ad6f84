package promotion

import (
	"encoding/json"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/pkg/errs"
)

const anyCategory = "any"

var (
	ErrInvalidRuleCategory = errs.Validation("invalid rule category")
	ErrInvalidRuleCount    = errs.Validation("rule count must be at least 1")
	ErrNoRules             = errs.Validation("template must declare at least one rule")
	ErrMalformedRules      = errs.New("malformed template rules")
)

// RuleCategory is either a concrete badge category or the wildcard that
// matches every category at the rule's level.
type RuleCategory struct {
	category badge.Category
	wildcard bool
}

func AnyCategory() RuleCategory {
	return RuleCategory{wildcard: true}
}

func ExactCategory(c badge.Category) RuleCategory {
	return RuleCategory{category: c}
}

func ParseRuleCategory(s string) (RuleCategory, error) {
	if s == anyCategory {
		return AnyCategory(), nil
	}
	c, err := badge.NewCategory(s)
	if err != nil {
		return RuleCategory{}, ErrInvalidRuleCategory
	}
	return ExactCategory(c), nil
}

func (c RuleCategory) IsAny() bool { return c.wildcard }

// Category returns the concrete category; ok is false for the wildcard.
func (c RuleCategory) Category() (badge.Category, bool) {
	return c.category, !c.wildcard
}

func (c RuleCategory) String() string {
	if c.wildcard {
		return anyCategory
	}
	return c.category.String()
}

func (c RuleCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *RuleCategory) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRuleCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Rule requires Count badges of Level in Category.
type Rule struct {
	Category RuleCategory `json:"category"`
	Level    badge.Level  `json:"level"`
	Count    int          `json:"count"`
}

func NewRule(category RuleCategory, level badge.Level, count int) (Rule, error) {
	if !category.IsAny() && !category.category.IsValid() {
		return Rule{}, ErrInvalidRuleCategory
	}
	if !level.IsValid() {
		return Rule{}, badge.ErrInvalidLevel
	}
	if count < 1 {
		return Rule{}, ErrInvalidRuleCount
	}
	return Rule{Category: category, Level: level, Count: count}, nil
}

type ruleDocument struct {
	Category string `json:"category"`
	Level    string `json:"level"`
	Count    int    `json:"count"`
}

// ParseRules decodes the stored JSON rule list of a template. Every failure
// carries only the ErrMalformedRules mark: a bad stored rule is corrupt data,
// not caller input.
func ParseRules(raw []byte) ([]Rule, error) {
	var docs []ruleDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, malformedRules("decode rules: %s", err.Error())
	}
	if len(docs) == 0 {
		return nil, malformedRules("%s", ErrNoRules.Error())
	}
	rules := make([]Rule, 0, len(docs))
	for i, d := range docs {
		category, err := ParseRuleCategory(d.Category)
		if err != nil {
			return nil, malformedRules("rule %d: %s", i, err.Error())
		}
		level, err := badge.NewLevel(d.Level)
		if err != nil {
			return nil, malformedRules("rule %d: %s", i, err.Error())
		}
		rule, err := NewRule(category, level, d.Count)
		if err != nil {
			return nil, malformedRules("rule %d: %s", i, err.Error())
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func malformedRules(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), ErrMalformedRules)
}

// MarshalRules is the inverse of ParseRules.
func MarshalRules(rules []Rule) ([]byte, error) {
	return json.Marshal(rules)
}
