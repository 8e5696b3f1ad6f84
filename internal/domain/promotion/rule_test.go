package promotion_test

import (
	"encoding/json"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	t.Run("mixed wildcard and exact rules", func(t *testing.T) {
		rules, err := promotion.ParseRules([]byte(`[
			{"category":"technical","level":"silver","count":6},
			{"category":"any","level":"gold","count":1}
		]`))
		require.NoError(t, err)
		require.Len(t, rules, 2)

		c, ok := rules[0].Category.Category()
		assert.True(t, ok)
		assert.Equal(t, badge.CategoryTechnical, c)
		assert.Equal(t, badge.LevelSilver, rules[0].Level)
		assert.Equal(t, 6, rules[0].Count)

		assert.True(t, rules[1].Category.IsAny())
		_, ok = rules[1].Category.Category()
		assert.False(t, ok)
	})

	cases := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{`},
		{name: "empty list", raw: `[]`},
		{name: "null", raw: `null`},
		{name: "unknown category", raw: `[{"category":"sales","level":"gold","count":1}]`},
		{name: "unknown level", raw: `[{"category":"technical","level":"platinum","count":1}]`},
		{name: "zero count", raw: `[{"category":"technical","level":"gold","count":0}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := promotion.ParseRules([]byte(tc.raw))
			require.Error(t, err)
			assert.True(t, errs.Is(err, promotion.ErrMalformedRules))
			assert.False(t, errs.Is(err, errs.ErrDomainValidation), "stored rules are not caller input")
		})
	}
}

func TestRuleJSONRoundTrip(t *testing.T) {
	rules := []promotion.Rule{
		{Category: promotion.AnyCategory(), Level: badge.LevelGold, Count: 1},
		{Category: promotion.ExactCategory(badge.CategoryOrganizational), Level: badge.LevelBronze, Count: 2},
	}

	raw, err := promotion.MarshalRules(rules)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"any","level":"gold","count":1},{"category":"organizational","level":"bronze","count":2}]`, string(raw))

	var decoded []promotion.Rule
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, rules, decoded)
}

func TestNewRule(t *testing.T) {
	_, err := promotion.NewRule(promotion.AnyCategory(), badge.Level("copper"), 1)
	assert.ErrorIs(t, err, badge.ErrInvalidLevel)

	_, err = promotion.NewRule(promotion.ExactCategory(badge.Category("sales")), badge.LevelGold, 1)
	assert.ErrorIs(t, err, promotion.ErrInvalidRuleCategory)

	_, err = promotion.NewRule(promotion.AnyCategory(), badge.LevelGold, -2)
	assert.ErrorIs(t, err, promotion.ErrInvalidRuleCount)
}
