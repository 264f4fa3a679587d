package budget

import (
	"testing"

	"requisiciones_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func items(codes ...string) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(codes))
	for _, c := range codes {
		out = append(out, entities.LineItem{CUCOP: c})
	}
	return out
}

func TestDeriveBudgetCategories(t *testing.T) {
	cases := []struct {
		name  string
		codes []string
		want  string
	}{
		{"empty", nil, ""},
		{"dedup and sort", []string{"29101.01", "25401.01", "25401.07"}, "25401,29101"},
		{"short code used whole", []string{"123", "21101001"}, "123,21101"},
		{"blank codes skipped", []string{"  ", "21101001"}, "21101"},
		{"prefix counts characters", []string{"ÁÉ123.9"}, "ÁÉ123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveBudgetCategories(items(tc.codes...)))
		})
	}
}

func TestDeriveBudgetCategories_OrderIndependent(t *testing.T) {
	a := DeriveBudgetCategories(items("25401.01", "25401.07", "29101.01"))
	b := DeriveBudgetCategories(items("29101.01", "25401.07", "25401.01"))
	assert.Equal(t, a, b)
}

func TestSync(t *testing.T) {
	t.Run("nil general data", func(t *testing.T) {
		assert.False(t, Sync(nil, items("25401.01")))
	})

	t.Run("writes once then idempotent", func(t *testing.T) {
		g := &entities.GeneralData{}
		its := items("25401.01", "29101.01")
		assert.True(t, Sync(g, its))
		assert.Equal(t, "25401,29101", g.BudgetCategoryCodes)
		assert.False(t, Sync(g, its))
		assert.Equal(t, "25401,29101", g.BudgetCategoryCodes)
	})

	t.Run("clears when items removed", func(t *testing.T) {
		g := &entities.GeneralData{BudgetCategoryCodes: "25401"}
		assert.True(t, Sync(g, nil))
		assert.Equal(t, "", g.BudgetCategoryCodes)
	})
}
