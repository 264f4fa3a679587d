// Package budget keeps the budget category codes of a draft in line with its items.
package budget

import (
	"sort"
	"strings"

	"requisiciones_api/internal/domain/entities"
)

// categoryPrefixLen is the length of the CUCOP prefix that names a budget category.
const categoryPrefixLen = 5

// DeriveBudgetCategories returns the sorted, unique, comma separated category
// prefixes of the given items. Codes shorter than the prefix are used whole.
func DeriveBudgetCategories(items []entities.LineItem) string {
	seen := make(map[string]struct{}, len(items))
	codes := make([]string, 0, len(items))
	for _, it := range items {
		code := strings.TrimSpace(it.CUCOP)
		if code == "" {
			continue
		}
		if r := []rune(code); len(r) > categoryPrefixLen {
			code = string(r[:categoryPrefixLen])
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return strings.Join(codes, ",")
}

// Sync stores the derived categories on general when they differ from the
// current value. It reports whether a write happened.
func Sync(general *entities.GeneralData, items []entities.LineItem) bool {
	if general == nil {
		return false
	}
	derived := DeriveBudgetCategories(items)
	if general.BudgetCategoryCodes == derived {
		return false
	}
	general.BudgetCategoryCodes = derived
	return true
}
