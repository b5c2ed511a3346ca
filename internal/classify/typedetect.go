package classify

import (
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// DetectType scores every receipt type by counting how many of its generic
// keywords occur in the lowercased text and returns the type with the
// highest nonzero score. Ties keep the earlier type in enumeration order.
func DetectType(lowerText string) *model.ReceiptType {
	var best *model.ReceiptType
	bestScore := 0

	for _, t := range model.AllReceiptTypes {
		score := 0
		for _, kw := range t.Keywords() {
			if strings.Contains(lowerText, kw) {
				score++
			}
		}
		if score > bestScore {
			t := t
			best = &t
			bestScore = score
		}
	}
	return best
}
