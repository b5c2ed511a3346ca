package classify

import (
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// chargingKeywords distinguish EV charging receipts from parking receipts
// issued under the same brand.
var chargingKeywords = []string{
	"kwh", "ladepreis", "ladevorgang", "verbrauchte energie",
	"charging", "ladepunkt", "ladestation", "elektro",
	"strom", "energy", "kilowatt",
}

// applyCorrections rewrites known ambiguous results after the main pass.
// It runs on every detection path, including learned-overlay hits.
//
// APCOA operates parking garages but also bills EV charging under the same
// brand; charging vocabulary overrides the parking default. PayLife issues
// both VISA and Mastercard statements under one brand; the network qualifies
// the company name, VISA first when both appear.
func applyCorrections(result *model.Classification, lowerText string) {
	if result.Company == "APCOA" && isChargingReceipt(lowerText) {
		result.Type = model.TypePtr(model.TypeETankbeleg)
	}

	if result.Company == "PayLife" {
		if strings.Contains(lowerText, "visa") {
			result.Company = "PayLife-VISA"
		} else if strings.Contains(lowerText, "mastercard") {
			result.Company = "PayLife-Mastercard"
		}
	}
}

func isChargingReceipt(lowerText string) bool {
	for _, kw := range chargingKeywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}
