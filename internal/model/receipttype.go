package model

// ReceiptType identifies the kind of receipt a document represents.
// The set is closed: adding a variant requires updating AllReceiptTypes,
// DisplayName and Keywords together.
type ReceiptType string

const (
	// TypeRechnung is a regular invoice.
	TypeRechnung ReceiptType = "rechnung"
	// TypeParkbeleg is a parking receipt.
	TypeParkbeleg ReceiptType = "parkbeleg"
	// TypeTankbeleg is a fuel receipt.
	TypeTankbeleg ReceiptType = "tankbeleg"
	// TypeETankbeleg is an EV charging receipt.
	TypeETankbeleg ReceiptType = "e-tankbeleg"
	// TypeHotelbeleg is a hotel/accommodation receipt.
	TypeHotelbeleg ReceiptType = "hotelbeleg"
	// TypeBewirtungsbeleg is a hospitality/restaurant receipt.
	TypeBewirtungsbeleg ReceiptType = "bewirtungsbeleg"
	// TypeAbo is a recurring subscription invoice.
	TypeAbo ReceiptType = "abo"
	// TypeAppAbo is an app-store subscription invoice.
	TypeAppAbo ReceiptType = "app-abo"
	// TypeKassenbon is a till receipt.
	TypeKassenbon ReceiptType = "kassenbon"
	// TypeKreditkartenabrechnung is a credit card statement.
	TypeKreditkartenabrechnung ReceiptType = "kk-abrechnung"
)

// AllReceiptTypes lists every receipt type in its canonical order. Generic
// type detection scores the types in exactly this order; on a score tie the
// earlier type wins.
var AllReceiptTypes = []ReceiptType{
	TypeRechnung,
	TypeParkbeleg,
	TypeTankbeleg,
	TypeETankbeleg,
	TypeHotelbeleg,
	TypeBewirtungsbeleg,
	TypeAbo,
	TypeAppAbo,
	TypeKassenbon,
	TypeKreditkartenabrechnung,
}

// DisplayName returns the human-readable label for the receipt type.
func (t ReceiptType) DisplayName() string {
	switch t {
	case TypeRechnung:
		return "Rechnung"
	case TypeParkbeleg:
		return "Parkbeleg"
	case TypeTankbeleg:
		return "Tankbeleg"
	case TypeETankbeleg:
		return "E-Tankbeleg"
	case TypeHotelbeleg:
		return "Hotelbeleg"
	case TypeBewirtungsbeleg:
		return "Bewirtungsbeleg"
	case TypeAbo:
		return "Abo"
	case TypeAppAbo:
		return "App-Abo"
	case TypeKassenbon:
		return "Kassenbon"
	case TypeKreditkartenabrechnung:
		return "Kreditkartenabrechnung"
	}
	return string(t)
}

// Keywords returns the generic detection keywords for the receipt type.
// They are consulted only when no company match fixed the type.
func (t ReceiptType) Keywords() []string {
	switch t {
	case TypeRechnung:
		return []string{"rechnung", "invoice", "faktura", "rechnungsnummer", "rechnungsdatum"}
	case TypeParkbeleg:
		return []string{"parkschein", "parkhaus", "parkgebühr", "parking", "parkticket", "kurzparken", "dauerparkausweis"}
	case TypeTankbeleg:
		return []string{"tankstelle", "benzin", "diesel", "super", "kraftstoff", "liter", "treibstoff", "tankquittung"}
	case TypeETankbeleg:
		return []string{"ladestation", "ladepunkt", "kwh", "elektro", "charging", "ladevorgang", "e-mobility", "elektrotankstelle"}
	case TypeHotelbeleg:
		return []string{"hotel", "übernachtung", "zimmer", "accommodation", "nächte", "check-in", "check-out", "room"}
	case TypeBewirtungsbeleg:
		return []string{"restaurant", "bewirtung", "speisen", "getränke", "gasthaus", "gastronomie", "trinkgeld", "tip"}
	case TypeAbo:
		return []string{"abonnement", "subscription", "monatlich", "monthly", "jahresabo", "mitgliedschaft", "membership"}
	case TypeAppAbo:
		return []string{"app store", "google play", "in-app", "apple.com/bill", "digital content", "itunes"}
	case TypeKassenbon:
		return []string{"kassenbon", "kassabon", "quittung", "bon", "kasse", "bar bezahlt", "summe", "gesamt"}
	case TypeKreditkartenabrechnung:
		return []string{"kreditkartenabrechnung", "monatsabrechnung", "card statement", "kontoauszug", "ihre abrechnung", "kreditkarten-abrechnung", "credit card statement"}
	}
	return nil
}

// ParseReceiptType converts a canonical tag back to its ReceiptType.
func ParseReceiptType(tag string) (ReceiptType, bool) {
	for _, t := range AllReceiptTypes {
		if string(t) == tag {
			return t, true
		}
	}
	return "", false
}
