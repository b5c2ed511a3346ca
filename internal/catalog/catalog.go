// Package catalog holds the static, built-in company catalog and the
// first-match lookup the classifier runs against it.
//
// The catalog is an ordered list and the order is load-bearing: lookup
// returns the first record whose any keyword occurs in the text, so records
// whose receipts quote other companies must come first. Known cases:
//
//   - Avanti before OMV ("OMV Downstream GmbH" appears on Avanti receipts)
//   - PayLife-VISA and PayLife-Mastercard before the bare PayLife record
//
// catalog_test.go pins these invariants.
package catalog

import (
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

func company(name string, t model.ReceiptType, keywords ...string) model.Company {
	return model.NewCompany(name, keywords, model.TypePtr(t), false)
}

var standard = []model.Company{
	// Parken. APCOA also issues EV charging receipts; the classifier
	// corrects the type afterwards.
	company("APCOA", model.TypeParkbeleg, "apcoa", "apcoa parking", "apcoa flow", "stafa tower"),
	company("Wipark", model.TypeParkbeleg, "wipark", "wien parking"),
	company("Contipark", model.TypeParkbeleg, "contipark"),
	company("ParkAndRide", model.TypeParkbeleg, "park and ride", "park+ride", "p+r"),
	company("ÖAMTC-Parken", model.TypeParkbeleg, "öamtc park", "easy way", "easyway"),
	company("Parkster", model.TypeParkbeleg, "parkster"),
	company("EasyPark", model.TypeParkbeleg, "easypark", "easy park"),
	company("ParkNow", model.TypeParkbeleg, "parknow", "park now"),
	company("PayByPhone", model.TypeParkbeleg, "paybyphone", "pay by phone"),

	// Tanken. Avanti must stay ahead of OMV, see package comment.
	company("Avanti", model.TypeTankbeleg, "avanti"),
	company("OMV", model.TypeTankbeleg, "omv", "viva ", "omv viva"),
	company("Shell", model.TypeTankbeleg, "shell", "shell austria", "shell deutschland"),
	company("BP", model.TypeTankbeleg, " bp ", "bp tankstelle", "british petroleum", "bp station"),
	company("Turmöl", model.TypeTankbeleg, "turmöl", "turmoil"),
	company("JET", model.TypeTankbeleg, "jet tankstelle", "jet-tankstelle", "jet station"),
	company("Eni", model.TypeTankbeleg, "eni ", "agip", "eni station"),
	company("Diskont", model.TypeTankbeleg, "diskont tanken", "diskonttank"),
	company("Aral", model.TypeTankbeleg, "aral"),
	company("Total", model.TypeTankbeleg, "total energies", "totalenergies"),
	company("Esso", model.TypeTankbeleg, "esso"),

	// E-Tanken.
	company("EVN", model.TypeETankbeleg, "evn", "evn naturkraft", "evn mobil"),
	company("Smatrics", model.TypeETankbeleg, "smatrics", "smatrics.com"),
	company("Ionity", model.TypeETankbeleg, "ionity"),
	company("Tesla", model.TypeETankbeleg, "tesla supercharger", "tesla charging", "supercharger"),
	company("EnBW", model.TypeETankbeleg, "enbw", "enbw mobility"),
	company("WienEnergie", model.TypeETankbeleg, "wien energie", "tanke wien energie"),
	company("DaEmobility", model.TypeETankbeleg, "da emobility", "da e-mobility"),
	company("Fastned", model.TypeETankbeleg, "fastned"),
	company("Allego", model.TypeETankbeleg, "allego"),
	company("ChargePoint", model.TypeETankbeleg, "chargepoint"),
	company("Plugsurfing", model.TypeETankbeleg, "plugsurfing"),
	company("NewMotion", model.TypeETankbeleg, "newmotion", "new motion"),
	company("Maingau", model.TypeETankbeleg, "maingau"),

	// Drucker / Hardware.
	company("HP", model.TypeRechnung, "hp ", " hp", "hewlett-packard", "hewlett packard", "hp inc", "hp instant ink", "hpinstantink", "hp.com"),
	company("Canon", model.TypeRechnung, "canon"),
	company("Epson", model.TypeRechnung, "epson"),
	company("Brother", model.TypeRechnung, "brother"),
	company("Dell", model.TypeRechnung, "dell"),
	company("Lenovo", model.TypeRechnung, "lenovo"),
	company("Logitech", model.TypeRechnung, "logitech"),
	company("Samsung", model.TypeRechnung, "samsung"),
	company("LG", model.TypeRechnung, " lg ", "lg electronics"),
	company("Sony", model.TypeRechnung, "sony"),

	// Medien / Abos.
	company("DiePresse", model.TypeAbo, "die presse", "diepresse.com", "diepresse"),
	company("DerStandard", model.TypeAbo, "der standard", "derstandard.at", "derstandard"),
	company("NYT", model.TypeAbo, "new york times", "nytimes", "nyt.com"),
	company("Medium", model.TypeAbo, "medium.com", "medium membership", "medium inc"),
	company("Economist", model.TypeAbo, "the economist", "economist.com"),
	company("Substack", model.TypeAbo, "substack"),
	company("Readwise", model.TypeAbo, "readwise"),
	company("Blinkist", model.TypeAbo, "blinkist"),
	company("Kindle", model.TypeAbo, "kindle unlimited"),
	company("Audible", model.TypeAbo, "audible"),
	company("Kurier", model.TypeAbo, "kurier.at", "kurier "),
	company("Krone", model.TypeAbo, "krone.at", "kronen zeitung"),
	company("Mediaprint", model.TypeAbo, "mediaprint"),
	company("Kleine", model.TypeAbo, "kleine zeitung"),

	// Streaming.
	company("Netflix", model.TypeAbo, "netflix"),
	company("Spotify", model.TypeAbo, "spotify"),
	company("YouTubePremium", model.TypeAppAbo, "youtube premium", "youtube music"),
	company("Zattoo", model.TypeAbo, "zattoo"),
	company("Disney+", model.TypeAbo, "disney+", "disney plus"),
	company("AmazonPrime", model.TypeAbo, "amazon prime", "prime video"),
	company("AppleTV", model.TypeAppAbo, "apple tv+", "apple tv plus", "appletv"),
	company("Paramount", model.TypeAbo, "paramount+", "paramount plus"),
	company("HBO", model.TypeAbo, "hbo max", "hbo"),
	company("Crunchyroll", model.TypeAbo, "crunchyroll"),
	company("DAZN", model.TypeAbo, "dazn"),
	company("Sky", model.TypeAbo, "sky ticket", "sky go", "sky.at"),

	// Software / Tech.
	company("Apple", model.TypeAppAbo, "apple.com/bill", "apple distribution", "apple services", "itunes", "app store", "apple inc"),
	company("Google", model.TypeAppAbo, "google.com/pay", "google play", "google one", "google cloud", "google llc"),
	company("Microsoft", model.TypeAbo, "microsoft 365", "microsoft corporation", "office 365", "microsoft azure", "microsoft.com"),
	company("Anthropic", model.TypeAppAbo, "anthropic", "claude.ai", "claude pro", "anthropic pbc"),
	company("OpenAI", model.TypeAppAbo, "openai", "chatgpt plus", "chatgpt pro"),
	company("Perplexity", model.TypeAppAbo, "perplexity", "perplexity.ai"),
	company("Canva", model.TypeAppAbo, "canva"),
	company("Adobe", model.TypeAbo, "adobe", "creative cloud", "adobe inc"),
	company("Dropbox", model.TypeAbo, "dropbox"),
	company("GitHub", model.TypeAbo, "github"),
	company("JetBrains", model.TypeAbo, "jetbrains"),
	company("1Password", model.TypeAbo, "1password", "agilebits"),
	company("Notion", model.TypeAbo, "notion"),
	company("Slack", model.TypeAbo, "slack"),
	company("Zoom", model.TypeAbo, "zoom video", "zoom.us", "zoom communications"),
	company("Figma", model.TypeAbo, "figma"),
	company("Miro", model.TypeAbo, "miro.com", "miro board"),
	company("Asana", model.TypeAbo, "asana"),
	company("Monday", model.TypeAbo, "monday.com"),
	company("Trello", model.TypeAbo, "trello"),
	company("Todoist", model.TypeAbo, "todoist"),
	company("Evernote", model.TypeAbo, "evernote"),
	company("Grammarly", model.TypeAbo, "grammarly"),
	company("DeepL", model.TypeAbo, "deepl"),
	company("LastPass", model.TypeAbo, "lastpass"),
	company("Bitwarden", model.TypeAbo, "bitwarden"),
	company("NordVPN", model.TypeAbo, "nordvpn", "nord vpn"),
	company("ExpressVPN", model.TypeAbo, "expressvpn"),
	company("Surfshark", model.TypeAbo, "surfshark"),
	company("ProtonVPN", model.TypeAbo, "protonvpn", "proton vpn", "proton ag"),
	company("Paddle", model.TypeRechnung, "paddle.com", "paddle.net", "paddle payment"),
	company("Gumroad", model.TypeRechnung, "gumroad"),
	company("Lemon", model.TypeRechnung, "lemon squeezy", "lemonsqueezy"),
	company("Stripe", model.TypeRechnung, "stripe.com", "stripe payments"),
	company("PayPal", model.TypeRechnung, "paypal"),
	company("Wise", model.TypeRechnung, "wise.com", "transferwise"),
	company("Revolut", model.TypeRechnung, "revolut"),

	// Stock photos / Creative.
	company("Unsplash", model.TypeAbo, "unsplash", "unsplash+", "unsplash plus", "unsplash inc"),
	company("Shutterstock", model.TypeAbo, "shutterstock"),
	company("iStock", model.TypeAbo, "istock", "istockphoto"),
	company("Getty", model.TypeAbo, "getty images", "gettyimages"),
	company("AdobeStock", model.TypeAbo, "adobe stock"),
	company("Envato", model.TypeAbo, "envato", "envato elements"),
	company("Freepik", model.TypeAbo, "freepik"),
	company("Pexels", model.TypeAbo, "pexels"),

	// Domains / Hosting.
	company("GoDaddy", model.TypeRechnung, "godaddy"),
	company("Namecheap", model.TypeRechnung, "namecheap"),
	company("Cloudflare", model.TypeRechnung, "cloudflare"),
	company("Vercel", model.TypeRechnung, "vercel"),
	company("Netlify", model.TypeRechnung, "netlify"),
	company("Heroku", model.TypeRechnung, "heroku"),
	company("DigitalOcean", model.TypeRechnung, "digitalocean"),
	company("Hetzner", model.TypeRechnung, "hetzner"),
	company("AWS", model.TypeRechnung, "amazon web services", "aws.amazon"),
	company("WorldForYou", model.TypeRechnung, "world4you"),
	company("Strato", model.TypeRechnung, "strato"),
	company("1und1", model.TypeRechnung, "1&1", "1und1", "ionos"),

	// Einzelhandel.
	company("Billa", model.TypeKassenbon, "billa", "billa plus"),
	company("Spar", model.TypeKassenbon, "spar", "interspar", "eurospar"),
	company("Hofer", model.TypeKassenbon, "hofer", "aldi süd"),
	company("Lidl", model.TypeKassenbon, "lidl"),
	company("IKEA", model.TypeKassenbon, "ikea"),
	company("MediaMarkt", model.TypeKassenbon, "media markt", "mediamarkt"),
	company("Saturn", model.TypeKassenbon, "saturn"),
	company("Amazon", model.TypeRechnung, "amazon.de", "amazon.at", "amazon.com", "amazon eu"),
	company("Zalando", model.TypeRechnung, "zalando"),
	company("DM", model.TypeKassenbon, "dm drogerie", "dm-drogerie"),
	company("Müller", model.TypeKassenbon, "müller drogerie"),
	company("HundM", model.TypeKassenbon, "h&m", "h & m", "hennes"),
	company("Zara", model.TypeKassenbon, "zara"),
	company("Tchibo", model.TypeKassenbon, "tchibo"),
	company("Thalia", model.TypeKassenbon, "thalia"),
	company("OBI", model.TypeKassenbon, "obi baumarkt", "obi "),
	company("Hornbach", model.TypeKassenbon, "hornbach"),
	company("Bauhaus", model.TypeKassenbon, "bauhaus"),
	company("XXXLutz", model.TypeKassenbon, "xxxlutz", "xxx lutz", "lutz"),
	company("Kika", model.TypeKassenbon, "kika", "leiner"),
	company("Conrad", model.TypeKassenbon, "conrad electronic", "conrad.at", "conrad.de"),

	// Hotels.
	company("Booking", model.TypeHotelbeleg, "booking.com", "booking confirmation"),
	company("Airbnb", model.TypeHotelbeleg, "airbnb"),
	company("Hotels.com", model.TypeHotelbeleg, "hotels.com"),
	company("Expedia", model.TypeHotelbeleg, "expedia"),
	company("Trivago", model.TypeHotelbeleg, "trivago"),
	company("HRS", model.TypeHotelbeleg, "hrs.de", "hrs.com"),

	// Transport.
	company("ÖBB", model.TypeRechnung, "öbb", "oebb", "österreichische bundesbahnen"),
	company("WienerLinien", model.TypeRechnung, "wiener linien"),
	company("Flixbus", model.TypeRechnung, "flixbus", "flix"),
	company("Uber", model.TypeRechnung, "uber"),
	company("Bolt", model.TypeRechnung, "bolt"),
	company("Lime", model.TypeRechnung, "lime", "li.me"),
	company("Tier", model.TypeRechnung, "tier mobility", "tier scooter"),
	company("Ryanair", model.TypeRechnung, "ryanair"),
	company("EasyJet", model.TypeRechnung, "easyjet"),
	company("Eurowings", model.TypeRechnung, "eurowings"),
	company("Austrian", model.TypeRechnung, "austrian airlines", "austrian.com"),
	company("Lufthansa", model.TypeRechnung, "lufthansa"),
	company("KLM", model.TypeRechnung, "klm"),

	// Telekommunikation.
	company("A1", model.TypeRechnung, "a1 telekom", "a1.net"),
	company("Magenta", model.TypeRechnung, "magenta", "t-mobile austria"),
	company("Drei", model.TypeRechnung, "drei.at", "hutchison drei"),
	company("HoT", model.TypeRechnung, "hot.at", "hot hofer telekom"),
	company("Yesss", model.TypeRechnung, "yesss"),
	company("Spusu", model.TypeRechnung, "spusu"),
	company("BobVodafone", model.TypeRechnung, "bob.at", "vodafone"),

	// Versicherung.
	company("Allianz", model.TypeRechnung, "allianz"),
	company("Uniqa", model.TypeRechnung, "uniqa"),
	company("Generali", model.TypeRechnung, "generali"),
	company("WienerStädtische", model.TypeRechnung, "wiener städtische"),
	company("Ergo", model.TypeRechnung, "ergo versicherung"),
	company("Zurich", model.TypeRechnung, "zurich versicherung", "zürich versicherung"),
	company("HDI", model.TypeRechnung, "hdi versicherung"),

	// Banken.
	company("ErsteBank", model.TypeRechnung, "erste bank", "sparkasse"),
	company("RaiffeisenBank", model.TypeRechnung, "raiffeisen"),
	company("BankAustria", model.TypeRechnung, "bank austria", "unicredit"),
	company("BAWAG", model.TypeRechnung, "bawag", "psk"),
	company("ING", model.TypeRechnung, "ing diba", "ing bank"),
	company("N26", model.TypeRechnung, "n26"),

	// Kreditkarten. The network-qualified PayLife records must precede the
	// bare PayLife record; the classifier additionally rewrites a bare
	// PayLife hit using the visa/mastercard correction.
	company("PayLife-VISA", model.TypeKreditkartenabrechnung, "paylife black visa", "paylife gold visa", "paylife visa"),
	company("PayLife-Mastercard", model.TypeKreditkartenabrechnung, "paylife mastercard", "paylife black mastercard", "paylife gold mastercard"),
	company("PayLife", model.TypeKreditkartenabrechnung, "paylife", "monatsabrechnung", "rechnungsübersicht"),
	company("card complete", model.TypeKreditkartenabrechnung, "card complete"),
	company("AmericanExpress", model.TypeKreditkartenabrechnung, "american express", "amex"),
	company("Diners", model.TypeKreditkartenabrechnung, "diners club"),

	// Energie.
	company("Verbund", model.TypeRechnung, "verbund"),
	company("Kelag", model.TypeRechnung, "kelag"),
	company("Salzburg-AG", model.TypeRechnung, "salzburg ag"),
	company("Energie-AG", model.TypeRechnung, "energie ag"),
	company("TIWAG", model.TypeRechnung, "tiwag"),

	// Restaurants / Lieferung.
	company("Lieferando", model.TypeBewirtungsbeleg, "lieferando"),
	company("MjamFoodora", model.TypeBewirtungsbeleg, "mjam", "foodora"),
	company("UberEats", model.TypeBewirtungsbeleg, "uber eats", "ubereats"),
	company("Wolt", model.TypeBewirtungsbeleg, "wolt"),
	company("McDonalds", model.TypeBewirtungsbeleg, "mcdonald", "mcd", "mc donald"),
	company("BurgerKing", model.TypeBewirtungsbeleg, "burger king"),
	company("Starbucks", model.TypeBewirtungsbeleg, "starbucks"),
	company("Subway", model.TypeBewirtungsbeleg, "subway"),

	// Apps / Dienste.
	company("Duolingo", model.TypeAppAbo, "duolingo"),
	company("Babbel", model.TypeAppAbo, "babbel"),
	company("Headspace", model.TypeAppAbo, "headspace"),
	company("Calm", model.TypeAppAbo, "calm app"),
	company("Strava", model.TypeAppAbo, "strava"),
	company("Komoot", model.TypeAppAbo, "komoot"),
	company("AllTrails", model.TypeAppAbo, "alltrails"),
	company("MyFitnessPal", model.TypeAppAbo, "myfitnesspal"),
	company("Setapp", model.TypeAppAbo, "setapp"),
	company("CleanMyMac", model.TypeAppAbo, "cleanmymac", "macpaw"),
	company("Alfred", model.TypeAppAbo, "alfred", "alfredapp"),
	company("Raycast", model.TypeAppAbo, "raycast"),
	company("BetterTouchTool", model.TypeAppAbo, "bettertouchtool"),

	// Gaming.
	company("Steam", model.TypeAppAbo, "steam", "valve corporation"),
	company("PlayStation", model.TypeAppAbo, "playstation", "sony interactive"),
	company("Xbox", model.TypeAppAbo, "xbox", "xbox game pass"),
	company("Nintendo", model.TypeAppAbo, "nintendo"),
	company("EpicGames", model.TypeAppAbo, "epic games", "epicgames"),

	// Nischendienste.
	company("NanoBanana", model.TypeAppAbo, "nano banana", "nanobanana"),
}

// Companies returns the ordered static catalog. Callers must not mutate the
// returned slice.
func Companies() []model.Company {
	return standard
}

// Lookup scans records in order and returns the first whose any keyword is a
// substring of the lowercased text. No scoring: first match wins.
func Lookup(records []model.Company, lowerText string) (model.Company, bool) {
	for _, c := range records {
		if _, ok := c.Matches(lowerText); ok {
			return c, true
		}
	}
	return model.Company{}, false
}
