package product

// knownProduct is one entry of the ordered product table. The first entry
// whose any keyword occurs in the lowercased text wins.
type knownProduct struct {
	name     string
	keywords []string
}

var knownProducts = []knownProduct{
	// Stock Photos & Creative.
	{"Unsplash+", []string{"unsplash+", "unsplash plus", "unsplash subscription"}},
	{"Shutterstock", []string{"shutterstock"}},
	{"iStock", []string{"istock"}},
	{"AdobeStock", []string{"adobe stock"}},
	{"Envato", []string{"envato elements"}},

	// Hardware-Abos.
	{"InstantInk", []string{"instant ink", "instantink", "hp instant"}},

	// Produktivität & AI.
	{"Perplexity", []string{"perplexity"}},
	{"ChatGPT", []string{"chatgpt", "openai"}},
	{"Claude", []string{"claude", "anthropic"}},
	{"Notion", []string{"notion"}},
	{"Todoist", []string{"todoist"}},
	{"Things", []string{"things 3", "things3"}},
	{"Bear", []string{"bear app", "bear writer"}},
	{"Ulysses", []string{"ulysses"}},
	{"iAWriter", []string{"ia writer"}},
	{"Craft", []string{"craft docs", "craft -"}},
	{"GoodNotes", []string{"goodnotes"}},
	{"Notability", []string{"notability"}},
	{"Scanner Pro", []string{"scanner pro"}},
	{"PDF Expert", []string{"pdf expert"}},
	{"Fantastical", []string{"fantastical"}},
	{"Cardhop", []string{"cardhop"}},
	{"Spark", []string{"spark mail", "spark email"}},
	{"Airmail", []string{"airmail"}},
	{"DirEqual", []string{"direqual"}},

	// Streaming über Amazon Channels.
	{"ARDPlus", []string{"ard plus", "ard+"}},
	{"ZDFplus", []string{"zdf plus", "zdf+"}},
	{"ZattooPremium", []string{"zattoo premium"}},
	{"RTLplus", []string{"rtl+", "rtl plus"}},
	{"Joyn", []string{"joyn plus", "joyn+"}},
	{"WOW", []string{"wow tv", "wow streaming"}},

	// Streaming & Medien.
	{"Netflix", []string{"netflix"}},
	{"Spotify", []string{"spotify"}},
	{"YouTubePremium", []string{"youtube premium", "youtube music"}},
	{"AppleMusic", []string{"apple music"}},
	{"AppleTV", []string{"apple tv+", "apple tv plus"}},
	{"DisneyPlus", []string{"disney+", "disney plus"}},
	{"AmazonPrime", []string{"amazon prime", "prime video"}},
	{"Zattoo", []string{"zattoo"}},
	{"Crunchyroll", []string{"crunchyroll"}},
	{"Audible", []string{"audible"}},
	{"Kindle", []string{"kindle unlimited"}},
	{"AppleArcade", []string{"apple arcade"}},
	{"AppleNews", []string{"apple news+"}},
	{"AppleFitness", []string{"apple fitness+", "fitness+"}},

	// Cloud & Speicher.
	{"iCloud", []string{"icloud", "icloud+"}},
	{"GoogleOne", []string{"google one"}},
	{"Dropbox", []string{"dropbox"}},
	{"OneDrive", []string{"onedrive", "microsoft onedrive"}},
	{"pCloud", []string{"pcloud"}},

	// Passwort & Sicherheit.
	{"1Password", []string{"1password"}},
	{"Bitwarden", []string{"bitwarden"}},
	{"Dashlane", []string{"dashlane"}},
	{"NordVPN", []string{"nordvpn"}},
	{"ExpressVPN", []string{"expressvpn"}},
	{"Surfshark", []string{"surfshark"}},

	// Foto & Video.
	{"Lightroom", []string{"lightroom"}},
	{"Darkroom", []string{"darkroom"}},
	{"VSCO", []string{"vsco"}},
	{"Halide", []string{"halide"}},
	{"ProCamera", []string{"procamera"}},
	{"LumaFusion", []string{"lumafusion"}},
	{"Procreate", []string{"procreate"}},
	{"Affinity", []string{"affinity photo", "affinity designer"}},
	{"Pixelmator", []string{"pixelmator"}},
	{"Canva", []string{"canva"}},

	// Entwicklung.
	{"GitHub", []string{"github"}},
	{"GitLab", []string{"gitlab"}},
	{"Sourcetree", []string{"sourcetree"}},
	{"Tower", []string{"tower git"}},
	{"Kaleidoscope", []string{"kaleidoscope"}},
	{"Paw", []string{"paw api", "rapidapi"}},
	{"Proxyman", []string{"proxyman"}},
	{"TablePlus", []string{"tableplus"}},
	{"Sequel Pro", []string{"sequel pro"}},

	// Kommunikation.
	{"Zoom", []string{"zoom"}},
	{"Slack", []string{"slack"}},
	{"Discord", []string{"discord"}},
	{"Telegram", []string{"telegram premium"}},
	{"WhatsApp", []string{"whatsapp"}},

	// Fitness & Gesundheit.
	{"Strava", []string{"strava"}},
	{"Komoot", []string{"komoot"}},
	{"MyFitnessPal", []string{"myfitnesspal"}},
	{"Headspace", []string{"headspace"}},
	{"Calm", []string{"calm app", "calm -"}},

	// Finanzen.
	{"YNAB", []string{"ynab", "you need a budget"}},
	{"MoneyMoney", []string{"moneymoney"}},
	{"Finanzguru", []string{"finanzguru"}},

	// Wetter.
	{"Carrot", []string{"carrot weather"}},
	{"WeatherPro", []string{"weatherpro"}},

	// Nachrichten & Medien.
	{"DiePresse", []string{"die presse"}},
	{"DerStandard", []string{"der standard"}},
	{"NYTimes", []string{"new york times", "nytimes"}},
	{"Guardian", []string{"the guardian"}},
	{"Medium", []string{"medium membership"}},
	{"Economist", []string{"the economist"}},
	{"Readwise", []string{"readwise"}},
	{"Pocket", []string{"pocket premium"}},
	{"Instapaper", []string{"instapaper"}},
	{"Feedly", []string{"feedly"}},
	{"Reeder", []string{"reeder"}},

	// Spiele.
	{"Minecraft", []string{"minecraft"}},
	{"Monument Valley", []string{"monument valley"}},
	{"Alto", []string{"alto's adventure", "alto's odyssey"}},

	// Sonstiges.
	{"Duolingo", []string{"duolingo"}},
	{"Babbel", []string{"babbel"}},
	{"Setapp", []string{"setapp"}},
	{"CleanMyMac", []string{"cleanmymac"}},
	{"BetterTouchTool", []string{"bettertouchtool"}},
	{"Alfred", []string{"alfred powerpack"}},
	{"Raycast", []string{"raycast"}},
	{"Bartender", []string{"bartender"}},
	{"iStatMenus", []string{"istat menus"}},
	{"LittleSnitch", []string{"little snitch"}},
	{"TextExpander", []string{"textexpander"}},
	{"Keyboard Maestro", []string{"keyboard maestro"}},
	{"Hazel", []string{"hazel"}},
	{"PopClip", []string{"popclip"}},
	{"Paste", []string{"paste app"}},
	{"Copied", []string{"copied"}},
}
