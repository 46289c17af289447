package render

// DefaultAmenityIcon is used for names missing from the table.
const DefaultAmenityIcon = "🏠"

var amenityIcons = map[string]string{
	"WiFi":                   "📶",
	"Air Conditioning":       "❄️",
	"Swimming Pool":          "🏊‍♀️",
	"Gym":                    "🏋️‍♀️",
	"Parking":                "🅿️",
	"Kitchen":                "🍳",
	"Washing Machine":        "🧺",
	"TV":                     "📺",
	"Balcony":                "🪴",
	"Pet Friendly":           "🐕",
	"Smoking Allowed":        "🚬",
	"Fireplace":              "🔥",
	"Pool":                   "🏊‍♀️",
	"Ocean View":             "🌊",
	"Beach Access":           "🏖️",
	"Private Beach":          "🏖️",
	"Spa":                    "💆‍♀️",
	"Spa Services":           "💆‍♀️",
	"Hot Tub":                "🛀",
	"Sauna":                  "🧖‍♀️",
	"Garden":                 "🌿",
	"Terrace":                "🪴",
	"Deck":                   "🪵",
	"Grill":                  "🔥",
	"BBQ":                    "🔥",
	"Game Room":              "🎮",
	"Library":                "📚",
	"Office":                 "💼",
	"Laundry":                "🧺",
	"Dryer":                  "🌪️",
	"Iron":                   "🔧",
	"Hair Dryer":             "💇‍♀️",
	"Safe":                   "🔒",
	"First Aid Kit":          "🩹",
	"Elevator":               "🛗",
	"Wheelchair Accessible":  "♿",
	"Family Friendly":        "👨‍👩‍👧‍👦",
	"Quiet Area":             "🤫",
	"No Smoking":             "🚭",
	"Adults Only":            "🔞",
	"Private Dock":           "⚓",
	"Yacht Access":           "🛥️",
	"Water Sports Equipment": "🏄‍♀️",
	"Infinity Pool":          "🏊‍♀️",
	"Personal Chef":          "👨‍🍳",
}

// AmenityIcon looks name up exactly (case-sensitive).
func AmenityIcon(name string) string {
	if icon, ok := amenityIcons[name]; ok {
		return icon
	}
	return DefaultAmenityIcon
}
