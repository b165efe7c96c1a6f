package tzdata

import "time"

// Record describes a single zone in the reference tables. Records are
// immutable for the process lifetime; every lookup structure in this package
// is derived from the Records slice at load time.
type Record struct {
	// ID is the canonical IANA identifier, Region/City form.
	ID string
	// WindowsID is the platform-native alternate identifier, empty when the
	// zone has no Windows mapping.
	WindowsID string
	// Abbreviations holds the short designators commonly used for the zone,
	// standard and daylight variants both.
	Abbreviations []string
	// DisplayName is the human-facing name used for substring matching.
	DisplayName string
	// BaseOffset is the standard (non-DST) offset from UTC.
	BaseOffset time.Duration
	// SupportsDST reports whether the zone currently observes daylight
	// saving transitions.
	SupportsDST bool
	// Countries lists the ISO 3166-1 alpha-2 codes the zone serves.
	Countries []string
}

func offset(hours, minutes int) time.Duration {
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if hours < 0 {
		d = time.Duration(hours)*time.Hour - time.Duration(minutes)*time.Minute
	}

	return d
}

// records is the canonical zone table. Declaration order is the scan order
// for every first-match lookup, so genuinely ambiguous abbreviations and
// offsets resolve to the earliest entry here.
var records = []Record{
	{ID: "UTC", DisplayName: "Coordinated Universal Time", BaseOffset: 0, Abbreviations: []string{"UTC"}},

	// Americas
	{ID: "America/New_York", WindowsID: "Eastern Standard Time", DisplayName: "US Eastern Time (New York, Toronto)", BaseOffset: offset(-5, 0), SupportsDST: true, Abbreviations: []string{"EST", "EDT", "ET"}, Countries: []string{"US", "CA"}},
	{ID: "America/Chicago", WindowsID: "Central Standard Time", DisplayName: "US Central Time (Chicago, Houston)", BaseOffset: offset(-6, 0), SupportsDST: true, Abbreviations: []string{"CST", "CDT", "CT"}, Countries: []string{"US"}},
	{ID: "America/Denver", WindowsID: "Mountain Standard Time", DisplayName: "US Mountain Time (Denver)", BaseOffset: offset(-7, 0), SupportsDST: true, Abbreviations: []string{"MST", "MDT", "MT"}, Countries: []string{"US"}},
	{ID: "America/Phoenix", WindowsID: "US Mountain Standard Time", DisplayName: "US Mountain Time (Phoenix, no DST)", BaseOffset: offset(-7, 0), Countries: []string{"US"}},
	{ID: "America/Los_Angeles", WindowsID: "Pacific Standard Time", DisplayName: "US Pacific Time (Los Angeles, Seattle)", BaseOffset: offset(-8, 0), SupportsDST: true, Abbreviations: []string{"PST", "PDT", "PT"}, Countries: []string{"US"}},
	{ID: "America/Anchorage", WindowsID: "Alaskan Standard Time", DisplayName: "Alaska Time (Anchorage)", BaseOffset: offset(-9, 0), SupportsDST: true, Abbreviations: []string{"AKST", "AKDT"}, Countries: []string{"US"}},
	{ID: "Pacific/Honolulu", WindowsID: "Hawaiian Standard Time", DisplayName: "Hawaii Time (Honolulu)", BaseOffset: offset(-10, 0), Abbreviations: []string{"HST"}, Countries: []string{"US"}},
	{ID: "America/Halifax", WindowsID: "Atlantic Standard Time", DisplayName: "Atlantic Time (Halifax)", BaseOffset: offset(-4, 0), SupportsDST: true, Abbreviations: []string{"AST", "ADT"}, Countries: []string{"CA"}},
	{ID: "America/St_Johns", WindowsID: "Newfoundland Standard Time", DisplayName: "Newfoundland Time (St. John's)", BaseOffset: offset(-3, 30), SupportsDST: true, Abbreviations: []string{"NST", "NDT"}, Countries: []string{"CA"}},
	{ID: "America/Mexico_City", WindowsID: "Central Standard Time (Mexico)", DisplayName: "Mexico Central Time (Mexico City)", BaseOffset: offset(-6, 0), Countries: []string{"MX"}},
	{ID: "America/Sao_Paulo", WindowsID: "E. South America Standard Time", DisplayName: "Brazil Eastern Time (Sao Paulo, Rio)", BaseOffset: offset(-3, 0), Abbreviations: []string{"BRT"}, Countries: []string{"BR"}},
	{ID: "America/Argentina/Buenos_Aires", WindowsID: "Argentina Standard Time", DisplayName: "Argentina Time (Buenos Aires)", BaseOffset: offset(-3, 0), Abbreviations: []string{"ART"}, Countries: []string{"AR"}},
	{ID: "America/Santiago", WindowsID: "Pacific SA Standard Time", DisplayName: "Chile Time (Santiago)", BaseOffset: offset(-4, 0), SupportsDST: true, Countries: []string{"CL"}},
	{ID: "America/Bogota", WindowsID: "SA Pacific Standard Time", DisplayName: "Colombia Time (Bogota)", BaseOffset: offset(-5, 0), Abbreviations: []string{"COT"}, Countries: []string{"CO"}},
	{ID: "America/Lima", DisplayName: "Peru Time (Lima)", BaseOffset: offset(-5, 0), Abbreviations: []string{"PET"}, Countries: []string{"PE"}},
	{ID: "America/Caracas", WindowsID: "Venezuela Standard Time", DisplayName: "Venezuela Time (Caracas)", BaseOffset: offset(-4, 0), Abbreviations: []string{"VET"}, Countries: []string{"VE"}},
	{ID: "Pacific/Pago_Pago", DisplayName: "Samoa Standard Time (Pago Pago)", BaseOffset: offset(-11, 0), Abbreviations: []string{"SST"}, Countries: []string{"AS"}},

	// Europe
	{ID: "Europe/London", WindowsID: "GMT Standard Time", DisplayName: "UK Time (London, Edinburgh)", BaseOffset: 0, SupportsDST: true, Abbreviations: []string{"GMT", "BST"}, Countries: []string{"GB"}},
	{ID: "Europe/Dublin", DisplayName: "Ireland Time (Dublin)", BaseOffset: 0, SupportsDST: true, Countries: []string{"IE"}},
	{ID: "Europe/Lisbon", DisplayName: "Portugal Time (Lisbon)", BaseOffset: 0, SupportsDST: true, Abbreviations: []string{"WET", "WEST"}, Countries: []string{"PT"}},
	{ID: "Atlantic/Reykjavik", DisplayName: "Iceland Time (Reykjavik)", BaseOffset: 0, Countries: []string{"IS"}},
	{ID: "Europe/Paris", WindowsID: "Romance Standard Time", DisplayName: "Central European Time (Paris)", BaseOffset: offset(1, 0), SupportsDST: true, Abbreviations: []string{"CET", "CEST"}, Countries: []string{"FR"}},
	{ID: "Europe/Berlin", WindowsID: "W. Europe Standard Time", DisplayName: "Central European Time (Berlin, Frankfurt)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"DE"}},
	{ID: "Europe/Madrid", DisplayName: "Spain Time (Madrid, Barcelona)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"ES"}},
	{ID: "Europe/Rome", DisplayName: "Italy Time (Rome, Milan)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"IT"}},
	{ID: "Europe/Amsterdam", DisplayName: "Netherlands Time (Amsterdam)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"NL"}},
	{ID: "Europe/Brussels", DisplayName: "Belgium Time (Brussels)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"BE"}},
	{ID: "Europe/Zurich", DisplayName: "Switzerland Time (Zurich, Geneva)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"CH"}},
	{ID: "Europe/Stockholm", DisplayName: "Sweden Time (Stockholm)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"SE"}},
	{ID: "Europe/Oslo", DisplayName: "Norway Time (Oslo)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"NO"}},
	{ID: "Europe/Copenhagen", DisplayName: "Denmark Time (Copenhagen)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"DK"}},
	{ID: "Europe/Warsaw", WindowsID: "Central European Standard Time", DisplayName: "Poland Time (Warsaw)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"PL"}},
	{ID: "Europe/Prague", DisplayName: "Czech Time (Prague)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"CZ"}},
	{ID: "Europe/Vienna", DisplayName: "Austria Time (Vienna)", BaseOffset: offset(1, 0), SupportsDST: true, Countries: []string{"AT"}},
	{ID: "Europe/Athens", WindowsID: "GTB Standard Time", DisplayName: "Greece Time (Athens)", BaseOffset: offset(2, 0), SupportsDST: true, Abbreviations: []string{"EET", "EEST"}, Countries: []string{"GR"}},
	{ID: "Europe/Helsinki", WindowsID: "FLE Standard Time", DisplayName: "Finland Time (Helsinki)", BaseOffset: offset(2, 0), SupportsDST: true, Countries: []string{"FI"}},
	{ID: "Europe/Bucharest", DisplayName: "Romania Time (Bucharest)", BaseOffset: offset(2, 0), SupportsDST: true, Countries: []string{"RO"}},
	{ID: "Europe/Kyiv", DisplayName: "Ukraine Time (Kyiv)", BaseOffset: offset(2, 0), SupportsDST: true, Countries: []string{"UA"}},
	{ID: "Europe/Istanbul", WindowsID: "Turkey Standard Time", DisplayName: "Turkey Time (Istanbul)", BaseOffset: offset(3, 0), Abbreviations: []string{"TRT"}, Countries: []string{"TR"}},
	{ID: "Europe/Moscow", WindowsID: "Russian Standard Time", DisplayName: "Moscow Time (Moscow, St. Petersburg)", BaseOffset: offset(3, 0), Abbreviations: []string{"MSK"}, Countries: []string{"RU"}},

	// Africa
	{ID: "Africa/Cairo", WindowsID: "Egypt Standard Time", DisplayName: "Egypt Time (Cairo)", BaseOffset: offset(2, 0), SupportsDST: true, Countries: []string{"EG"}},
	{ID: "Africa/Johannesburg", WindowsID: "South Africa Standard Time", DisplayName: "South Africa Time (Johannesburg, Cape Town)", BaseOffset: offset(2, 0), Abbreviations: []string{"SAST"}, Countries: []string{"ZA"}},
	{ID: "Africa/Lagos", DisplayName: "West Africa Time (Lagos)", BaseOffset: offset(1, 0), Abbreviations: []string{"WAT"}, Countries: []string{"NG"}},
	{ID: "Africa/Nairobi", WindowsID: "E. Africa Standard Time", DisplayName: "East Africa Time (Nairobi)", BaseOffset: offset(3, 0), Abbreviations: []string{"EAT"}, Countries: []string{"KE"}},
	{ID: "Africa/Casablanca", DisplayName: "Morocco Time (Casablanca)", BaseOffset: offset(1, 0), Countries: []string{"MA"}},

	// Middle East and Central Asia
	{ID: "Asia/Jerusalem", WindowsID: "Israel Standard Time", DisplayName: "Israel Time (Jerusalem, Tel Aviv)", BaseOffset: offset(2, 0), SupportsDST: true, Abbreviations: []string{"IDT"}, Countries: []string{"IL"}},
	{ID: "Asia/Riyadh", WindowsID: "Arab Standard Time", DisplayName: "Arabia Time (Riyadh)", BaseOffset: offset(3, 0), Countries: []string{"SA"}},
	{ID: "Asia/Dubai", WindowsID: "Arabian Standard Time", DisplayName: "Gulf Time (Dubai, Abu Dhabi)", BaseOffset: offset(4, 0), Abbreviations: []string{"GST"}, Countries: []string{"AE"}},
	{ID: "Asia/Tehran", WindowsID: "Iran Standard Time", DisplayName: "Iran Time (Tehran)", BaseOffset: offset(3, 30), Abbreviations: []string{"IRST"}, Countries: []string{"IR"}},
	{ID: "Asia/Kabul", WindowsID: "Afghanistan Standard Time", DisplayName: "Afghanistan Time (Kabul)", BaseOffset: offset(4, 30), Countries: []string{"AF"}},
	{ID: "Asia/Karachi", WindowsID: "Pakistan Standard Time", DisplayName: "Pakistan Time (Karachi, Lahore)", BaseOffset: offset(5, 0), Abbreviations: []string{"PKT"}, Countries: []string{"PK"}},
	{ID: "Asia/Kolkata", WindowsID: "India Standard Time", DisplayName: "India Time (Mumbai, Delhi, Bangalore)", BaseOffset: offset(5, 30), Abbreviations: []string{"IST"}, Countries: []string{"IN"}},
	{ID: "Asia/Colombo", WindowsID: "Sri Lanka Standard Time", DisplayName: "Sri Lanka Time (Colombo)", BaseOffset: offset(5, 30), Countries: []string{"LK"}},
	{ID: "Asia/Kathmandu", WindowsID: "Nepal Standard Time", DisplayName: "Nepal Time (Kathmandu)", BaseOffset: offset(5, 45), Abbreviations: []string{"NPT"}, Countries: []string{"NP"}},
	{ID: "Asia/Dhaka", WindowsID: "Bangladesh Standard Time", DisplayName: "Bangladesh Time (Dhaka)", BaseOffset: offset(6, 0), Abbreviations: []string{"BST"}, Countries: []string{"BD"}},
	{ID: "Asia/Yangon", WindowsID: "Myanmar Standard Time", DisplayName: "Myanmar Time (Yangon)", BaseOffset: offset(6, 30), Abbreviations: []string{"MMT"}, Countries: []string{"MM"}},

	// East and Southeast Asia
	{ID: "Asia/Bangkok", WindowsID: "SE Asia Standard Time", DisplayName: "Indochina Time (Bangkok, Hanoi)", BaseOffset: offset(7, 0), Abbreviations: []string{"ICT"}, Countries: []string{"TH", "VN"}},
	{ID: "Asia/Jakarta", DisplayName: "Western Indonesia Time (Jakarta)", BaseOffset: offset(7, 0), Abbreviations: []string{"WIB"}, Countries: []string{"ID"}},
	{ID: "Asia/Shanghai", WindowsID: "China Standard Time", DisplayName: "China Time (Beijing, Shanghai, Shenzhen)", BaseOffset: offset(8, 0), Countries: []string{"CN"}},
	{ID: "Asia/Hong_Kong", DisplayName: "Hong Kong Time", BaseOffset: offset(8, 0), Abbreviations: []string{"HKT"}, Countries: []string{"HK"}},
	{ID: "Asia/Taipei", WindowsID: "Taipei Standard Time", DisplayName: "Taiwan Time (Taipei)", BaseOffset: offset(8, 0), Countries: []string{"TW"}},
	{ID: "Asia/Singapore", WindowsID: "Singapore Standard Time", DisplayName: "Singapore Time", BaseOffset: offset(8, 0), Abbreviations: []string{"SGT"}, Countries: []string{"SG"}},
	{ID: "Asia/Kuala_Lumpur", DisplayName: "Malaysia Time (Kuala Lumpur)", BaseOffset: offset(8, 0), Abbreviations: []string{"MYT"}, Countries: []string{"MY"}},
	{ID: "Asia/Manila", DisplayName: "Philippines Time (Manila)", BaseOffset: offset(8, 0), Abbreviations: []string{"PHT"}, Countries: []string{"PH"}},
	{ID: "Australia/Perth", WindowsID: "W. Australia Standard Time", DisplayName: "Australian Western Time (Perth)", BaseOffset: offset(8, 0), Abbreviations: []string{"AWST"}, Countries: []string{"AU"}},
	{ID: "Asia/Tokyo", WindowsID: "Tokyo Standard Time", DisplayName: "Japan Time (Tokyo, Osaka)", BaseOffset: offset(9, 0), Abbreviations: []string{"JST"}, Countries: []string{"JP"}},
	{ID: "Asia/Seoul", WindowsID: "Korea Standard Time", DisplayName: "Korea Time (Seoul)", BaseOffset: offset(9, 0), Abbreviations: []string{"KST"}, Countries: []string{"KR"}},

	// Oceania
	{ID: "Australia/Adelaide", WindowsID: "Cen. Australia Standard Time", DisplayName: "Australian Central Time (Adelaide)", BaseOffset: offset(9, 30), SupportsDST: true, Abbreviations: []string{"ACST", "ACDT"}, Countries: []string{"AU"}},
	{ID: "Australia/Darwin", WindowsID: "AUS Central Standard Time", DisplayName: "Australian Central Time (Darwin, no DST)", BaseOffset: offset(9, 30), Countries: []string{"AU"}},
	{ID: "Australia/Sydney", WindowsID: "AUS Eastern Standard Time", DisplayName: "Australian Eastern Time (Sydney, Melbourne)", BaseOffset: offset(10, 0), SupportsDST: true, Abbreviations: []string{"AEST", "AEDT"}, Countries: []string{"AU"}},
	{ID: "Australia/Brisbane", WindowsID: "E. Australia Standard Time", DisplayName: "Australian Eastern Time (Brisbane, no DST)", BaseOffset: offset(10, 0), Countries: []string{"AU"}},
	{ID: "Pacific/Auckland", WindowsID: "New Zealand Standard Time", DisplayName: "New Zealand Time (Auckland, Wellington)", BaseOffset: offset(12, 0), SupportsDST: true, Abbreviations: []string{"NZST", "NZDT"}, Countries: []string{"NZ"}},
	{ID: "Pacific/Fiji", WindowsID: "Fiji Standard Time", DisplayName: "Fiji Time (Suva)", BaseOffset: offset(12, 0), Countries: []string{"FJ"}},
	{ID: "Pacific/Apia", DisplayName: "Samoa Time (Apia)", BaseOffset: offset(13, 0), Countries: []string{"WS"}},
}

// cities maps lowercase city names to canonical ids, including major cities
// that are not the city segment of their zone id.
var cities = map[string]string{
	"new york":     "America/New_York",
	"toronto":      "America/New_York",
	"chicago":      "America/Chicago",
	"houston":      "America/Chicago",
	"denver":       "America/Denver",
	"phoenix":      "America/Phoenix",
	"los angeles":  "America/Los_Angeles",
	"seattle":      "America/Los_Angeles",
	"anchorage":    "America/Anchorage",
	"honolulu":     "Pacific/Honolulu",
	"halifax":      "America/Halifax",
	"mexico city":  "America/Mexico_City",
	"sao paulo":    "America/Sao_Paulo",
	"buenos aires": "America/Argentina/Buenos_Aires",
	"santiago":     "America/Santiago",
	"bogota":       "America/Bogota",
	"lima":         "America/Lima",
	"caracas":      "America/Caracas",
	"london":       "Europe/London",
	"edinburgh":    "Europe/London",
	"dublin":       "Europe/Dublin",
	"lisbon":       "Europe/Lisbon",
	"reykjavik":    "Atlantic/Reykjavik",
	"paris":        "Europe/Paris",
	"berlin":       "Europe/Berlin",
	"frankfurt":    "Europe/Berlin",
	"madrid":       "Europe/Madrid",
	"barcelona":    "Europe/Madrid",
	"rome":         "Europe/Rome",
	"milan":        "Europe/Rome",
	"amsterdam":    "Europe/Amsterdam",
	"brussels":     "Europe/Brussels",
	"zurich":       "Europe/Zurich",
	"geneva":       "Europe/Zurich",
	"stockholm":    "Europe/Stockholm",
	"oslo":         "Europe/Oslo",
	"copenhagen":   "Europe/Copenhagen",
	"warsaw":       "Europe/Warsaw",
	"prague":       "Europe/Prague",
	"vienna":       "Europe/Vienna",
	"athens":       "Europe/Athens",
	"helsinki":     "Europe/Helsinki",
	"bucharest":    "Europe/Bucharest",
	"kyiv":         "Europe/Kyiv",
	"istanbul":     "Europe/Istanbul",
	"moscow":       "Europe/Moscow",
	"cairo":        "Africa/Cairo",
	"johannesburg": "Africa/Johannesburg",
	"cape town":    "Africa/Johannesburg",
	"lagos":        "Africa/Lagos",
	"nairobi":      "Africa/Nairobi",
	"casablanca":   "Africa/Casablanca",
	"jerusalem":    "Asia/Jerusalem",
	"tel aviv":     "Asia/Jerusalem",
	"riyadh":       "Asia/Riyadh",
	"dubai":        "Asia/Dubai",
	"abu dhabi":    "Asia/Dubai",
	"tehran":       "Asia/Tehran",
	"kabul":        "Asia/Kabul",
	"karachi":      "Asia/Karachi",
	"lahore":       "Asia/Karachi",
	"mumbai":       "Asia/Kolkata",
	"delhi":        "Asia/Kolkata",
	"bangalore":    "Asia/Kolkata",
	"kolkata":      "Asia/Kolkata",
	"colombo":      "Asia/Colombo",
	"kathmandu":    "Asia/Kathmandu",
	"dhaka":        "Asia/Dhaka",
	"yangon":       "Asia/Yangon",
	"bangkok":      "Asia/Bangkok",
	"hanoi":        "Asia/Bangkok",
	"jakarta":      "Asia/Jakarta",
	"beijing":      "Asia/Shanghai",
	"shanghai":     "Asia/Shanghai",
	"shenzhen":     "Asia/Shanghai",
	"hong kong":    "Asia/Hong_Kong",
	"taipei":       "Asia/Taipei",
	"singapore":    "Asia/Singapore",
	"kuala lumpur": "Asia/Kuala_Lumpur",
	"manila":       "Asia/Manila",
	"perth":        "Australia/Perth",
	"tokyo":        "Asia/Tokyo",
	"osaka":        "Asia/Tokyo",
	"seoul":        "Asia/Seoul",
	"adelaide":     "Australia/Adelaide",
	"darwin":       "Australia/Darwin",
	"sydney":       "Australia/Sydney",
	"melbourne":    "Australia/Sydney",
	"brisbane":     "Australia/Brisbane",
	"auckland":     "Pacific/Auckland",
	"wellington":   "Pacific/Auckland",
	"suva":         "Pacific/Fiji",
	"apia":         "Pacific/Apia",
}

// commonZones is the curated list surfaced to pickers, most-used first.
var commonZones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Moscow",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Singapore",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// displayOverrides takes precedence over record display names in
// friendly-name lookups.
var displayOverrides = map[string]string{
	"UTC":                 "Coordinated Universal Time",
	"America/New_York":    "Eastern Time (US & Canada)",
	"America/Chicago":     "Central Time (US & Canada)",
	"America/Denver":      "Mountain Time (US & Canada)",
	"America/Los_Angeles": "Pacific Time (US & Canada)",
	"Europe/London":       "London, Edinburgh",
	"Asia/Kolkata":        "Chennai, Kolkata, Mumbai, New Delhi",
}
