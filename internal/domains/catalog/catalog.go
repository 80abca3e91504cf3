// Package catalog holds the fixed table of timezones the API offers.
package catalog

const (
	RegionNorthAmerica     = "North America"
	RegionEurope           = "Europe"
	RegionAsia             = "Asia"
	RegionAustraliaOceania = "Australia & Oceania"
	RegionAfrica           = "Africa"
	RegionSouthAmerica     = "South America"
)

// Entry describes one catalog timezone. ID is the IANA identifier.
type Entry struct {
	ID     string
	Name   string
	Region string
}

var entries = []Entry{
	{ID: "America/New_York", Name: "New York", Region: RegionNorthAmerica},
	{ID: "America/Chicago", Name: "Chicago", Region: RegionNorthAmerica},
	{ID: "America/Denver", Name: "Denver", Region: RegionNorthAmerica},
	{ID: "America/Los_Angeles", Name: "Los Angeles", Region: RegionNorthAmerica},
	{ID: "America/Vancouver", Name: "Vancouver", Region: RegionNorthAmerica},
	{ID: "America/Toronto", Name: "Toronto", Region: RegionNorthAmerica},
	{ID: "America/Mexico_City", Name: "Mexico City", Region: RegionNorthAmerica},

	{ID: "Europe/London", Name: "London", Region: RegionEurope},
	{ID: "Europe/Paris", Name: "Paris", Region: RegionEurope},
	{ID: "Europe/Berlin", Name: "Berlin", Region: RegionEurope},
	{ID: "Europe/Rome", Name: "Rome", Region: RegionEurope},
	{ID: "Europe/Madrid", Name: "Madrid", Region: RegionEurope},
	{ID: "Europe/Amsterdam", Name: "Amsterdam", Region: RegionEurope},
	{ID: "Europe/Zurich", Name: "Zurich", Region: RegionEurope},
	{ID: "Europe/Vienna", Name: "Vienna", Region: RegionEurope},
	{ID: "Europe/Stockholm", Name: "Stockholm", Region: RegionEurope},
	{ID: "Europe/Helsinki", Name: "Helsinki", Region: RegionEurope},
	{ID: "Europe/Moscow", Name: "Moscow", Region: RegionEurope},

	{ID: "Asia/Tokyo", Name: "Tokyo", Region: RegionAsia},
	{ID: "Asia/Seoul", Name: "Seoul", Region: RegionAsia},
	{ID: "Asia/Shanghai", Name: "Shanghai", Region: RegionAsia},
	{ID: "Asia/Hong_Kong", Name: "Hong Kong", Region: RegionAsia},
	{ID: "Asia/Singapore", Name: "Singapore", Region: RegionAsia},
	{ID: "Asia/Bangkok", Name: "Bangkok", Region: RegionAsia},
	{ID: "Asia/Jakarta", Name: "Jakarta", Region: RegionAsia},
	{ID: "Asia/Manila", Name: "Manila", Region: RegionAsia},
	{ID: "Asia/Kuala_Lumpur", Name: "Kuala Lumpur", Region: RegionAsia},
	{ID: "Asia/Dubai", Name: "Dubai", Region: RegionAsia},
	{ID: "Asia/Riyadh", Name: "Riyadh", Region: RegionAsia},
	{ID: "Asia/Tehran", Name: "Tehran", Region: RegionAsia},
	{ID: "Asia/Kolkata", Name: "Kolkata", Region: RegionAsia},
	{ID: "Asia/Dhaka", Name: "Dhaka", Region: RegionAsia},
	{ID: "Asia/Karachi", Name: "Karachi", Region: RegionAsia},

	{ID: "Australia/Sydney", Name: "Sydney", Region: RegionAustraliaOceania},
	{ID: "Australia/Melbourne", Name: "Melbourne", Region: RegionAustraliaOceania},
	{ID: "Australia/Brisbane", Name: "Brisbane", Region: RegionAustraliaOceania},
	{ID: "Australia/Perth", Name: "Perth", Region: RegionAustraliaOceania},
	{ID: "Pacific/Auckland", Name: "Auckland", Region: RegionAustraliaOceania},
	{ID: "Pacific/Honolulu", Name: "Honolulu", Region: RegionAustraliaOceania},

	{ID: "Africa/Cairo", Name: "Cairo", Region: RegionAfrica},
	{ID: "Africa/Lagos", Name: "Lagos", Region: RegionAfrica},
	{ID: "Africa/Johannesburg", Name: "Johannesburg", Region: RegionAfrica},
	{ID: "Africa/Nairobi", Name: "Nairobi", Region: RegionAfrica},
	{ID: "Africa/Casablanca", Name: "Casablanca", Region: RegionAfrica},

	{ID: "America/Sao_Paulo", Name: "São Paulo", Region: RegionSouthAmerica},
	{ID: "America/Argentina/Buenos_Aires", Name: "Buenos Aires", Region: RegionSouthAmerica},
	{ID: "America/Lima", Name: "Lima", Region: RegionSouthAmerica},
	{ID: "America/Bogota", Name: "Bogotá", Region: RegionSouthAmerica},
	{ID: "America/Santiago", Name: "Santiago", Region: RegionSouthAmerica},
}

var index = buildIndex(entries)

func buildIndex(list []Entry) map[string]int {
	idx := make(map[string]int, len(list))
	for i, entry := range list {
		idx[entry.ID] = i
	}

	return idx
}

// List returns every entry in declaration order. The slice is a copy.
func List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// Lookup finds an entry by exact identifier.
func Lookup(id string) (Entry, bool) {
	i, ok := index[id]
	if !ok {
		return Entry{}, false
	}

	return entries[i], true
}

func Exists(id string) bool {
	_, ok := index[id]

	return ok
}

// NameOf returns the catalog display name of id, or id itself when it is not cataloged.
func NameOf(id string) string {
	if entry, ok := Lookup(id); ok {
		return entry.Name
	}

	return id
}
