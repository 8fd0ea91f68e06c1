package location

// Static gazetteer: each state's constituent cities and major suburbs,
// by display name. Loaded once at init into lookup tables; treated as
// read-only reference data from then on.
//
// The list covers the capitals plus the regional centres postings
// actually come from. Extending it is a data change, not a code change.
var gazetteer = map[StateCode][]string{
	StateNSW: {
		"Sydney", "Newcastle", "Wollongong", "Central Coast", "Parramatta",
		"Penrith", "Liverpool", "Coffs Harbour", "Wagga Wagga", "Albury",
		"Port Macquarie", "Tamworth", "Orange", "Dubbo",
	},
	StateVIC: {
		"Melbourne", "Geelong", "Ballarat", "Bendigo", "Shepparton",
		"Mildura", "Warrnambool", "Traralgon", "Frankston", "Dandenong",
	},
	StateQLD: {
		"Brisbane", "Gold Coast", "Sunshine Coast", "Townsville", "Cairns",
		"Toowoomba", "Mackay", "Rockhampton", "Bundaberg", "Hervey Bay",
	},
	StateSA: {
		"Adelaide", "Mount Gambier", "Whyalla", "Murray Bridge",
		"Port Lincoln", "Port Augusta",
	},
	StateWA: {
		"Perth", "Bunbury", "Geraldton", "Kalgoorlie", "Albany",
		"Mandurah", "Broome",
	},
	StateTAS: {
		"Hobart", "Launceston", "Devonport", "Burnie",
	},
	StateNT: {
		"Darwin", "Alice Springs", "Katherine", "Palmerston",
	},
	StateACT: {
		"Canberra", "Belconnen", "Tuggeranong", "Gungahlin",
	},
}

// entry is one gazetteer row, precomputed at init for matching.
type entry struct {
	display string    // "Central Coast"
	slug    string    // "central-coast"
	state   StateCode // NSW
}

// entries holds the flattened gazetteer in state order, cities in the
// order declared above. cityStates maps a city slug to every state that
// contains it, for resolving bare city queries.
var (
	entries    []entry
	cityStates map[string][]StateCode
)

func init() {
	cityStates = make(map[string][]StateCode)
	for _, state := range AllStates() {
		for _, city := range gazetteer[state] {
			slug := SlugifyCity(city)
			entries = append(entries, entry{display: city, slug: slug, state: state})
			cityStates[slug] = append(cityStates[slug], state)
		}
	}
}

// AllLocations returns the full gazetteer as canonical city/state pairs,
// grouped by state in display order. The slice is rebuilt per call so
// callers may not corrupt the reference table.
func AllLocations() []CanonicalLocation {
	out := make([]CanonicalLocation, 0, len(entries))
	for _, e := range entries {
		out = append(out, CanonicalLocation{City: e.slug, State: e.state})
	}
	return out
}

// statesForCity returns every state containing the given city slug.
// Most slugs resolve to exactly one state; an empty result means the
// city is not in the gazetteer.
func statesForCity(slug string) []StateCode {
	return cityStates[slug]
}
