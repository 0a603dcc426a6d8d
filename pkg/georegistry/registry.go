// pkg/georegistry/registry.go
package georegistry

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a registry from a JSON file and validates it.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse geo registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks the internal consistency of the tables.
func (r *Registry) Validate() error {
	if len(r.Cities) == 0 {
		return fmt.Errorf("geo registry has no cities")
	}
	known := make(map[string]bool, len(r.Cities))
	for _, c := range r.Cities {
		known[c] = true
	}
	for alias, canonical := range r.CityAliases {
		if !known[alias] {
			return fmt.Errorf("alias %q is not a known city", alias)
		}
		if !known[canonical] {
			return fmt.Errorf("alias %q resolves to unknown city %q", alias, canonical)
		}
	}
	regions := make(map[string]bool, len(r.StateRegions))
	for _, s := range r.StateRegions {
		regions[s] = true
	}
	for city, region := range r.CityRegions {
		if !known[city] {
			return fmt.Errorf("city-region entry %q is not a known city", city)
		}
		if !regions[region] {
			return fmt.Errorf("city %q maps to unknown region %q", city, region)
		}
	}
	return nil
}

// Default returns the compiled-in registry used when no external file is
// configured. All entries are lower-case; extraction lower-cases addresses
// before matching.
func Default() *Registry {
	return &Registry{
		Version: "1.0",
		Cities: []string{
			"delhi", "new delhi", "mumbai", "bangalore", "bengaluru", "chennai", "kolkata",
			"hyderabad", "pune", "ahmedabad", "jaipur", "lucknow", "noida", "gurgaon",
			"gurugram", "chandigarh", "kochi", "indore", "nagpur", "ghaziabad", "faridabad",
			"dehradun", "haridwar", "rishikesh", "roorkee", "haldwani", "nainital", "mussoorie",
			"agra", "varanasi", "kanpur", "allahabad", "prayagraj", "meerut", "mathura",
			"udaipur", "jodhpur", "ajmer", "kota", "bikaner",
			"surat", "vadodara", "rajkot", "gandhinagar",
			"bhopal", "gwalior", "jabalpur",
			"visakhapatnam", "vijayawada", "coimbatore", "madurai", "mysore", "mangalore",
			"bhubaneswar", "patna", "ranchi", "raipur", "thiruvananthapuram", "kozhikode",
		},
		CityAliases: map[string]string{
			"bengaluru": "bangalore",
			"new delhi": "delhi",
			"gurugram":  "gurgaon",
			"prayagraj": "allahabad",
		},
		CityRegions: map[string]string{
			"delhi":              "delhi ncr",
			"noida":              "delhi ncr",
			"gurgaon":            "delhi ncr",
			"ghaziabad":          "delhi ncr",
			"faridabad":          "delhi ncr",
			"mumbai":             "maharashtra",
			"pune":               "maharashtra",
			"nagpur":             "maharashtra",
			"bangalore":          "karnataka",
			"mysore":             "karnataka",
			"mangalore":          "karnataka",
			"chennai":            "tamil nadu",
			"coimbatore":         "tamil nadu",
			"madurai":            "tamil nadu",
			"hyderabad":          "telangana",
			"kolkata":            "west bengal",
			"ahmedabad":          "gujarat",
			"surat":              "gujarat",
			"vadodara":           "gujarat",
			"jaipur":             "rajasthan",
			"udaipur":            "rajasthan",
			"jodhpur":            "rajasthan",
			"lucknow":            "uttar pradesh",
			"kanpur":             "uttar pradesh",
			"varanasi":           "uttar pradesh",
			"agra":               "uttar pradesh",
			"dehradun":           "uttarakhand",
			"haridwar":           "uttarakhand",
			"rishikesh":          "uttarakhand",
			"roorkee":            "uttarakhand",
			"haldwani":           "uttarakhand",
			"nainital":           "uttarakhand",
			"chandigarh":         "punjab",
			"kochi":              "kerala",
			"thiruvananthapuram": "kerala",
			"bhopal":             "madhya pradesh",
			"indore":             "madhya pradesh",
			"patna":              "bihar",
			"ranchi":             "jharkhand",
			"bhubaneswar":        "odisha",
			"raipur":             "chhattisgarh",
		},
		StateRegions: []string{
			"uttarakhand", "delhi ncr", "haryana", "uttar pradesh", "rajasthan", "punjab",
			"maharashtra", "karnataka", "tamil nadu", "kerala", "telangana", "andhra pradesh",
			"west bengal", "gujarat", "madhya pradesh", "bihar", "jharkhand", "odisha",
			"chhattisgarh", "assam", "himachal pradesh", "jammu", "kashmir", "goa",
		},
		AreaKeywords: []string{
			// Delhi NCR
			"dwarka", "rohini", "pitampura", "janakpuri", "lajpat nagar", "saket",
			"greater kailash", "vasant kunj", "mayur vihar", "preet vihar", "karol bagh",
			// Bangalore
			"koramangala", "hsr layout", "whitefield", "indiranagar", "jayanagar",
			"marathahalli", "electronic city", "btm layout", "jp nagar", "hebbal",
			"yelahanka", "banashankari", "rajajinagar", "malleswaram", "basaveshwaranagar",
			"panathur", "kadabeesanahalli", "bellandur", "sarjapur",
			// Mumbai
			"andheri", "bandra", "juhu", "powai", "thane", "navi mumbai", "malad",
			"goregaon", "borivali", "kandivali", "dadar", "lower parel", "worli",
		},
	}
}
