package services

// DefaultCityGazetteer maps common city and region names to the state
// the place catalog uses, for origin strings that match no place row.
// Injected into the candidate selector so tests can substitute fixtures.
var DefaultCityGazetteer = map[string]string{
	"delhi":      "Delhi",
	"new delhi":  "Delhi",
	"mumbai":     "Maharashtra",
	"pune":       "Maharashtra",
	"bangalore":  "Karnataka",
	"bengaluru":  "Karnataka",
	"mysore":     "Karnataka",
	"coorg":      "Karnataka",
	"hyderabad":  "Telangana",
	"chennai":    "Tamil Nadu",
	"coimbatore": "Tamil Nadu",
	"ooty":       "Tamil Nadu",
	"madurai":    "Tamil Nadu",
	"kolkata":    "West Bengal",
	"jaipur":     "Rajasthan",
	"udaipur":    "Rajasthan",
	"jodhpur":    "Rajasthan",
	"agra":       "Uttar Pradesh",
	"lucknow":    "Uttar Pradesh",
	"varanasi":   "Uttar Pradesh",
	"ahmedabad":  "Gujarat",
	"surat":      "Gujarat",
	"goa":        "Goa",
	"panaji":     "Goa",
	"kochi":      "Kerala",
	"munnar":     "Kerala",
	"alleppey":   "Kerala",
	"amritsar":   "Punjab",
	"chandigarh": "Chandigarh",
	"indore":     "Madhya Pradesh",
	"bhopal":     "Madhya Pradesh",
	"shimla":     "Himachal Pradesh",
	"manali":     "Himachal Pradesh",
	"rishikesh":  "Uttarakhand",
	"nainital":   "Uttarakhand",
	"gangtok":    "Sikkim",
	"shillong":   "Meghalaya",
	"guwahati":   "Assam",
}
