package db_models

// Place is a curated point of interest. Rows are read-only to the
// planning engine; scoring and assembly never mutate them.
//
// BestSeasons and AvoidSeasons are comma-separated month codes
// ("OCT,NOV,DEC"). SeasonScores and CrowdCalendar are JSON text columns
// decoded through utils.ParseMonthScores / utils.ParseCrowdCalendar,
// which fall back to documented defaults on bad data.
type Place struct {
	BaseModel
	Name        string `gorm:"index"`
	Category    string // TEMPLE, BEACH, FORT, WATERFALL, LAKE, VIEWPOINT, ...
	District    string `gorm:"index"`
	State       string `gorm:"index"`
	Latitude    float64
	Longitude   float64
	Description string

	BestSeasons  string
	AvoidSeasons string
	SeasonScores string

	BudgetTier  string // LOW / MEDIUM / HIGH
	EntryFee    float64
	AvgStayCost float64
	AvgFoodCost float64

	AdventureScore int
	SpiritualScore int
	InstagramScore int
	FoodieScore    int
	NatureScore    int

	FamilyScore  int
	FriendsScore int
	CoupleScore  int
	SoloScore    int

	IsHiddenGem    bool
	IsFamous       bool
	MinHoursNeeded float64
	CrowdCalendar  string
	Popularity     int
}
