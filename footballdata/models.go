package footballdata

// Area is the country/region block of a response
type Area struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// Competition represents a competition
type Competition struct {
	ID     int    `json:"id"`
	Area   Area   `json:"area"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

// TeamRef is the short team block embedded in a match
type TeamRef struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

// Goals holds a nullable score pair
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score is the score block of a match
type Score struct {
	Winner   string `json:"winner"`
	Duration string `json:"duration"`
	FullTime Goals  `json:"fullTime"`
	HalfTime Goals  `json:"halfTime"`
}

// Match represents a match
type Match struct {
	ID          int         `json:"id"`
	Area        Area        `json:"area"`
	Competition Competition `json:"competition"`
	UTCDate     string      `json:"utcDate"`
	Status      string      `json:"status"`
	Matchday    *int        `json:"matchday"`
	Stage       string      `json:"stage"`
	Venue       string      `json:"venue"`
	HomeTeam    TeamRef     `json:"homeTeam"`
	AwayTeam    TeamRef     `json:"awayTeam"`
	Score       Score       `json:"score"`
}

type competitionsResponse struct {
	Count        int           `json:"count"`
	Competitions []Competition `json:"competitions"`
}

type matchesResponse struct {
	Competition *Competition `json:"competition"`
	Matches     []Match      `json:"matches"`
}
