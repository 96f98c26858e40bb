package statsapi

// draftResponse mirrors the subset of the stats API draft payload we read.
type draftResponse struct {
	Drafts struct {
		DraftYear int        `json:"draftYear"`
		Rounds    []apiRound `json:"rounds"`
	} `json:"drafts"`
}

type apiRound struct {
	Round string    `json:"round"`
	Picks []apiPick `json:"picks"`
}

type apiPick struct {
	PickNumber int  `json:"pickNumber"`
	IsDrafted  bool `json:"isDrafted"`
	IsPass     bool `json:"isPass"`
	Team       struct {
		Name string `json:"name"`
	} `json:"team"`
	School struct {
		Name string `json:"name"`
	} `json:"school"`
	Person struct {
		FullName        string `json:"fullName"`
		PrimaryPosition struct {
			Abbreviation string `json:"abbreviation"`
		} `json:"primaryPosition"`
	} `json:"person"`
}
