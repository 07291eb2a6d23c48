package model

type FingeringRequest struct {
	Notes      []string `json:"notes"`
	Capo       int      `json:"capo"`
	MaxEase    *int     `json:"max_ease,omitempty"`
	MaxFret    *int     `json:"max_fret,omitempty"`
	FretPolicy string   `json:"fret_policy,omitempty"`
	Tuning     string   `json:"tuning,omitempty"`
}

type FingeringResponse struct {
	RequestId  string      `json:"request_id"`
	Chord      []string    `json:"chord"`
	Found      bool        `json:"found"`
	Fingering  map[int]int `json:"fingering,omitempty"`
	Ease       int         `json:"ease"`
	Closed     int         `json:"closed"`
	Candidates int         `json:"candidates"`
	Diagram    string      `json:"diagram"`
	Cached     bool        `json:"cached"`
}

type Spelling struct {
	Name     string `json:"name"`
	Lilypond string `json:"lilypond"`
}

type SpellingsResponse struct {
	Note      string     `json:"note"`
	Pitch     string     `json:"pitch"`
	Spellings []Spelling `json:"spellings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
