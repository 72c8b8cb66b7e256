package schema

// ProfileInfo describes a generation profile for display purposes.
type ProfileInfo struct {
	Name    string   `json:"name"`
	Purpose string   `json:"purpose"`
	Factors []string `json:"factors"`
	Sparse  bool     `json:"sparse"`
}

// ProfilesRenderModel contains all processed data needed for displaying
// profile definitions.
type ProfilesRenderModel struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Profiles    []ProfileInfo `json:"profiles"`
}
