package models

// Highlight 一条比赛集锦
type Highlight struct {
	Title       string           `json:"title"`
	Competition string           `json:"competition"`
	MatchView   string           `json:"match_view_url,omitempty"`
	Thumbnail   string           `json:"thumbnail"`
	Date        string           `json:"date"`
	Videos      []HighlightVideo `json:"videos"`
}

// HighlightVideo 集锦视频, Embed 为 iframe HTML
type HighlightVideo struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Embed string `json:"embed"`
}
