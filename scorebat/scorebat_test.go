package scorebat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashleypule/soccer-score/pkg/models"
)

const feedJSON = `{"response":[
 {"title":"Manchester City - Brighton","competition":"ENGLAND: Premier League","thumbnail":"https://img/1.jpg","date":"2025-10-12T14:00:00+0000",
  "videos":[{"id":"v1","title":"Highlights","embed":"<div style='width:100%'><iframe src='https://www.scorebat.com/embed/v/abc/' frameborder='0'></iframe></div>"}]},
 {"title":"Arsenal - Chelsea","competition":"ENGLAND: Premier League","thumbnail":"https://img/2.jpg","date":"2025-10-11T16:30:00+0000",
  "videos":[{"id":"v2","title":"Highlights","embed":"<iframe src=\"https://www.scorebat.com/embed/v/def/\"></iframe>"}]}
]}`

func TestGetHighlights(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		w.Write([]byte(feedJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/video-api/v3/", "tok", 0)
	highlights, err := client.GetHighlights(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok", gotToken)
	require.Len(t, highlights, 2)
	assert.Equal(t, "Arsenal - Chelsea", highlights[1].Title)
	assert.Equal(t, "v2", highlights[1].Videos[0].ID)
}

func TestGetHighlightsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).GetHighlights(context.Background())
	assert.Error(t, err)
}

func TestNormalizeTeamName(t *testing.T) {
	cases := map[string]string{
		"Arsenal FC":               "arsenal",
		"AFC Bournemouth":          "bournemouth",
		"Brighton & Hove Albion":   "brighton hove albion",
		"AC Milan":                 "milan",
		"Cardiff City":             "cardiff city",
		"Paris Saint-Germain F.C.": "paris saint germain f c",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTeamName(in), in)
	}
}

func highlights() []models.Highlight {
	return []models.Highlight{
		{Title: "Manchester City - Brighton", Videos: []models.HighlightVideo{{Embed: "<iframe src='https://www.scorebat.com/embed/v/abc/'></iframe>"}}},
		{Title: "Arsenal - Chelsea", Videos: []models.HighlightVideo{{Embed: `<iframe src="https://www.scorebat.com/embed/v/def/"></iframe>`}}},
		{Title: "Chelsea - Ajax"},
	}
}

func TestFindForMatchExact(t *testing.T) {
	h := FindForMatch(highlights(), "Arsenal FC", "Chelsea FC")
	require.NotNil(t, h)
	assert.Equal(t, "Arsenal - Chelsea", h.Title)
}

func TestFindForMatchPartial(t *testing.T) {
	h := FindForMatch(highlights(), "Brighton & Hove Albion FC", "Manchester City FC")
	require.NotNil(t, h)
	assert.Equal(t, "Manchester City - Brighton", h.Title)
}

func TestFindForMatchNoMatch(t *testing.T) {
	assert.Nil(t, FindForMatch(highlights(), "Real Madrid CF", "FC Barcelona"))
	assert.Nil(t, FindForMatch(nil, "Arsenal", "Chelsea"))
	assert.Nil(t, FindForMatch(highlights(), "FC", "AFC"))
}

func TestEmbedURL(t *testing.T) {
	hs := highlights()
	assert.Equal(t, "https://www.scorebat.com/embed/v/abc/", EmbedURL(&hs[0]))
	assert.Equal(t, "https://www.scorebat.com/embed/v/def/", EmbedURL(&hs[1]))
	assert.Equal(t, "", EmbedURL(&hs[2]))
	assert.Equal(t, "", EmbedURL(nil))

	bare := models.Highlight{Videos: []models.HighlightVideo{{Embed: "https://video.example/x"}}}
	assert.Equal(t, "https://video.example/x", EmbedURL(&bare))
}
