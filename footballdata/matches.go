package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ashleypule/soccer-score/pkg/models"
)

const dateLayout = "2006-01-02"

// MatchListOptions represents options for listing matches
type MatchListOptions struct {
	DateFrom time.Time
	DateTo   time.Time
	Status   string // SCHEDULED, LIVE, IN_PLAY, PAUSED, FINISHED ...
	Limit    int
}

func (o MatchListOptions) values() url.Values {
	params := url.Values{}
	if !o.DateFrom.IsZero() {
		params.Set("dateFrom", o.DateFrom.Format(dateLayout))
	}
	if !o.DateTo.IsZero() {
		params.Set("dateTo", o.DateTo.Format(dateLayout))
	}
	if o.Status != "" {
		params.Set("status", o.Status)
	}
	if o.Limit > 0 {
		params.Set("limit", fmt.Sprint(o.Limit))
	}
	return params
}

// GetMatches retrieves matches across all competitions
func (c *Client) GetMatches(ctx context.Context, opts MatchListOptions) ([]models.Match, error) {
	var response matchesResponse
	if err := c.getJSON(ctx, "/matches", opts.values(), &response); err != nil {
		return nil, err
	}
	return ToMatches(response.Matches, nil), nil
}

// GetCompetitionMatches retrieves matches of a single competition
func (c *Client) GetCompetitionMatches(ctx context.Context, code string, opts MatchListOptions) ([]models.Match, error) {
	var response matchesResponse
	endpoint := fmt.Sprintf("/competitions/%s/matches", url.PathEscape(code))
	if err := c.getJSON(ctx, endpoint, opts.values(), &response); err != nil {
		return nil, err
	}
	return ToMatches(response.Matches, response.Competition), nil
}

// GetTeamMatches retrieves a team's matches. Zero dates are omitted, which
// returns the team's full recent history.
func (c *Client) GetTeamMatches(ctx context.Context, teamID int, opts MatchListOptions) ([]models.Match, error) {
	var response matchesResponse
	endpoint := fmt.Sprintf("/teams/%d/matches", teamID)
	if err := c.getJSON(ctx, endpoint, opts.values(), &response); err != nil {
		return nil, err
	}
	return ToMatches(response.Matches, nil), nil
}
