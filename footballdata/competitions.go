package footballdata

import (
	"context"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// SupportedCompetitions are the competitions available on the free tier.
var SupportedCompetitions = []string{
	"PL",  // Premier League
	"PD",  // La Liga
	"SA",  // Serie A
	"BL1", // Bundesliga
	"FL1", // Ligue 1
	"DED", // Eredivisie
	"ELC", // Championship
	"PPL", // Primeira Liga
	"BSA", // Brasileirão
	"WC",  // World Cup
	"EC",  // European Championship
	"CL",  // Champions League
}

// IsSupported reports whether code is one of SupportedCompetitions
func IsSupported(code string) bool {
	for _, c := range SupportedCompetitions {
		if c == code {
			return true
		}
	}
	return false
}

// GetCompetitions retrieves all competitions visible to the API key
func (c *Client) GetCompetitions(ctx context.Context) ([]Competition, error) {
	var response competitionsResponse
	if err := c.getJSON(ctx, "/competitions", nil, &response); err != nil {
		return nil, err
	}
	return response.Competitions, nil
}

// GetSupportedLeagues returns the supported competitions as leagues
func (c *Client) GetSupportedLeagues(ctx context.Context) ([]models.League, error) {
	comps, err := c.GetCompetitions(ctx)
	if err != nil {
		return nil, err
	}

	leagues := make([]models.League, 0, len(comps))
	for _, comp := range comps {
		if IsSupported(comp.Code) {
			leagues = append(leagues, ToLeague(comp, comp.Area))
		}
	}
	return leagues, nil
}
