package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/cache"
)

const teamSearchTTL = 60 * time.Second
const teamSearchLimit = 20

type teamSearchHit struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	CrestKey    string `json:"crest_key"`
}

// HandleTeamSearch backs the club picker in the onboarding form. Only
// approved public teams surface; results are cached briefly since the same
// prefixes get typed over and over.
func HandleTeamSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		return c.JSON(fiber.Map{"teams": []teamSearchHit{}})
	}

	cacheKey := fmt.Sprintf("team_search:%s", strings.ToLower(query))
	var hits []teamSearchHit
	if err := cache.GetJSON(cacheKey, &hits); err == nil {
		return c.JSON(fiber.Map{"teams": hits})
	}

	repos := repository.GetGlobalFactory().GetRepositories()
	teams, err := repos.Team.SearchApproved(query, teamSearchLimit)
	if err != nil {
		return writeEngineError(c, err)
	}

	hits = make([]teamSearchHit, 0, len(teams))
	for _, t := range teams {
		hits = append(hits, teamSearchHit{
			ID:          t.ID,
			Slug:        t.Slug,
			Name:        t.Name,
			Country:     t.Country,
			CountryCode: t.CountryCode,
			CrestKey:    t.CrestKey,
		})
	}

	_ = cache.SetJSON(cacheKey, hits, teamSearchTTL)
	return c.JSON(fiber.Map{"teams": hits})
}

// HandleGetTeam returns one approved team by slug.
func HandleGetTeam(c *fiber.Ctx) error {
	slug := c.Params("slug")

	repos := repository.GetGlobalFactory().GetRepositories()
	team, err := repos.Team.GetBySlug(slug)
	if err != nil || team.Status != models.TeamStatusApproved || team.Visibility != models.VisibilityPublic {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "team not found"})
	}

	return c.JSON(team)
}
