// Package service holds logic that sits between the screens and the
// repositories.
package service

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/matchpad/internal/database/repository"
)

// Teams suggests previously used team names while typing.
type Teams struct {
	Matches *repository.MatchRepo
}

// Suggest returns the known team name closest to input, or "" when nothing
// comes near enough. Matching is case-insensitive and prefix-biased.
func (t *Teams) Suggest(ctx context.Context, input string) (string, error) {
	known, err := t.Matches.TeamNames(ctx)
	if err != nil {
		return "", err
	}
	return SuggestFrom(input, known), nil
}

// SuggestFrom is the pure lookup behind Suggest.
func SuggestFrom(input string, known []string) string {
	needle := strings.ToUpper(strings.TrimSpace(input))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, name := range known {
		candidate := strings.ToUpper(name)
		if candidate == needle {
			return name
		}
		if strings.HasPrefix(candidate, needle) {
			return name
		}
		dist := levenshtein.ComputeDistance(needle, candidate)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = name, dist
		}
	}
	// Anything further than a third of the name away is noise.
	if bestDist < 0 || bestDist*3 > len(needle)+2 {
		return ""
	}
	return best
}
