package application

import (
	"github.com/movieshelf/movieshelf/internal/domain/entity"
	"github.com/movieshelf/movieshelf/pkg/omdb"
)

// EnrichmentOutcome tells the presentation boundary what happened to the
// optional metadata lookup for a write. Only OutcomeApplied changes what
// gets persisted beyond the caller's own input.
type EnrichmentOutcome string

const (
	// OutcomeApplied means the lookup matched and its fields were written.
	OutcomeApplied EnrichmentOutcome = "applied"
	// OutcomeNoMatch means the lookup service answered but had no match.
	OutcomeNoMatch EnrichmentOutcome = "no_match"
	// OutcomeUnavailable means the lookup could not produce an answer.
	OutcomeUnavailable EnrichmentOutcome = "unavailable"
	// OutcomeSkipped means no lookup was attempted (not requested, or no
	// API key configured).
	OutcomeSkipped EnrichmentOutcome = "skipped"
)

func outcomeFor(res omdb.Result) EnrichmentOutcome {
	switch res.Status {
	case omdb.StatusFound:
		return OutcomeApplied
	case omdb.StatusNotFound:
		return OutcomeNoMatch
	default:
		return OutcomeUnavailable
	}
}

// resolveTitle picks the title to persist for a successful lookup: the
// service's canonical title, falling back to what the caller typed.
func resolveTitle(requested string, res omdb.Result) string {
	if res.Status == omdb.StatusFound && res.Title != "" {
		return res.Title
	}
	return requested
}

// enrichmentFields maps a successful lookup onto the fields to persist.
// The three fields always travel together; a caller must not cherry-pick.
func enrichmentFields(res omdb.Result) entity.Enrichment {
	return entity.Enrichment{
		Director:  res.Director,
		Year:      res.Year,
		PosterURL: res.PosterURL,
	}
}
