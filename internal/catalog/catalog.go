package catalog

import (
	"errors"
	"time"

	"benkhawiya-backend/internal/models"
)

// ErrEmptyCatalog is fatal at startup; an empty catalog means the binary
// was built without content and can never serve a daily practice.
var ErrEmptyCatalog = errors.New("catalog: no practice entries defined for any level")

// Catalog is the static registry of healing practices grouped by
// proficiency level. Slice order within a level is the deterministic
// candidate order used by daily selection.
type Catalog struct {
	byLevel map[string][]models.PracticeEntry
}

func New() *Catalog {
	return &Catalog{byLevel: healingPractices}
}

// ForLevel returns the entries for a level. Unknown levels fall back to
// the beginner set so a corrupted account row never empties the result.
func (c *Catalog) ForLevel(level string) []models.PracticeEntry {
	if entries, ok := c.byLevel[level]; ok && len(entries) > 0 {
		return entries
	}
	return c.byLevel[models.LevelBeginner]
}

// Lookup finds an entry by id across all levels.
func (c *Catalog) Lookup(practiceID string) (models.PracticeEntry, bool) {
	for _, entries := range c.byLevel {
		for _, entry := range entries {
			if entry.ID == practiceID {
				return entry, true
			}
		}
	}
	return models.PracticeEntry{}, false
}

// Validate reports ErrEmptyCatalog when no level holds any entry.
func (c *Catalog) Validate() error {
	for _, entries := range c.byLevel {
		if len(entries) > 0 {
			return nil
		}
	}
	return ErrEmptyCatalog
}

// SelectDaily picks today's practice for a level. It is pure: for a fixed
// date and exclusion set the same entry always comes back.
//
// Selection excludes ids completed within the trailing 3 days, falling
// back to the full per-level set if exclusion empties the candidates,
// then indexes by ordinal day of year so content rotates without any
// random state.
func (c *Catalog) SelectDaily(now time.Time, level string, recentIDs []string) models.PracticeEntry {
	entries := c.ForLevel(level)

	excluded := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		excluded[id] = true
	}

	candidates := make([]models.PracticeEntry, 0, len(entries))
	for _, entry := range entries {
		if !excluded[entry.ID] {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		candidates = entries
	}

	return candidates[now.YearDay()%len(candidates)]
}
