package cache

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"murshid-backend/models"
)

// TagTranslations maps major and university ids to display names for the
// curated tag arrays on posts. It is an owned, injectable object with an
// explicit TTL refresh policy, constructed in main and handed to the
// handlers that need it.
type TagTranslations struct {
	db  *gorm.DB
	ttl time.Duration

	mu           sync.RWMutex
	majors       map[string]string
	universities map[string]string
	loadedAt     time.Time
}

func NewTagTranslations(db *gorm.DB, ttl time.Duration) *TagTranslations {
	return &TagTranslations{
		db:           db,
		ttl:          ttl,
		majors:       map[string]string{},
		universities: map[string]string{},
	}
}

// Refresh reloads both maps from the catalog tables. On failure the
// previous snapshot stays in place and keeps serving.
func (c *TagTranslations) Refresh() error {
	var majors []models.Major
	if err := c.db.Select("id", "name").Find(&majors).Error; err != nil {
		return err
	}
	var universities []models.University
	if err := c.db.Select("id", "name").Find(&universities).Error; err != nil {
		return err
	}

	majorNames := make(map[string]string, len(majors))
	for _, m := range majors {
		majorNames[m.ID] = m.Name
	}
	universityNames := make(map[string]string, len(universities))
	for _, u := range universities {
		universityNames[u.ID] = u.Name
	}

	c.mu.Lock()
	c.majors = majorNames
	c.universities = universityNames
	c.loadedAt = time.Now()
	c.mu.Unlock()
	return nil
}

// MajorName translates a major id, refreshing lazily once the snapshot is
// older than the TTL. Unknown ids come back empty.
func (c *TagTranslations) MajorName(id string) string {
	c.ensureFresh()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.majors[id]
}

// UniversityName translates a university id.
func (c *TagTranslations) UniversityName(id string) string {
	c.ensureFresh()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.universities[id]
}

// MajorNames translates a list of ids, dropping unknown ones.
func (c *TagTranslations) MajorNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := c.MajorName(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// UniversityNames translates a list of ids, dropping unknown ones.
func (c *TagTranslations) UniversityNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := c.UniversityName(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (c *TagTranslations) ensureFresh() {
	c.mu.RLock()
	stale := time.Since(c.loadedAt) > c.ttl
	c.mu.RUnlock()
	if stale {
		// Best effort; a failed refresh keeps the old snapshot.
		_ = c.Refresh()
	}
}
