package reaper_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vowsnap-dev/vowsnap/db"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"github.com/vowsnap-dev/vowsnap/internal/reaper"
	"github.com/vowsnap-dev/vowsnap/internal/store"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*gorm.DB, *store.Store) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	return conn, store.New(conn)
}

func TestSweepReclaimsExpiredRows(t *testing.T) {
	conn, stores := newTestStore(t)

	template := models.WeddingTemplate{Name: "A&B", Slug: "ab", CreatedBy: 1}
	require.NoError(t, stores.Templates.Create(&template))

	expired := models.TemplateStory{
		TemplateID: template.TemplateID,
		MediaURL:   "https://cdn.example/old.jpg",
		MediaType:  "image",
		UserName:   "Ann",
		DeviceID:   "d1",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, stores.Stories.Create(&expired))

	live := models.TemplateStory{
		TemplateID: template.TemplateID,
		MediaURL:   "https://cdn.example/new.jpg",
		MediaType:  "image",
		UserName:   "Ben",
		DeviceID:   "d2",
	}
	require.NoError(t, stores.Stories.Create(&live))

	stale, err := stores.LiveUsers.Upsert(template.TemplateID, "d1", "Ann", true)
	require.NoError(t, err)
	require.NoError(t, conn.Model(&models.TemplateLiveUser{}).
		Where("id = ?", stale.ID).
		Update("last_seen", time.Now().Add(-time.Hour)).Error)

	_, err = stores.LiveUsers.Upsert(template.TemplateID, "d2", "Ben", true)
	require.NoError(t, err)

	r := reaper.New(stores, time.Minute, 5*time.Minute)
	r.Sweep()

	stories, err := stores.Stories.ListActive(template.TemplateID)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, live.ID, stories[0].ID)

	var storyCount int64
	require.NoError(t, conn.Model(&models.TemplateStory{}).Count(&storyCount).Error)
	assert.Equal(t, int64(1), storyCount)

	users, err := stores.LiveUsers.List(template.TemplateID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "d2", users[0].DeviceID)
}

func TestSweepSkipsInactiveTemplates(t *testing.T) {
	conn, stores := newTestStore(t)

	template := models.WeddingTemplate{Name: "A&B", Slug: "ab", CreatedBy: 1}
	require.NoError(t, stores.Templates.Create(&template))

	expired := models.TemplateStory{
		TemplateID: template.TemplateID,
		MediaURL:   "https://cdn.example/old.jpg",
		MediaType:  "image",
		UserName:   "Ann",
		DeviceID:   "d1",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, stores.Stories.Create(&expired))

	deleted, err := stores.Templates.SoftDelete(template.TemplateID)
	require.NoError(t, err)
	require.True(t, deleted)

	r := reaper.New(stores, time.Minute, 5*time.Minute)
	r.Sweep()

	// Soft-deleted weddings are out of the sweep's scope; their rows wait
	// for whatever offboarding eventually does with them.
	var storyCount int64
	require.NoError(t, conn.Model(&models.TemplateStory{}).Count(&storyCount).Error)
	assert.Equal(t, int64(1), storyCount)
}

func TestStartStop(t *testing.T) {
	_, stores := newTestStore(t)

	r := reaper.New(stores, 10*time.Millisecond, time.Minute)
	r.Start()

	time.Sleep(30 * time.Millisecond)
	r.Stop()
}
