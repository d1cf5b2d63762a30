// Package store is the tenant-scoped data access layer. Every query
// filters by templateId first; operations addressing a single row use the
// dual-key (templateId, id) predicate, so a leaked numeric id from another
// wedding resolves to "not found" rather than to a foreign row.
package store

import "gorm.io/gorm"

type Store struct {
	Users     *UserStore
	Templates *TemplateStore
	Media     *MediaStore
	Comments  *CommentStore
	Likes     *LikeStore
	Stories   *StoryStore
	Timeline  *TimelineStore
	LiveUsers *LiveUserStore
	Settings  *SettingsStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:     NewUserStore(db),
		Templates: NewTemplateStore(db),
		Media:     NewMediaStore(db),
		Comments:  NewCommentStore(db),
		Likes:     NewLikeStore(db),
		Stories:   NewStoryStore(db),
		Timeline:  NewTimelineStore(db),
		LiveUsers: NewLiveUserStore(db),
		Settings:  NewSettingsStore(db),
	}
}
