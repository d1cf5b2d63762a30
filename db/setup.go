package db

import (
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate runs auto-migration for every model on the given connection.
// Split out from MigrateDatabase so tests can migrate an in-memory DB.
func Migrate(conn *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.WeddingTemplate{},
		&models.TemplateMedia{},
		&models.TemplateComment{},
		&models.TemplateLike{},
		&models.TemplateStory{},
		&models.TemplateTimelineEvent{},
		&models.TemplateLiveUser{},
		&models.TemplateSettings{},
	}

	migrator := conn.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := conn.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
