package db

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"murshid-backend/models"
	"murshid-backend/utils"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.Major{},
		&models.Post{},
		&models.Answer{},
		&models.Comment{},
		&models.Like{},
		&models.Report{},
		&models.ContentVersion{},
		&models.Bookmark{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	// Partial unique indexes AutoMigrate cannot express: one accepted
	// answer per post, and one pending report per (reporter, target).
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_answers_single_accepted ON answers (post_id) WHERE is_accepted`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_reports_pending_unique ON reports (reported_by, target_type, target_id) WHERE status = 'pending'`)

	utils.LogSuccess("Database connection successful")
}
