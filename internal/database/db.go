package database

import (
	"log"
	"os"

	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection from DATABASE_URL and runs the
// migrations. Fatal on failure, the server is useless without its store.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=trackingjobs port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// TranslateError maps driver unique-violation errors to
		// gorm.ErrDuplicatedKey, which the capture service relies on.
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return db
}

// Migrate creates the schema. Shared with the test suite, which runs it
// against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}); err != nil {
		return err
	}

	// Duplicate captures are suppressed at the storage level so that two
	// concurrent inserts for the same (user, external job) cannot both win.
	// Partial: external_id is optional and plain manual entries have none.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_user_external
		 ON jobs (user_id, external_id)
		 WHERE external_id IS NOT NULL AND external_id <> ''`,
	).Error
}
