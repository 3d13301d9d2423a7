package db

import (
	"fmt"
	"log"

	"github.com/openprocure/portal-go/config"
	"github.com/openprocure/portal-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'supplier', 'procuring_entity'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE supplier_status AS ENUM ('pending', 'approved', 'rejected'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE question_type AS ENUM ('text', 'radio', 'checkbox', 'dropdown', 'multiple_choice'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE response_status AS ENUM ('draft', 'submitted'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE announcement_audience AS ENUM ('all', 'suppliers', 'procuring_entities'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps the package-level handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate(gormDB *gorm.DB) error {
	createEnums(gormDB)

	return gormDB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Supplier{},
		&models.ProcuringEntity{},
		&models.CPVCode{},
		&models.NUTSCode{},
		&models.Questionnaire{},
		&models.Question{},
		&models.QuestionnaireResponse{},
		&models.Answer{},
		&models.Document{},
		&models.Announcement{},
	)
}
