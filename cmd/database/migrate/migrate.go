package migration

import (
	"Supply-Map-Dashboard/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.SupplyRequest{}); err != nil {
		log.Fatalf("Error migrating supply request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ActivityLog{}); err != nil {
		log.Fatalf("Error migrating activity log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
