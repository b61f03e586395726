package db

import (
	"fmt"
	"log"
	"os"

	"school_equipment_lending/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Equipment{}, &models.BorrowRequest{}, &models.AuditLog{}); err != nil {
		return err
	}

	// DB-side backstop for the ledger invariant. The repo enforces it too,
	// this catches anything that slips past.
	if err := db.Exec(fmt.Sprintf(`
	  ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s_available_range;
	`, models.EquipmentTable, models.EquipmentTable)).Error; err != nil {
		return err
	}
	if err := db.Exec(fmt.Sprintf(`
	  ALTER TABLE %s ADD CONSTRAINT %s_available_range
	  CHECK (quantity >= 1 AND available >= 0 AND available <= quantity);
	`, models.EquipmentTable, models.EquipmentTable)).Error; err != nil {
		return err
	}

	// Overlap accounting only ever scans open requests per item.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_equipment
	  ON %s (equipment_id, borrow_from, borrow_to)
	  WHERE status IN ('pending', 'approved');
	`, models.BorrowRequestTable, models.BorrowRequestTable)).Error; err != nil {
		return err
	}

	return nil
}
