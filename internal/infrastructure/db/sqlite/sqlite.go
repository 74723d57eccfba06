// Package sqlite owns the embedded store: schema migration, first-run
// seeding and the gorm-backed repositories.
package sqlite

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// Open opens (creating if needed) the database file, migrates the schema
// and seeds demonstration data. Migration is idempotent and also brings an
// older layout up to date (AutoMigrate adds the users.role column when it
// is missing). Seeding failures are logged and swallowed; a failed
// migration aborts, since nothing can run against a broken schema.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	_, statErr := os.Stat(path)
	firstRun := os.IsNotExist(statErr)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %q: %w", path, err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Patient{},
		&domain.Doctor{},
		&domain.Appointment{},
		&domain.Invoice{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	// SQLite allows one writer; a capped pool serialises our side of it.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	seed(db, log, firstRun)
	return db, nil
}

type seedUser struct {
	username string
	password string
	role     string
}

// Fixed first-run credentials, bcrypt-hashed at insert time.
var seedUsers = []seedUser{
	{"admin", "password", domain.RoleAdmin},
	{"ramesh", "12345", domain.RoleStaff},
	{"krishna", "krishna123", domain.RoleStaff},
}

// seed inserts demonstration rows when absent: users are insert-or-ignore,
// doctors are guarded by an empty-table check, and the sample patient only
// appears when the store file itself was just created.
func seed(db *gorm.DB, log zerolog.Logger, firstRun bool) {
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Str("username", su.username).Msg("seed: hash password")
			continue
		}
		user := domain.User{Username: su.username, PasswordHash: string(hash), Role: su.role}
		err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
		if err != nil {
			log.Warn().Err(err).Str("username", su.username).Msg("seed: insert user")
		}
	}

	if firstRun {
		age := 30
		patient := domain.Patient{Name: "John Doe", Age: &age, Gender: "Male", Disease: "Flu"}
		if err := db.Create(&patient).Error; err != nil {
			log.Warn().Err(err).Msg("seed: insert sample patient")
		}
	}

	var doctorCount int64
	if err := db.Model(&domain.Doctor{}).Count(&doctorCount).Error; err != nil {
		log.Warn().Err(err).Msg("seed: count doctors")
		return
	}
	if doctorCount > 0 {
		log.Debug().Int64("doctors", doctorCount).Msg("seed: doctors already present")
		return
	}

	aliceFee, bobFee := 200.0, 150.0
	doctors := []domain.Doctor{
		{Name: "Dr. Alice", Specialty: "Cardiology", Phone: "1234567890", Email: "alice@example.com", Fee: &aliceFee},
		{Name: "Dr. Bob", Specialty: "Orthopedics", Phone: "0987654321", Email: "bob@example.com", Fee: &bobFee},
	}
	for _, d := range doctors {
		doctor := d
		if err := db.Create(&doctor).Error; err != nil {
			log.Warn().Err(err).Str("doctor", d.Name).Msg("seed: insert doctor")
		}
	}
}
