package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Translate driver errors so unique violations surface as
		// gorm.ErrDuplicatedKey (receipt number retry depends on this).
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Branch{},
		&entity.Setting{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Receipt{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the bootstrap owner account, a default branch and
// a default business profile when the database is empty.
func SeedDefaultData(db *gorm.DB, seed *config.SeedConfig) error {
	logrus.Info("Seeding default data...")

	var owner entity.User
	if err := db.Where("email = ?", seed.OwnerEmail).First(&owner).Error; err != nil {
		if seed.OwnerPassword == "" {
			logrus.Warn("OWNER_PASSWORD not set, skipping owner account seed")
			return nil
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.OwnerPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash owner password: %w", err)
		}

		owner = entity.User{
			Name:         seed.OwnerName,
			Email:        seed.OwnerEmail,
			PasswordHash: string(hashed),
			Role:         enum.RoleOwner,
		}
		if err := db.Create(&owner).Error; err != nil {
			return fmt.Errorf("failed to create owner user: %w", err)
		}
		logrus.WithField("email", seed.OwnerEmail).Info("Owner account created")
	}

	var branch entity.Branch
	if err := db.Where("is_active = ?", true).First(&branch).Error; err != nil {
		branch = entity.Branch{
			Name:     "Main Branch",
			Address:  "",
			Timezone: "UTC",
			IsActive: true,
		}
		if err := db.Create(&branch).Error; err != nil {
			return fmt.Errorf("failed to create default branch: %w", err)
		}
	}

	var setting entity.Setting
	if err := db.Where("owner_user_id = ?", owner.ID).First(&setting).Error; err != nil {
		setting = entity.Setting{
			OwnerUserID:     owner.ID,
			BusinessName:    "My Business",
			BusinessAddress: "",
			Phone:           "",
			Email:           seed.OwnerEmail,
			Currency:        "USD",
			DefaultTaxRate:  decimal.Zero,
			ReceiptFooter:   "Thank you for your business",
		}
		if err := db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	logrus.Info("Default data seeding completed")
	return nil
}
