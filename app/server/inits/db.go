package inits

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/password"
)

// First-boot admin credentials, created only while the users table is empty.
const (
	initialAdminUsername = "admin"
	initialAdminPassword = "admin_password_123"
)

func DB(conn string) (db *gorm.DB, err error) {
	// open the connection; TranslateError makes unique violations portable
	// across drivers
	if db, err = gorm.Open(dialector(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// migrate
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// seed startup data
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	return db, nil
}

// dialector picks Postgres for DSNs that look like one, SQLite otherwise.
func dialector(conn string) gorm.Dialector {
	if strings.HasPrefix(conn, "postgres://") || strings.HasPrefix(conn, "postgresql://") || strings.Contains(conn, "host=") {
		return postgres.Open(conn)
	}
	return sqlite.Open(conn)
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
	)
}

func initData(db *gorm.DB) (err error) {
	var counter int64

	// seed the admin account
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // no users at all, add the initial admin
		var passwordHash string
		if passwordHash, err = password.Hash(initialAdminPassword); err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		if err = db.Create(&models.User{
			Username: initialAdminUsername,
			Password: passwordHash,
			IsAdmin:  true,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	return nil
}
