package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminPassword = "admin123"
var DefaultBaseQuota = 25

// InitDB initializes the database connection, migrates the models and populates the
// database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Europe/Moscow", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.Organization{},
        &models.SpecialtyTemplate{},
        &models.Specialty{},
        &models.Student{},
        &models.User{},
        &models.Setting{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    // AutoMigrate cannot express a partial index, so the single-operator-per-organization
    // constraint is created directly. NULL organization_id rows (admins) are exempt.
    if err := DB.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_users_operator_organization
        ON users (organization_id) WHERE role = 'operator'
    `).Error; err != nil {
        log.Fatal("failed to create operator uniqueness index: ", err)
    }

    Populate()
}

// Populate populates the database with default values if needed
func Populate() {
    var countUser int64

    // Create the default admin account if no user exists yet
    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        password := DefaultAdminPassword
        if config.AdminPassword != "" {
            password = config.AdminPassword
        }

        hashed, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        admin := models.User{
            Login:        config.AdminLogin,
            PasswordHash: hashed,
            Role:         models.RoleAdmin,
        }
        DB.Create(&admin)
        log.Println("Default admin account created")
    }

    // Seed the base quota setting used when assigning templates without an explicit quota
    var countSetting int64
    DB.Model(&models.Setting{}).Where("key = ?", "base_quota").Count(&countSetting)
    if countSetting == 0 {
        DB.Create(&models.Setting{Key: "base_quota", Value: fmt.Sprintf("%d", DefaultBaseQuota)})
        log.Println("Default base_quota setting created")
    }
}
