package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"xplore-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "xplore_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase is idempotent: catalogs and the default admin are only
// created when their tables are empty, so restarts never duplicate rows.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Administrador",
				Email:    "admin@xploreviagens.com.br",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var btCount int64
	DB.Model(&models.BedType{}).Count(&btCount)
	if btCount == 0 {
		bedTypes := []models.BedType{
			{Name: "Cama de Casal", SleepsCount: 2},
			{Name: "Cama Queen", SleepsCount: 2},
			{Name: "Cama King", SleepsCount: 2},
			{Name: "Cama de Solteiro", SleepsCount: 1},
			{Name: "Beliche", SleepsCount: 2},
			{Name: "Sofá-cama", SleepsCount: 1},
		}
		DB.Create(&bedTypes)
		log.Println("BedTypes seeded")
	}

	var stCount int64
	DB.Model(&models.SpaceType{}).Count(&stCount)
	if stCount == 0 {
		spaceTypes := []models.SpaceType{
			{Name: "Quarto", Icon: "bed"},
			{Name: "Sala de Estar", Icon: "sofa"},
			{Name: "Cozinha", Icon: "utensils"},
			{Name: "Banheiro", Icon: "bath"},
			{Name: "Varanda", Icon: "sun"},
		}
		DB.Create(&spaceTypes)
		log.Println("SpaceTypes seeded")
	}

	var settingCount int64
	DB.Model(&models.AgencySetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.AgencySetting{Name: "Xplore Viagens"}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed agency settings: %v", err)
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.AgencySetting{},
		&models.BedType{},
		&models.SpaceType{},
		&models.Property{},
		&models.Space{},
		&models.RoomAssignment{},
		&models.TripPackage{},
		&models.FlightOffer{},
		&models.HeroSlide{},
		&models.Review{},
		&models.QuoteRequest{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
