package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"tourism-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func EnvOrDefault(key, def string) string {
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

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "tourism_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the pool, migrates the schema and seeds the
// lookup tables. The caller owns the returned handle; nothing here is
// kept as package state.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
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
		return nil, err
	}

	// parent -> child order
	if err := db.AutoMigrate(
		&models.State{},
		&models.Category{},
		&models.Amenity{},
		&models.Hotel{},
		&models.HotelImage{},
		&models.HotelRoom{},
	); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// SeedDatabase fills the lookup tables the admin tool expects.
// Count-then-create: each block is a no-op when data already exists.
func SeedDatabase(db *gorm.DB) {
	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		categories := []models.Category{
			{Name: "Budget", Description: "Budget-friendly stays"},
			{Name: "Mid-range", Description: "Comfortable mid-range properties"},
			{Name: "Luxury", Description: "Premium properties"},
			{Name: "Eco", Description: "Eco-tourism stays"},
		}
		if err := db.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed categories: %v", err)
		} else {
			log.Println("Categories seeded")
		}
	}

	var amenityCount int64
	db.Model(&models.Amenity{}).Count(&amenityCount)
	if amenityCount == 0 {
		common := []string{"WiFi", "Parking", "Room Service", "Hot Water", "Power Backup"}
		perType := map[string][]string{
			models.TypeHotel:      {"Restaurant", "Laundry", "Air Conditioning"},
			models.TypeTent:       {"Bonfire", "Shared Washroom", "Camping Gear"},
			models.TypeResort:     {"Swimming Pool", "Spa", "Restaurant", "Bar"},
			models.TypeHomestay:   {"Home-cooked Meals", "Local Guide"},
			models.TypeHostel:     {"Dormitory", "Common Kitchen", "Lockers"},
			models.TypeGuesthouse: {"Kitchen Access", "Garden"},
			models.TypeCottage:    {"Private Garden", "Kitchenette"},
		}

		var amenities []models.Amenity
		for _, t := range models.AccommodationTypes {
			for _, name := range common {
				amenities = append(amenities, models.Amenity{AccommodationType: t, Name: name})
			}
			for _, name := range perType[t] {
				amenities = append(amenities, models.Amenity{AccommodationType: t, Name: name})
			}
		}
		if err := db.Create(&amenities).Error; err != nil {
			log.Printf("warning: failed to seed amenities: %v", err)
		} else {
			log.Println("Amenities seeded")
		}
	}
}
