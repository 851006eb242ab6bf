package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripmates-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key violations surface as gorm.ErrDuplicatedKey so the
		// concepts can report them as conflicts
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Rating{},
		&models.Match{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.Meeting{},
		&models.Location{},
		&models.LocationInfo{},
		&models.Profile{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedGazetteer loads the static location reference data. Existing rows are
// left untouched so repeated startups stay idempotent.
func SeedGazetteer(db *gorm.DB) error {
	for _, info := range gazetteer {
		var count int64
		if err := db.Model(&models.LocationInfo{}).Where("name = ?", info.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check gazetteer entry %q: %w", info.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&info).Error; err != nil {
			return fmt.Errorf("failed to seed gazetteer entry %q: %w", info.Name, err)
		}
	}
	return nil
}

var gazetteer = []models.LocationInfo{
	{
		Name:        "New York City",
		Description: "The largest city in the USA, known for Times Square, Central Park, and Broadway.",
		Attractions: models.StringSliceType{"Times Square", "Central Park", "Statue of Liberty"},
		Latitude:    40.7128,
		Longitude:   -74.006,
	},
	{
		Name:        "Paris",
		Description: "The capital of France, known for the Eiffel Tower, art, and culture.",
		Attractions: models.StringSliceType{"Eiffel Tower", "Louvre Museum", "Notre Dame"},
		Latitude:    48.8566,
		Longitude:   2.3522,
	},
	{
		Name:        "Bangkok",
		Description: "The bustling capital of Thailand, known for ornate shrines and vibrant street life.",
		Attractions: models.StringSliceType{"Grand Palace", "Wat Arun", "Floating Markets"},
		Latitude:    13.7563,
		Longitude:   100.5018,
	},
	{
		Name:        "Barcelona",
		Description: "A Spanish city famed for its art, architecture, and the iconic Sagrada Familia.",
		Attractions: models.StringSliceType{"Sagrada Familia", "Park Guell", "La Rambla"},
		Latitude:    41.3851,
		Longitude:   2.1734,
	},
	{
		Name:        "Taipei",
		Description: "The capital of Taiwan, known for its night markets, skyscrapers, and temples.",
		Attractions: models.StringSliceType{"Taipei 101", "Shilin Night Market", "National Palace Museum"},
		Latitude:    25.033,
		Longitude:   121.5654,
	},
	{
		Name:        "London",
		Description: "The capital of the United Kingdom, steeped in history and modern culture.",
		Attractions: models.StringSliceType{"Big Ben", "Tower of London", "British Museum"},
		Latitude:    51.5074,
		Longitude:   -0.1278,
	},
	{
		Name:        "Shanghai",
		Description: "China's largest city, known for its towering skyline and vibrant waterfront.",
		Attractions: models.StringSliceType{"The Bund", "Yu Garden", "Oriental Pearl Tower"},
		Latitude:    31.2304,
		Longitude:   121.4737,
	},
	{
		Name:        "Sydney",
		Description: "Australia's largest city, known for its Sydney Opera House and coastal lifestyle.",
		Attractions: models.StringSliceType{"Sydney Opera House", "Sydney Harbour Bridge", "Bondi Beach"},
		Latitude:    -33.8688,
		Longitude:   151.2093,
	},
}
