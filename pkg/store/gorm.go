package store

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"vsl-api/pkg/models"
)

// GormStore backs both store interfaces with a sqlite database. The default
// driver is the in-memory one; this exists for deployments that want the
// registry to survive a restart.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm opens the sqlite database at path, migrates the schema and seeds
// the admin user if it is not present yet.
func OpenGorm(path string) (*GormStore, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Video{}).Error; err != nil {
		db.Close()
		return nil, err
	}

	var count int
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		db.Close()
		return nil, err
	}
	if count == 0 {
		admin, err := SeedAdmin()
		if err != nil {
			db.Close()
			return nil, err
		}
		if err := db.Create(&admin).Error; err != nil {
			db.Close()
			return nil, err
		}
	}
	return &GormStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *GormStore) Close() error {
	return s.db.Close()
}

// FindByUsername returns the user with the given name or ErrUserNotFound.
func (s *GormStore) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Append inserts the record.
func (s *GormStore) Append(video models.Video) error {
	return s.db.Create(&video).Error
}

// ListAll returns every record in insertion order.
func (s *GormStore) ListAll() ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Order("rowid").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
