package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id-addressed operation matches no record.
var ErrNotFound = errors.New("record not found")

// CatalogRepository handles database operations for one catalog entity.
// All seven entities share this shape; there are no relations between them.
type CatalogRepository[M any] struct {
	db *gorm.DB
}

// NewCatalogRepository creates a repository bound to the given database handle.
func NewCatalogRepository[M any](db *gorm.DB) *CatalogRepository[M] {
	return &CatalogRepository[M]{db: db}
}

// FindAll retrieves every record, most recently created first.
func (r *CatalogRepository[M]) FindAll() ([]M, error) {
	records := make([]M, 0)
	result := r.db.Order("created_at DESC").Find(&records)
	return records, result.Error
}

// FindByID retrieves a single record by its identifier.
func (r *CatalogRepository[M]) FindByID(id string) (M, error) {
	var record M
	result := r.db.First(&record, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return record, ErrNotFound
	}
	return record, result.Error
}

// Create inserts a new record and returns it with its assigned id and timestamps.
func (r *CatalogRepository[M]) Create(record M) (M, error) {
	result := r.db.Create(&record)
	return record, result.Error
}

// Save persists every field of an existing record, refreshing updatedAt.
func (r *CatalogRepository[M]) Save(record M) (M, error) {
	result := r.db.Save(&record)
	return record, result.Error
}

// Delete removes a record permanently.
func (r *CatalogRepository[M]) Delete(id string) error {
	result := r.db.Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
