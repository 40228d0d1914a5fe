package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/myday/internal/models"
)

// ErrPersistence wraps every load or save failure
var ErrPersistence = errors.New("persistence failed")

// DefaultSnapshotName is the row the CLI and TUI share
const DefaultSnapshotName = "default"

// SnapshotRecord stores one named snapshot as a JSON document
type SnapshotRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Version   int       `gorm:"not null"`
	Data      string    `gorm:"type:text;not null"`
	SavedAt   time.Time
	UpdatedAt time.Time
}

// SnapshotRepo loads and saves the store snapshot
type SnapshotRepo struct {
	db   *gorm.DB
	name string
}

// NewSnapshotRepo returns a repo bound to the default snapshot row
func NewSnapshotRepo(db *gorm.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db, name: DefaultSnapshotName}
}

// Load returns the saved snapshot, or nil when nothing was saved yet
func (r *SnapshotRepo) Load(ctx context.Context) (*models.Snapshot, error) {
	var rec SnapshotRecord
	err := r.db.WithContext(ctx).Where("name = ?", r.name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load snapshot %q: %v", ErrPersistence, r.name, err)
	}

	if rec.Version != models.SnapshotVersion {
		return nil, fmt.Errorf("snapshot %q: %w: got %d, want %d",
			r.name, models.ErrIncompatibleSnapshot, rec.Version, models.SnapshotVersion)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(rec.Data), &snap); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot %q: %v", ErrPersistence, r.name, err)
	}
	return &snap, nil
}

// Save upserts the snapshot row
func (r *SnapshotRepo) Save(ctx context.Context, snap models.Snapshot) error {
	if snap.Version == 0 {
		snap.Version = models.SnapshotVersion
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}

	rec := SnapshotRecord{
		Name:    r.name,
		Version: snap.Version,
		Data:    string(data),
		SavedAt: snap.SavedAt,
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "data", "saved_at", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: save snapshot %q: %v", ErrPersistence, r.name, err)
	}
	return nil
}
