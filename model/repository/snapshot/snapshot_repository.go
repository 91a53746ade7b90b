package snapshot

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glomnidesigns.GO/model/entity"
)

const upsertBatchSize = 200

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Migrate creates or updates the content_snapshot table.
func (r *SnapshotRepository) Migrate() error {
	return r.db.AutoMigrate(&entity.Snapshot{})
}

// Upsert inserts rows, replacing name, payload and fetched_at of rows that
// already exist for the same (collection, slug).
func (r *SnapshotRepository) Upsert(ctx context.Context, rows []entity.Snapshot) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "payload", "fetched_at"}),
		}).
		CreateInBatches(&rows, upsertBatchSize).Error
}

// Prune deletes rows of collection whose slug is not in keep.
func (r *SnapshotRepository) Prune(ctx context.Context, collection string, keep []string) (int64, error) {
	q := r.db.WithContext(ctx).Where("collection = ?", collection)
	if len(keep) > 0 {
		q = q.Where("slug NOT IN ?", keep)
	}
	res := q.Delete(&entity.Snapshot{})
	return res.RowsAffected, res.Error
}

func (r *SnapshotRepository) ListByCollection(ctx context.Context, collection string) ([]entity.Snapshot, error) {
	var rows []entity.Snapshot
	err := r.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("slug").
		Find(&rows).Error
	return rows, err
}

// FindBySlug returns nil, nil when the row does not exist.
func (r *SnapshotRepository) FindBySlug(ctx context.Context, collection, slug string) (*entity.Snapshot, error) {
	var row entity.Snapshot
	err := r.db.WithContext(ctx).
		Where("collection = ? AND slug = ?", collection, slug).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CountByCollection returns the number of stored rows per collection.
func (r *SnapshotRepository) CountByCollection(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Collection string
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Snapshot{}).
		Select("collection, COUNT(*) AS total").
		Group("collection").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Collection] = row.Total
	}
	return out, nil
}
