package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot is the last fetched copy of a CMS record.
type Snapshot struct {
	ID         uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Collection string         `gorm:"column:collection;type:varchar(64);not null;uniqueIndex:idx_snapshot_collection_slug"`
	Slug       string         `gorm:"column:slug;type:varchar(191);not null;uniqueIndex:idx_snapshot_collection_slug"`
	Name       string         `gorm:"column:name;type:varchar(255)"`
	Payload    datatypes.JSON `gorm:"column:payload"`
	FetchedAt  time.Time      `gorm:"column:fetched_at;not null"`
}

func (Snapshot) TableName() string {
	return "content_snapshot"
}
