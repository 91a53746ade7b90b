// Package snapshot mirrors CMS collections into the local snapshot table.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/model/entity"
	snapshotRepo "glomnidesigns.GO/model/repository/snapshot"
)

// Collections are mirrored by Sync.
var Collections = []string{
	cms.EndpointDesigns,
	cms.EndpointCategories,
	cms.EndpointInteriors,
	cms.EndpointInteriorCategories,
	cms.EndpointPortfolios,
}

// PageSize is the number of records requested per page while mirroring.
const PageSize = 100

type CollectionReport struct {
	Fetched int    `json:"fetched"`
	Stored  int    `json:"stored"`
	Pruned  int64  `json:"pruned"`
	Error   string `json:"error,omitempty"`
}

type Report struct {
	StartedAt   time.Time                   `json:"started_at"`
	Duration    time.Duration               `json:"duration"`
	Collections map[string]CollectionReport `json:"collections"`
}

type SyncService struct {
	client *cms.Client
	repo   *snapshotRepo.SnapshotRepository
	log    *zap.Logger
}

func NewSyncService(client *cms.Client, repo *snapshotRepo.SnapshotRepository, log *zap.Logger) *SyncService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SyncService{client: client, repo: repo, log: log}
}

// Sync fetches every collection in parallel. Collections that fetched
// successfully are upserted and rows no longer present upstream are
// pruned; failed collections are left untouched.
func (s *SyncService) Sync(ctx context.Context) (Report, error) {
	report := Report{StartedAt: time.Now(), Collections: make(map[string]CollectionReport, len(Collections))}
	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, collection := range Collections {
		collection := collection
		g.Go(func() error {
			cr, err := s.syncCollection(gctx, collection)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				cr.Error = err.Error()
				errs = append(errs, fmt.Errorf("%s: %w", collection, err))
			}
			report.Collections[collection] = cr
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	s.log.Info("content snapshot finished",
		zap.Duration("duration", report.Duration),
		zap.Int("failed", len(errs)),
	)
	return report, errors.Join(errs...)
}

// fetchAll pages through collection until the CMS reports the last page.
// Any failed page fails the whole collection so Prune never sees a partial list.
func (s *SyncService) fetchAll(ctx context.Context, collection string) ([]cms.Record, error) {
	var all []cms.Record
	for page := 1; ; page++ {
		res := s.client.GetPaginated(ctx, collection, page, PageSize, nil)
		if !res.Success {
			return nil, errors.New(res.Error)
		}
		all = append(all, res.Data...)
		if len(res.Data) == 0 || page >= cms.PageCount(res.Meta) {
			return all, nil
		}
	}
}

func (s *SyncService) syncCollection(ctx context.Context, collection string) (CollectionReport, error) {
	var cr CollectionReport
	records, err := s.fetchAll(ctx, collection)
	if err != nil {
		return cr, err
	}
	cr.Fetched = len(records)

	now := time.Now().UTC()
	rows := make([]entity.Snapshot, 0, len(records))
	slugs := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		slug := recordSlug(rec)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		payload, err := json.Marshal(rec)
		if err != nil {
			return cr, fmt.Errorf("encode %s: %w", slug, err)
		}
		rows = append(rows, entity.Snapshot{
			Collection: collection,
			Slug:       slug,
			Name:       recordName(rec),
			Payload:    datatypes.JSON(payload),
			FetchedAt:  now,
		})
		slugs = append(slugs, slug)
	}

	if err := s.repo.Upsert(ctx, rows); err != nil {
		return cr, err
	}
	cr.Stored = len(rows)
	pruned, err := s.repo.Prune(ctx, collection, slugs)
	if err != nil {
		return cr, err
	}
	cr.Pruned = pruned
	s.log.Debug("collection mirrored",
		zap.String("collection", collection),
		zap.Int("stored", cr.Stored),
		zap.Int64("pruned", pruned),
	)
	return cr, nil
}

// recordSlug falls back to the id for records without a slug.
func recordSlug(rec cms.Record) string {
	if s, ok := rec["slug"].(string); ok && s != "" {
		return s
	}
	if id, ok := rec["id"]; ok && id != nil {
		return fmt.Sprintf("id-%v", id)
	}
	return ""
}

func recordName(rec cms.Record) string {
	for _, k := range []string{"name", "title"} {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
