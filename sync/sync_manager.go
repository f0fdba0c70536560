package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Gamestore/metrics"
	"Gamestore/utils"

	"github.com/robfig/cron/v3"
)

// CatalogRefresher rebuilds the cached catalog lists
type CatalogRefresher interface {
	RefreshCatalogCache(ctx context.Context) error
}

// SyncManager keeps the Redis catalog cache in step with PostgreSQL on a
// schedule
type SyncManager struct {
	catalog CatalogRefresher
	timeout time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	lastRun time.Time
	lastErr error
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(catalog CatalogRefresher) *SyncManager {
	return &SyncManager{
		catalog: catalog,
		timeout: time.Minute,
	}
}

// Start schedules SyncCatalog with a cron spec such as "@every 10m".
// A run still in progress when the next one is due is skipped
func (sm *SyncManager) Start(schedule string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.cron != nil {
		return fmt.Errorf("sync manager already started")
	}

	logger := cron.PrintfLogger(utils.Log)
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	if _, err := c.AddFunc(schedule, sm.runScheduled); err != nil {
		return fmt.Errorf("invalid catalog sync schedule %q: %w", schedule, err)
	}
	c.Start()
	sm.cron = c
	utils.Log.WithField("schedule", schedule).Info("catalog sync scheduled")
	return nil
}

// Stop halts the schedule and waits for a running sync to finish
func (sm *SyncManager) Stop() {
	sm.mu.Lock()
	c := sm.cron
	sm.cron = nil
	sm.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// SyncCatalog invalidates and re-warms the catalog cache once
func (sm *SyncManager) SyncCatalog(ctx context.Context) error {
	start := time.Now()
	err := sm.catalog.RefreshCatalogCache(ctx)
	metrics.RecordCacheRefresh(err == nil)

	sm.mu.Lock()
	sm.lastRun = start
	sm.lastErr = err
	sm.mu.Unlock()

	if err != nil {
		return fmt.Errorf("error syncing catalog cache: %w", err)
	}
	utils.Log.WithField("duration", time.Since(start).String()).Debug("catalog cache refreshed")
	return nil
}

// LastRun reports when the last sync started and how it ended
func (sm *SyncManager) LastRun() (time.Time, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.lastRun, sm.lastErr
}

func (sm *SyncManager) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
	defer cancel()
	if err := sm.SyncCatalog(ctx); err != nil {
		utils.Log.WithError(err).Warn("scheduled catalog sync failed")
	}
}
