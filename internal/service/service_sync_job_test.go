// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhapkin/go-match-sync/models"
)

// spySyncService counts push and pull passes without mockgen expectations.
type spySyncService struct {
	pushCalls atomic.Int64
	pullCalls atomic.Int64
	lastUser  atomic.Int64
	pushErr   error
	pullErr   error
}

func (s *spySyncService) PushOne(_ context.Context, _ models.SwipeRecord) error { return nil }

func (s *spySyncService) PushAll(_ context.Context) (models.SyncReport, error) {
	s.pushCalls.Add(1)
	return models.SyncReport{}, s.pushErr
}

func (s *spySyncService) Pull(_ context.Context, userID int64) error {
	s.pullCalls.Add(1)
	s.lastUser.Store(userID)
	return s.pullErr
}

func (s *spySyncService) RefreshProfiles(_ context.Context) error { return nil }

func (s *spySyncService) Mode() models.SyncMode { return models.ModeOnline }

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	require.NotNil(t, job)

	var _ SyncJob = job
}

func TestSyncJob_Start_RunsPushAndPull(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx := context.Background()

	// 10ms interval: expect several ticks within 55ms
	job.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.pushCalls.Load(), int64(3))
	assert.GreaterOrEqual(t, spy.pullCalls.Load(), int64(3))
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.pushCalls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.pushCalls.Load())
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{})
	job.Start(context.Background(), 1, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes: no ticks within 20ms
	job.Start(ctx, 1, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.pushCalls.Load())
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.pushCalls.Load()
	assert.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 2, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.pushCalls.Load(), callsBefore)
	assert.Equal(t, int64(2), spy.lastUser.Load())
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_SyncErrors_DoNotStopJob(t *testing.T) {
	spy := &spySyncService{pushErr: assert.AnError, pullErr: assert.AnError}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 1, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.pushCalls.Load(), int64(3))
}
