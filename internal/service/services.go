package service

import (
	"github.com/okhapkin/go-match-sync/internal/adapter"
	"github.com/okhapkin/go-match-sync/internal/store"
)

type ClientServices struct {
	MatchService MatchService
	SyncService  SyncService
	SyncJob      SyncJob
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.RemoteGateway) *ClientServices {
	syncSvc := NewSyncCoordinator(storages, gateway)
	matchSvc := NewMatchService(storages, syncSvc)

	return &ClientServices{
		MatchService: matchSvc,
		SyncService:  syncSvc,
		SyncJob:      NewSyncJob(syncSvc),
	}
}
