// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// clientSyncService is the reconciliation engine. Each entity kind is
// reconciled by its own reconciler; kinds run concurrently and share
// nothing but the bearer token.
type clientSyncService struct {
	tokens store.TokenStore
	logger *logger.Logger

	reconcilers []kindReconciler
	now         func() time.Time
}

// NewClientSyncService wires the engine to the local repositories in
// storages and to the remote store.
func NewClientSyncService(storages *store.ClientStorages, remote adapter.RemoteStore, logger *logger.Logger) SyncService {
	records := &reconciler[models.Record, models.RemoteRecord]{
		kind:      models.KindRecord,
		listLocal: storages.Records.ListRecords,
		insertLocal: func(ctx context.Context, rec models.Record) error {
			_, err := storages.Records.SaveRecord(ctx, rec)
			return err
		},
		listRemote: remote.ListRecords,
		createRemote: func(ctx context.Context, token string, rec models.Record) error {
			_, err := remote.CreateRecord(ctx, token, rec)
			return err
		},
	}

	vitals := &reconciler[models.Vital, models.RemoteVital]{
		kind:      models.KindVital,
		listLocal: storages.Vitals.ListVitals,
		insertLocal: func(ctx context.Context, vital models.Vital) error {
			_, err := storages.Vitals.SaveVital(ctx, vital)
			return err
		},
		listRemote: remote.ListVitals,
		createRemote: func(ctx context.Context, token string, vital models.Vital) error {
			_, err := remote.CreateVital(ctx, token, vital)
			return err
		},
	}

	reminders := &reconciler[models.Reminder, models.RemoteReminder]{
		kind:      models.KindReminder,
		listLocal: storages.Reminders.ListReminders,
		insertLocal: func(ctx context.Context, reminder models.Reminder) error {
			_, err := storages.Reminders.SaveReminder(ctx, reminder)
			return err
		},
		listRemote: remote.ListReminders,
		createRemote: func(ctx context.Context, token string, reminder models.Reminder) error {
			_, err := remote.CreateReminder(ctx, token, reminder)
			return err
		},
	}

	return &clientSyncService{
		tokens:      storages.Tokens,
		logger:      logger,
		reconcilers: []kindReconciler{records, vitals, reminders},
		now:         time.Now,
	}
}

func (s *clientSyncService) SyncToCloud(ctx context.Context) models.SyncReport {
	return s.run(ctx, models.SyncPush)
}

func (s *clientSyncService) PullFromCloud(ctx context.Context) models.SyncReport {
	return s.run(ctx, models.SyncPull)
}

func (s *clientSyncService) run(ctx context.Context, direction models.SyncDirection) models.SyncReport {
	log := s.logger.With().
		Str("func", "clientSyncService.run").
		Str("direction", string(direction)).
		Logger()

	report := models.SyncReport{
		Direction: direction,
		StartedAt: s.now(),
	}

	account, err := s.tokens.Load()
	if err != nil || !account.Authenticated() {
		if err != nil && !errors.Is(err, store.ErrTokenNotFound) {
			log.Warn().Err(err).Msg("error loading remote session, sync skipped")
		} else {
			log.Debug().Msg("no remote session, sync skipped")
		}
		report.Skipped = true
		report.FinishedAt = s.now()
		return report
	}

	parts := make([]models.SyncReport, len(s.reconcilers))

	var wg sync.WaitGroup
	for i, r := range s.reconcilers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if direction == models.SyncPush {
				parts[i] = r.push(ctx, account.Token)
			} else {
				parts[i] = r.pull(ctx, account.Token)
			}
		}()
	}
	wg.Wait()

	for _, part := range parts {
		report.Merge(part)
	}
	report.FinishedAt = s.now()

	for _, failure := range report.Failed {
		log.Err(failure.Err).
			Str("kind", string(failure.Kind)).
			Str("natural_key", failure.NaturalKey).
			Msg("sync step failed")
	}
	log.Info().
		Int("applied", len(report.Applied)).
		Int("failed", len(report.Failed)).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync finished")

	return report
}

type kindReconciler interface {
	push(ctx context.Context, token string) models.SyncReport
	pull(ctx context.Context, token string) models.SyncReport
}

// remoteEntity is a server copy of a local entity L.
type remoteEntity[L models.Entity] interface {
	Stripped() L
}

// reconciler copies one entity kind between the stores, matching items on
// their natural key. Items are never modified on the way: ciphertext, IV and
// salt travel as they are.
type reconciler[L models.Entity, R remoteEntity[L]] struct {
	kind models.EntityKind

	listLocal    func(ctx context.Context) ([]L, error)
	insertLocal  func(ctx context.Context, item L) error
	listRemote   func(ctx context.Context, token string) ([]R, error)
	createRemote func(ctx context.Context, token string, item L) error
}

// push creates remotely every local item whose key the remote store lacks.
// Pushed keys join the remote set, so duplicate local keys are pushed once.
func (r *reconciler[L, R]) push(ctx context.Context, token string) models.SyncReport {
	var report models.SyncReport

	local, err := r.listLocal(ctx)
	if err != nil {
		r.abort(&report, err)
		return report
	}
	remote, err := r.listRemote(ctx, token)
	if err != nil {
		r.abort(&report, err)
		return report
	}

	keys := make(map[string]struct{}, len(remote))
	for _, item := range remote {
		keys[item.Stripped().NaturalKey()] = struct{}{}
	}

	for _, item := range local {
		if err := ctx.Err(); err != nil {
			r.abort(&report, err)
			break
		}

		key := item.NaturalKey()
		if _, ok := keys[key]; ok {
			continue
		}
		if err := r.createRemote(ctx, token, item); err != nil {
			r.fail(&report, key, err)
			continue
		}

		keys[key] = struct{}{}
		report.Applied = append(report.Applied, models.SyncItem{Kind: r.kind, NaturalKey: key})
	}

	return report
}

// pull inserts locally every remote item whose key the local store lacks.
// Inserted keys join the local set, so duplicate remote keys land once.
func (r *reconciler[L, R]) pull(ctx context.Context, token string) models.SyncReport {
	var report models.SyncReport

	remote, err := r.listRemote(ctx, token)
	if err != nil {
		r.abort(&report, err)
		return report
	}
	local, err := r.listLocal(ctx)
	if err != nil {
		r.abort(&report, err)
		return report
	}

	keys := make(map[string]struct{}, len(local))
	for _, item := range local {
		keys[item.NaturalKey()] = struct{}{}
	}

	for _, item := range remote {
		if err := ctx.Err(); err != nil {
			r.abort(&report, err)
			break
		}

		stripped := item.Stripped()
		key := stripped.NaturalKey()
		if _, ok := keys[key]; ok {
			continue
		}
		if err := r.insertLocal(ctx, stripped); err != nil {
			r.fail(&report, key, err)
			continue
		}

		keys[key] = struct{}{}
		report.Applied = append(report.Applied, models.SyncItem{Kind: r.kind, NaturalKey: key})
	}

	return report
}

func (r *reconciler[L, R]) abort(report *models.SyncReport, err error) {
	r.fail(report, "", err)
}

func (r *reconciler[L, R]) fail(report *models.SyncReport, key string, err error) {
	report.Failed = append(report.Failed, models.SyncFailure{
		Kind:       r.kind,
		NaturalKey: key,
		Err:        err,
		Reason:     err.Error(),
	})
}
