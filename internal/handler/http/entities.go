// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-medi-vault/internal/app"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/utils"
	"github.com/MKhiriev/go-medi-vault/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "records", h.services.EntityService.ListRecords)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	createEntity(w, r, "record", h.services.EntityService.CreateRecord)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.OwnerFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerInContext).Str("func", "*Handler.deleteRecord").Send()
		http.Error(w, app.MsgNoOwnerInContext, http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.EntityService.DeleteRecord(ctx, owner, id); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("id", id).Int("status", status).Msg("error deleting record")
		http.Error(w, errorText(err, status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listVitals(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "vitals", h.services.EntityService.ListVitals)
}

func (h *Handler) createVital(w http.ResponseWriter, r *http.Request) {
	createEntity(w, r, "vital", h.services.EntityService.CreateVital)
}

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "reminders", h.services.EntityService.ListReminders)
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	createEntity(w, r, "reminder", h.services.EntityService.CreateReminder)
}

// listEntities answers with every entity the authenticated owner keeps. An
// owner with nothing stored gets an empty JSON array.
func listEntities[T any](w http.ResponseWriter, r *http.Request, kind string, list func(context.Context, int64) ([]T, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.OwnerFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerInContext).Str("kind", kind).Send()
		http.Error(w, app.MsgNoOwnerInContext, http.StatusUnauthorized)
		return
	}

	items, err := list(ctx, owner)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("kind", kind).Int("status", status).Msg("error listing entities")
		http.Error(w, errorText(err, status), status)
		return
	}
	if items == nil {
		items = []T{}
	}

	if _, err = utils.WriteJSON(w, items, http.StatusOK); err != nil {
		log.Err(err).Str("kind", kind).Msg("error writing response")
	}
}

// createEntity stores the entity from the request body for the authenticated
// owner and answers 201 with the stored copy, server fields included.
func createEntity[E models.Entity, R any](w http.ResponseWriter, r *http.Request, kind string, create func(context.Context, int64, E) (R, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.OwnerFromContext(ctx)
	if !found {
		log.Err(ErrNoOwnerInContext).Str("kind", kind).Send()
		http.Error(w, app.MsgNoOwnerInContext, http.StatusUnauthorized)
		return
	}

	var entity E
	if err := utils.DecodeStrictJSON(r.Body, &entity); err != nil {
		log.Err(err).Str("kind", kind).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	stored, err := create(ctx, owner, entity)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("kind", kind).Str("natural_key", entity.NaturalKey()).Int("status", status).Msg("error creating entity")
		http.Error(w, errorText(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, stored, http.StatusCreated); err != nil {
		log.Err(err).Str("kind", kind).Msg("error writing response")
	}
}
