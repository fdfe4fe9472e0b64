// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// dateLayout is the layout of record dates.
const dateLayout = "2006-01-02"

type clientDocumentService struct {
	records store.RecordRepository
	cipher  crypto.Cipher
	logger  *logger.Logger

	now func() time.Time
}

func NewClientDocumentService(records store.RecordRepository, cipher crypto.Cipher, logger *logger.Logger) DocumentService {
	return &clientDocumentService{
		records: records,
		cipher:  cipher,
		logger:  logger,
		now:     time.Now,
	}
}

func (d *clientDocumentService) Upload(ctx context.Context, key crypto.KeySource, upload models.DocumentUpload) (models.Record, error) {
	rec := models.Record{
		Name:     strings.TrimSpace(upload.Name),
		Type:     upload.MIMEType,
		Category: upload.Category,
		Doctor:   strings.TrimSpace(upload.Doctor),
		Hospital: strings.TrimSpace(upload.Hospital),
		Date:     upload.Date,
		Size:     int64(len(upload.Data)),
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(upload.FileName), filepath.Ext(upload.FileName))
	}
	if rec.Type == "" {
		rec.Type = crypto.DefaultMIMEType
	}
	if rec.Category == "" {
		rec.Category = models.CategoryOther
	}
	if rec.Date == "" {
		rec.Date = d.now().Format(dateLayout)
	}

	payload := crypto.EncodeDataURL(rec.Type, upload.Data)

	var blob models.EncryptedBlob
	err := key.WithKey(func(k []byte) error {
		var err error
		blob, err = d.cipher.Encrypt(payload, k)
		return err
	})
	if err != nil {
		d.logger.Err(err).Str("func", "clientDocumentService.Upload").Msg("error encrypting document")
		return models.Record{}, fmt.Errorf("error encrypting document: %w", err)
	}

	saved, err := d.records.SaveRecord(ctx, rec.WithBlob(blob))
	if err != nil {
		d.logger.Err(err).Str("func", "clientDocumentService.Upload").Msg("error saving record")
		return models.Record{}, fmt.Errorf("error saving record: %w", err)
	}

	d.logger.Info().
		Str("func", "clientDocumentService.Upload").
		Int64("record_id", saved.ID).
		Int64("size", saved.Size).
		Msg("document encrypted and stored")

	return saved, nil
}

func (d *clientDocumentService) Open(ctx context.Context, key crypto.KeySource, id int64) (models.Document, error) {
	rec, err := d.records.GetRecord(ctx, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("error loading record: %w", err)
	}

	var payload string
	err = key.WithKey(func(k []byte) error {
		var err error
		payload, err = d.cipher.Decrypt(rec.Blob(), k)
		return err
	})
	if err != nil {
		d.logger.Warn().Str("func", "clientDocumentService.Open").Int64("record_id", id).Msg("decryption failed")
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return models.Document{}, err
		}
		return models.Document{}, fmt.Errorf("error decrypting record: %w", err)
	}

	mimeType, data, err := crypto.DecodeDataURL(payload)
	if err != nil {
		d.logger.Warn().Str("func", "clientDocumentService.Open").Int64("record_id", id).Msg("decrypted content is not a data url")
		return models.Document{}, crypto.ErrDecryptionFailed
	}

	return models.Document{
		Record:   rec,
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

func (d *clientDocumentService) List(ctx context.Context) ([]models.Record, error) {
	records, err := d.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return records, nil
}

// Delete removes the record from this device only. A copy already pushed to
// the backend stays there and comes back on the next pull.
func (d *clientDocumentService) Delete(ctx context.Context, id int64) error {
	if err := d.records.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}
	return nil
}
