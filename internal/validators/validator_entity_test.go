// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medi-vault/models"
)

func validRecord() models.Record {
	return models.Record{
		Name:          "BloodTest",
		Type:          "application/pdf",
		Category:      models.CategoryLabReport,
		Date:          "2024-01-01",
		Size:          3,
		EncryptedData: "c2VhbGVk",
		IV:            strings.Repeat("ab", 16),
		Salt:          strings.Repeat("cd", 16),
	}
}

func TestNewEntityValidator(t *testing.T) {
	require.NotNil(t, NewEntityValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewEntityValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "record"), ErrUnsupportedType)
}

func TestValidate_Record(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.Record)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.Record) {}},
		{name: "optional fields", mutate: func(r *models.Record) { r.Doctor = "Dr. House" }},
		{name: "missing name", mutate: func(r *models.Record) { r.Name = "  " }, wantErr: ErrEmptyName},
		{name: "missing type", mutate: func(r *models.Record) { r.Type = "" }, wantErr: ErrEmptyType},
		{name: "missing category", mutate: func(r *models.Record) { r.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "negative size", mutate: func(r *models.Record) { r.Size = -1 }, wantErr: ErrNegativeSize},
		{name: "missing content", mutate: func(r *models.Record) { r.EncryptedData = "" }, wantErr: ErrEmptyEncryptedData},
		{name: "short iv", mutate: func(r *models.Record) { r.IV = "abcd" }, wantErr: ErrInvalidIV},
		{name: "non-hex salt", mutate: func(r *models.Record) { r.Salt = strings.Repeat("zz", 16) }, wantErr: ErrInvalidSalt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := v.Validate(ctx, &rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidEntity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RecordJoinsErrors(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(), models.Record{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, err, ErrEmptyEncryptedData)
	assert.ErrorIs(t, err, ErrInvalidSalt)
}

func TestValidate_FieldScope(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	rec := validRecord()
	rec.EncryptedData = ""

	assert.NoError(t, v.Validate(ctx, rec, FieldName, FieldIV))
	assert.ErrorIs(t, v.Validate(ctx, rec, FieldEncryptedData), ErrEmptyEncryptedData)
	assert.ErrorIs(t, v.Validate(ctx, rec, "nope"), ErrUnknownField)
}

func TestValidate_Vital(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	ok := models.Vital{Type: "Heart Rate", Value: "72", Unit: "bpm", Timestamp: "2024-01-01T08:00"}
	assert.NoError(t, v.Validate(ctx, ok))

	missing := ok
	missing.Timestamp = ""
	assert.ErrorIs(t, v.Validate(ctx, &missing), ErrEmptyTimestamp)

	missing = ok
	missing.Unit = ""
	assert.ErrorIs(t, v.Validate(ctx, missing), ErrEmptyUnit)
}

func TestValidate_Reminder(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Reminder{MedicineName: "Aspirin"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Reminder{Dosage: "100mg"}), ErrEmptyMedicineName)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "jane@example.com", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "secret1"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "jane", Password: "secret1"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "jane@example.com", Password: "123"}), ErrShortPassword)
}
