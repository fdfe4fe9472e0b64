// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/go-medi-vault/models"
)

const (
	FieldName          = "name"
	FieldType          = "type"
	FieldCategory      = "category"
	FieldSize          = "size"
	FieldEncryptedData = "encryptedData"
	FieldIV            = "iv"
	FieldSalt          = "salt"
	FieldValue         = "value"
	FieldUnit          = "unit"
	FieldTimestamp     = "timestamp"
	FieldMedicineName  = "medicineName"
	FieldEmail         = "email"
	FieldPassword      = "password"
)

// MinAccountPasswordLength is the minimum length of a remote account password.
const MinAccountPasswordLength = 6

const blobParamSize = 16

// EntityValidator validates records, vitals, reminders and account
// credentials.
type EntityValidator struct{}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	case models.Vital:
		return v.validateVital(ctx, value, fields...)
	case *models.Vital:
		return v.validateVital(ctx, *value, fields...)

	case models.Reminder:
		return v.validateReminder(ctx, value, fields...)
	case *models.Reminder:
		return v.validateReminder(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

type check struct {
	field string
	ok    bool
	err   error
}

// run evaluates checks restricted to fields (all checks when fields is
// empty) and joins the failures under ErrInvalidEntity.
func run(kind string, checks []check, fields ...string) error {
	for _, f := range fields {
		if !slices.ContainsFunc(checks, func(c check) bool { return c.field == f }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var errs []error
	for _, c := range checks {
		if len(fields) > 0 && !slices.Contains(fields, c.field) {
			continue
		}
		if !c.ok {
			errs = append(errs, c.err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidEntity, kind, errors.Join(errs...))
}

func (v *EntityValidator) validateRecord(_ context.Context, r models.Record, fields ...string) error {
	return run(string(models.KindRecord), []check{
		{FieldName, notBlank(r.Name), ErrEmptyName},
		{FieldType, notBlank(r.Type), ErrEmptyType},
		{FieldCategory, notBlank(r.Category), ErrEmptyCategory},
		{FieldSize, r.Size >= 0, ErrNegativeSize},
		{FieldEncryptedData, r.EncryptedData != "", ErrEmptyEncryptedData},
		{FieldIV, isHexOfSize(r.IV, blobParamSize), ErrInvalidIV},
		{FieldSalt, isHexOfSize(r.Salt, blobParamSize), ErrInvalidSalt},
	}, fields...)
}

func (v *EntityValidator) validateVital(_ context.Context, vt models.Vital, fields ...string) error {
	return run(string(models.KindVital), []check{
		{FieldType, notBlank(vt.Type), ErrEmptyType},
		{FieldValue, notBlank(vt.Value), ErrEmptyValue},
		{FieldUnit, notBlank(vt.Unit), ErrEmptyUnit},
		{FieldTimestamp, notBlank(vt.Timestamp), ErrEmptyTimestamp},
	}, fields...)
}

func (v *EntityValidator) validateReminder(_ context.Context, r models.Reminder, fields ...string) error {
	return run(string(models.KindReminder), []check{
		{FieldMedicineName, notBlank(r.MedicineName), ErrEmptyMedicineName},
	}, fields...)
}

func (v *EntityValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	_, mailErr := mail.ParseAddress(c.Email)
	return run("credentials", []check{
		{FieldEmail, notBlank(c.Email), ErrEmptyEmail},
		{FieldEmail, c.Email == "" || mailErr == nil, ErrInvalidEmail},
		{FieldPassword, len(c.Password) >= MinAccountPasswordLength, ErrShortPassword},
	}, fields...)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isHexOfSize(s string, size int) bool {
	if len(s) != size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
