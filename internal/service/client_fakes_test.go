package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// memRemote is an in-memory remote store. It accepts every token in
// tokens and assigns server fields the way the backend does.
type memRemote struct {
	mu sync.Mutex

	tokens    map[string]int64
	seq       int
	records   []models.RemoteRecord
	vitals    []models.RemoteVital
	reminders []models.RemoteReminder

	creates int
	lists   int
}

func newMemRemote(tokens ...string) *memRemote {
	r := &memRemote{tokens: map[string]int64{}}
	for i, token := range tokens {
		r.tokens[token] = int64(i + 1)
	}
	return r
}

var _ adapter.RemoteStore = (*memRemote)(nil)

func (r *memRemote) owner(token string) (int64, error) {
	owner, ok := r.tokens[token]
	if !ok {
		return 0, adapter.ErrUnauthorized
	}
	return owner, nil
}

func (r *memRemote) fields(owner int64) models.ServerFields {
	r.seq++
	return models.ServerFields{
		ServerID:        fmt.Sprintf("srv-%d", r.seq),
		Owner:           owner,
		ServerCreatedAt: time.Date(2025, 1, 1, 0, 0, r.seq, 0, time.UTC),
	}
}

func (r *memRemote) Register(_ context.Context, creds models.Credentials) (models.AccountSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := "token-" + creds.Email
	r.tokens[token] = int64(len(r.tokens) + 1)
	return models.AccountSession{UserID: r.tokens[token], Email: creds.Email, Token: token}, nil
}

func (r *memRemote) Login(_ context.Context, creds models.Credentials) (models.AccountSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := "token-" + creds.Email
	owner, ok := r.tokens[token]
	if !ok {
		return models.AccountSession{}, adapter.ErrUnauthorized
	}
	return models.AccountSession{UserID: owner, Email: creds.Email, Token: token}, nil
}

func (r *memRemote) ListRecords(_ context.Context, token string) ([]models.RemoteRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return nil, err
	}
	r.lists++

	var out []models.RemoteRecord
	for _, rec := range r.records {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRemote) CreateRecord(_ context.Context, token string, rec models.Record) (models.RemoteRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return models.RemoteRecord{}, err
	}
	r.creates++

	rec.ID = 0
	created := models.RemoteRecord{ServerFields: r.fields(owner), Record: rec}
	r.records = append(r.records, created)
	return created, nil
}

func (r *memRemote) DeleteRecord(_ context.Context, token string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.owner(token); err != nil {
		return err
	}
	for i, rec := range r.records {
		if rec.ServerID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (r *memRemote) ListVitals(_ context.Context, token string) ([]models.RemoteVital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return nil, err
	}
	r.lists++

	var out []models.RemoteVital
	for _, v := range r.vitals {
		if v.Owner == owner {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memRemote) CreateVital(_ context.Context, token string, vital models.Vital) (models.RemoteVital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return models.RemoteVital{}, err
	}
	r.creates++

	vital.ID = 0
	created := models.RemoteVital{ServerFields: r.fields(owner), Vital: vital}
	r.vitals = append(r.vitals, created)
	return created, nil
}

func (r *memRemote) ListReminders(_ context.Context, token string) ([]models.RemoteReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return nil, err
	}
	r.lists++

	var out []models.RemoteReminder
	for _, rem := range r.reminders {
		if rem.Owner == owner {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *memRemote) CreateReminder(_ context.Context, token string, reminder models.Reminder) (models.RemoteReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.owner(token)
	if err != nil {
		return models.RemoteReminder{}, err
	}
	r.creates++

	reminder.ID = 0
	created := models.RemoteReminder{ServerFields: r.fields(owner), Reminder: reminder}
	r.reminders = append(r.reminders, created)
	return created, nil
}

func (r *memRemote) counts() (lists, creates int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists, r.creates
}

// memTokens is a TokenStore kept in memory.
type memTokens struct {
	mu      sync.Mutex
	session *models.AccountSession
	loadErr error
}

var _ store.TokenStore = (*memTokens)(nil)

func (m *memTokens) Load() (models.AccountSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return models.AccountSession{}, m.loadErr
	}
	if m.session == nil {
		return models.AccountSession{}, store.ErrTokenNotFound
	}
	return *m.session, nil
}

func (m *memTokens) Save(session models.AccountSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &session
	return nil
}

func (m *memTokens) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

const (
	testIV   = "000102030405060708090a0b0c0d0e0f"
	testSalt = "f0e0d0c0b0a090807060504030201000"
)

func testRecord(name, date string) models.Record {
	return models.Record{
		Name:          name,
		Type:          "application/pdf",
		Category:      models.CategoryLabReport,
		Date:          date,
		Size:          3,
		EncryptedData: "c2VhbGVkLWJ5dGVz",
		IV:            testIV,
		Salt:          testSalt,
		CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testVital(timestamp string) models.Vital {
	return models.Vital{
		Type:      "Heart Rate",
		Value:     "72",
		Unit:      "bpm",
		Timestamp: timestamp,
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testReminder(name string) models.Reminder {
	return models.Reminder{
		MedicineName: name,
		Dosage:       "10mg",
		Frequency:    DefaultReminderFrequency,
		Time:         DefaultReminderTime,
		IsActive:     true,
		NextDose:     DefaultReminderTime,
		CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}
