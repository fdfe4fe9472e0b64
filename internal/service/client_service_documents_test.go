package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/mock"
	"github.com/MKhiriev/go-medi-vault/models"
)

// staticKey lends a fixed key.
type staticKey []byte

func (k staticKey) WithKey(fn func(key []byte) error) error {
	return fn(k)
}

func newTestDocumentService(t *testing.T) (*clientDocumentService, *mock.MockRecordRepository, *mock.MockCipher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordRepository(ctrl)
	cipher := mock.NewMockCipher(ctrl)

	svc := NewClientDocumentService(records, cipher, logger.Nop()).(*clientDocumentService)
	svc.now = func() time.Time { return time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC) }
	return svc, records, cipher
}

var testBlob = models.EncryptedBlob{Content: "c2VhbGVk", IV: testIV, Salt: testSalt}

func TestDocumentUpload_EncryptsDataURL(t *testing.T) {
	svc, records, cipher := newTestDocumentService(t)

	cipher.EXPECT().
		Encrypt("data:application/pdf;base64,YWJj", []byte("5678")).
		Return(testBlob, nil)
	records.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Record) (models.Record, error) {
			assert.Equal(t, "BloodTest", rec.Name)
			assert.Equal(t, "application/pdf", rec.Type)
			assert.Equal(t, models.CategoryLabReport, rec.Category)
			assert.Equal(t, "2024-01-01", rec.Date)
			assert.Equal(t, int64(3), rec.Size)
			assert.Equal(t, testBlob, rec.Blob())
			rec.ID = 7
			return rec, nil
		})

	rec, err := svc.Upload(context.Background(), staticKey("5678"), models.DocumentUpload{
		FileName: "scan.pdf",
		MIMEType: "application/pdf",
		Data:     []byte("abc"),
		Name:     "BloodTest",
		Category: models.CategoryLabReport,
		Date:     "2024-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
}

func TestDocumentUpload_Defaults(t *testing.T) {
	svc, records, cipher := newTestDocumentService(t)

	cipher.EXPECT().Encrypt("data:application/octet-stream;base64,AQI=", gomock.Any()).Return(testBlob, nil)
	records.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Record) (models.Record, error) {
			assert.Equal(t, "blood-panel.v2", rec.Name)
			assert.Equal(t, crypto.DefaultMIMEType, rec.Type)
			assert.Equal(t, models.CategoryOther, rec.Category)
			assert.Equal(t, "2024-06-30", rec.Date)
			return rec, nil
		})

	_, err := svc.Upload(context.Background(), staticKey("5678"), models.DocumentUpload{
		FileName: "/tmp/blood-panel.v2.png",
		Data:     []byte{1, 2},
	})
	require.NoError(t, err)
}

func TestDocumentUpload_EncryptFailureStoresNothing(t *testing.T) {
	svc, _, cipher := newTestDocumentService(t)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(models.EncryptedBlob{}, crypto.ErrEmptyPassword)

	_, err := svc.Upload(context.Background(), staticKey(""), models.DocumentUpload{FileName: "a.pdf", Data: []byte("abc")})

	assert.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestDocumentUpload_ClosedSession(t *testing.T) {
	svc, _, _ := newTestDocumentService(t)
	ctrl := gomock.NewController(t)
	key := mock.NewMockKeySource(ctrl)
	closed := errors.New("session closed")
	key.EXPECT().WithKey(gomock.Any()).Return(closed)

	_, err := svc.Upload(context.Background(), key, models.DocumentUpload{FileName: "a.pdf", Data: []byte("abc")})

	assert.ErrorIs(t, err, closed)
}

func TestDocumentOpen(t *testing.T) {
	stored := testRecord("BloodTest", "2024-01-01")
	stored.ID = 7

	tests := []struct {
		name      string
		plaintext string
		decErr    error
		wantData  []byte
		wantMIME  string
		wantErr   error
	}{
		{
			name:      "valid payload",
			plaintext: "data:application/pdf;base64,YWJj",
			wantData:  []byte("abc"),
			wantMIME:  "application/pdf",
		},
		{
			name:    "cipher rejects key",
			decErr:  crypto.ErrDecryptionFailed,
			wantErr: crypto.ErrDecryptionFailed,
		},
		{
			name:      "garbage plaintext",
			plaintext: "\x8f\x01 not a data url",
			wantErr:   crypto.ErrDecryptionFailed,
		},
		{
			name:      "truncated base64",
			plaintext: "data:application/pdf;base64,YW!j",
			wantErr:   crypto.ErrDecryptionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, records, cipher := newTestDocumentService(t)
			records.EXPECT().GetRecord(gomock.Any(), int64(7)).Return(stored, nil)
			cipher.EXPECT().Decrypt(stored.Blob(), []byte("5678")).Return(tt.plaintext, tt.decErr)

			doc, err := svc.Open(context.Background(), staticKey("5678"), 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, doc.Data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, doc.Data)
			assert.Equal(t, tt.wantMIME, doc.MIMEType)
			assert.Equal(t, stored, doc.Record)
		})
	}
}

func TestDocumentOpen_MissingRecord(t *testing.T) {
	svc, records, _ := newTestDocumentService(t)
	notFound := errors.New("record not found")
	records.EXPECT().GetRecord(gomock.Any(), int64(1)).Return(models.Record{}, notFound)

	_, err := svc.Open(context.Background(), staticKey("5678"), 1)
	assert.ErrorIs(t, err, notFound)
}

func TestDocumentListAndDelete(t *testing.T) {
	svc, records, _ := newTestDocumentService(t)
	list := []models.Record{testRecord("BloodTest", "2024-01-01")}

	records.EXPECT().ListRecords(gomock.Any()).Return(list, nil)
	records.EXPECT().DeleteRecord(gomock.Any(), int64(3)).Return(nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, got)

	assert.NoError(t, svc.Delete(context.Background(), 3))
}

// Real cipher round trip: the wrong passcode never yields a document.
func TestDocumentRoundTrip_RealCipher(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordRepository(ctrl)
	svc := NewClientDocumentService(records, crypto.NewCipher(), logger.Nop())

	var saved models.Record
	records.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Record) (models.Record, error) {
			rec.ID = 1
			saved = rec
			return rec, nil
		})
	records.EXPECT().GetRecord(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (models.Record, error) {
		return saved, nil
	}).Times(2)

	_, err := svc.Upload(context.Background(), staticKey("5678"), models.DocumentUpload{
		FileName: "BloodTest.txt",
		MIMEType: "text/plain",
		Data:     []byte("abc"),
		Date:     "2024-01-01",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "data:text/plain;base64,YWJj", saved.EncryptedData)

	doc, err := svc.Open(context.Background(), staticKey("5678"), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), doc.Data)

	_, err = svc.Open(context.Background(), staticKey("0000"), 1)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}
