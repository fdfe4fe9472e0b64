package vault

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/mock"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// memSettings is a minimal in-memory settings table for state machine tests.
type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: map[string]string{}}
}

func (m *memSettings) GetSetting(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (m *memSettings) PutSetting(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSettings) SaveCredential(_ context.Context, cred models.Credential) error {
	if _, ok := m.values[models.SettingPasscode]; ok {
		return store.ErrCredentialExists
	}
	m.values[models.SettingPasscode] = cred.PasscodeHash
	m.values[models.SettingRecoveryKey] = cred.RecoveryKey
	return nil
}

func (m *memSettings) DeleteSetting(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func setupUnlocked(t *testing.T, v *Vault, passcode string) *Session {
	t.Helper()
	_, err := v.Setup(context.Background(), []byte(passcode))
	require.NoError(t, err)
	session, err := v.AcknowledgeRecoveryKey()
	require.NoError(t, err)
	return session
}

func TestVault_FreshDeviceIsUninitialized(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())

	state, err := v.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUninitialized, state)
}

func TestVault_ConfiguredDeviceStartsLocked(t *testing.T) {
	settings := newMemSettings()
	settings.values[models.SettingPasscode] = crypto.HashPasscode([]byte("1234"))

	v := New(settings, logger.Nop())
	state, err := v.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateLocked, state)
}

func TestVault_SetupPersistsHashAndRecoveryKey(t *testing.T) {
	settings := newMemSettings()
	v := New(settings, logger.Nop())
	ctx := context.Background()

	recoveryKey, err := v.Setup(ctx, []byte("1234"))
	require.NoError(t, err)

	assert.Len(t, recoveryKey, crypto.RecoveryKeySize*2)
	assert.Equal(t, recoveryKey, settings.values[models.SettingRecoveryKey])
	assert.Equal(t, crypto.HashPasscode([]byte("1234")), settings.values[models.SettingPasscode])
	assert.NotContains(t, settings.values, "1234")

	state, _ := v.Status(ctx)
	assert.Equal(t, StateAwaitingConfirmation, state)

	_, ok := v.Session()
	assert.False(t, ok, "no session before the recovery key is acknowledged")
}

func TestVault_SetupWipesPasscode(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	passcode := []byte("1234")

	_, err := v.Setup(context.Background(), passcode)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, passcode)
}

func TestVault_SetupRecoveryKeyDiffersPerDevice(t *testing.T) {
	a, err := New(newMemSettings(), logger.Nop()).Setup(context.Background(), []byte("5678"))
	require.NoError(t, err)
	b, err := New(newMemSettings(), logger.Nop()).Setup(context.Background(), []byte("5678"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVault_SetupRejectsShortPasscode(t *testing.T) {
	settings := newMemSettings()
	v := New(settings, logger.Nop())

	_, err := v.Setup(context.Background(), []byte("123"))

	assert.ErrorIs(t, err, ErrPasscodeTooShort)
	assert.Empty(t, settings.values)
}

func TestVault_SetupCountsCharactersNotBytes(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())

	// three characters, six bytes
	_, err := v.Setup(context.Background(), []byte("äöü"))
	assert.ErrorIs(t, err, ErrPasscodeTooShort)
}

func TestVault_SetupTwiceFails(t *testing.T) {
	settings := newMemSettings()
	v := New(settings, logger.Nop())
	setupUnlocked(t, v, "1234")
	stored := settings.values[models.SettingPasscode]

	_, err := v.Setup(context.Background(), []byte("9999"))

	assert.ErrorIs(t, err, ErrAlreadyConfigured)
	assert.Equal(t, stored, settings.values[models.SettingPasscode])
}

func TestVault_SetupOverExistingCredentialFails(t *testing.T) {
	settings := newMemSettings()
	settings.values[models.SettingPasscode] = crypto.HashPasscode([]byte("1234"))
	v := New(settings, logger.Nop())

	_, err := v.Setup(context.Background(), []byte("5678"))
	assert.ErrorIs(t, err, ErrAlreadyConfigured)
}

func TestVault_SetupLosesRaceToAnotherVault(t *testing.T) {
	ctx := context.Background()
	settings := newMemSettings()
	first := New(settings, logger.Nop())
	second := New(settings, logger.Nop())

	// both saw a fresh device
	for _, v := range []*Vault{first, second} {
		state, err := v.Status(ctx)
		require.NoError(t, err)
		require.Equal(t, StateUninitialized, state)
	}

	firstKey, err := first.Setup(ctx, []byte("1234"))
	require.NoError(t, err)

	_, err = second.Setup(ctx, []byte("9999"))
	require.ErrorIs(t, err, ErrAlreadyConfigured)

	state, err := second.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateLocked, state)
	assert.Equal(t, firstKey, settings.values[models.SettingRecoveryKey])

	_, err = second.Unlock(ctx, []byte("9999"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	session, err := second.Unlock(ctx, []byte("1234"))
	require.NoError(t, err)
	assert.True(t, session.Alive())
}

func TestVault_SetupOnSharedDatabaseFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "vault.db")

	open := func() *Vault {
		db, err := store.NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
		require.NoError(t, err)
		require.NoError(t, db.Migrate())
		t.Cleanup(func() { db.Close() })
		return New(store.NewLocalSettingsRepository(db), logger.Nop())
	}

	a, b := open(), open()
	for _, v := range []*Vault{a, b} {
		state, err := v.Status(ctx)
		require.NoError(t, err)
		require.Equal(t, StateUninitialized, state)
	}

	_, err := a.Setup(ctx, []byte("1234"))
	require.NoError(t, err)
	_, err = b.Setup(ctx, []byte("9999"))
	require.ErrorIs(t, err, ErrAlreadyConfigured)

	fresh := open()
	_, err = fresh.Unlock(ctx, []byte("9999"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	session, err := fresh.Unlock(ctx, []byte("1234"))
	require.NoError(t, err)
	assert.True(t, session.Alive())
}

func TestVault_AcknowledgeOpensSession(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	session := setupUnlocked(t, v, "1234")

	state, _ := v.Status(context.Background())
	assert.Equal(t, StateUnlocked, state)

	current, ok := v.Session()
	require.True(t, ok)
	assert.Same(t, session, current)

	require.NoError(t, session.WithKey(func(key []byte) error {
		assert.Equal(t, []byte("1234"), key)
		return nil
	}))
}

func TestVault_AcknowledgeWithoutSetup(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())

	_, err := v.AcknowledgeRecoveryKey()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestVault_UnlockDeterminism(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	setupUnlocked(t, v, "1234")
	v.Lock()
	ctx := context.Background()

	_, err := v.Unlock(ctx, []byte("0000"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	state, _ := v.Status(ctx)
	assert.Equal(t, StateLocked, state)

	session, err := v.Unlock(ctx, []byte("1234"))
	require.NoError(t, err)
	assert.True(t, session.Alive())
	state, _ = v.Status(ctx)
	assert.Equal(t, StateUnlocked, state)
}

func TestVault_UnlockWithoutVaultLooksLikeWrongPasscode(t *testing.T) {
	unconfigured := New(newMemSettings(), logger.Nop())
	_, errMissing := unconfigured.Unlock(context.Background(), []byte("1234"))

	configured := New(newMemSettings(), logger.Nop())
	setupUnlocked(t, configured, "5678")
	configured.Lock()
	_, errWrong := configured.Unlock(context.Background(), []byte("1234"))

	require.ErrorIs(t, errMissing, ErrAuthenticationFailed)
	require.ErrorIs(t, errWrong, ErrAuthenticationFailed)
	assert.Equal(t, errMissing.Error(), errWrong.Error())

	state, _ := unconfigured.Status(context.Background())
	assert.Equal(t, StateUninitialized, state)
}

func TestVault_UnlockWhileAwaitingConfirmation(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	_, err := v.Setup(context.Background(), []byte("1234"))
	require.NoError(t, err)

	_, err = v.Unlock(context.Background(), []byte("1234"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestVault_UnlockReplacesPreviousSession(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	first := setupUnlocked(t, v, "1234")

	second, err := v.Unlock(context.Background(), []byte("1234"))
	require.NoError(t, err)

	assert.False(t, first.Alive())
	assert.True(t, second.Alive())
}

func TestVault_LockDestroysSession(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	session := setupUnlocked(t, v, "1234")

	v.Lock()

	assert.False(t, session.Alive())
	assert.ErrorIs(t, session.WithKey(func([]byte) error { return nil }), ErrSessionClosed)
	_, ok := v.Session()
	assert.False(t, ok)

	state, _ := v.Status(context.Background())
	assert.Equal(t, StateLocked, state)

	// locking again is a no-op
	v.Lock()
	state, _ = v.Status(context.Background())
	assert.Equal(t, StateLocked, state)
}

func TestVault_LockDuringConfirmation(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	_, err := v.Setup(context.Background(), []byte("1234"))
	require.NoError(t, err)

	v.Lock()

	state, _ := v.Status(context.Background())
	assert.Equal(t, StateLocked, state)
	_, err = v.AcknowledgeRecoveryKey()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestVault_LockOnFreshDeviceStaysUninitialized(t *testing.T) {
	v := New(newMemSettings(), logger.Nop())
	ctx := context.Background()
	_, _ = v.Status(ctx)

	v.Lock()

	state, _ := v.Status(ctx)
	assert.Equal(t, StateUninitialized, state)
}

func TestVault_StorageErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	storageErr := errors.New("disk I/O error")

	settings.EXPECT().GetSetting(gomock.Any(), models.SettingPasscode).Return("", storageErr)

	v := New(settings, logger.Nop())
	_, err := v.Unlock(context.Background(), []byte("1234"))

	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestVault_SetupSaveFailureKeepsUninitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	storageErr := errors.New("database is locked")

	gomock.InOrder(
		settings.EXPECT().GetSetting(gomock.Any(), models.SettingPasscode).Return("", store.ErrSettingNotFound),
		settings.EXPECT().SaveCredential(gomock.Any(), gomock.Any()).Return(storageErr),
	)

	v := New(settings, logger.Nop())
	_, err := v.Setup(context.Background(), []byte("1234"))
	require.ErrorIs(t, err, storageErr)

	state, err := v.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUninitialized, state)
}

func TestConfirmPasscode(t *testing.T) {
	assert.NoError(t, ConfirmPasscode([]byte("1234"), []byte("1234")))
	assert.ErrorIs(t, ConfirmPasscode([]byte("1234"), []byte("1243")), ErrPasscodeMismatch)
	assert.ErrorIs(t, ConfirmPasscode([]byte("1234"), []byte("12345")), ErrPasscodeMismatch)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "UNINITIALIZED", StateUninitialized.String())
	assert.Equal(t, "AWAITING_CONFIRMATION", StateAwaitingConfirmation.String())
	assert.Equal(t, "UNLOCKED", StateUnlocked.String())
	assert.Equal(t, "LOCKED", StateLocked.String())
}
