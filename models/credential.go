// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings keys of the local store.
const (
	SettingPasscode    = "passcode"
	SettingRecoveryKey = "recoveryKey"
	SettingICEData     = "iceData"
)

// Credential is the device vault verification record.
//
// PasscodeHash is a one-way hash of the passcode and is never the encryption
// key. RecoveryKey is shown to the user exactly once, at setup.
type Credential struct {
	PasscodeHash string
	RecoveryKey  string
}
