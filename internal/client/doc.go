// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the medi-vault client process.
//
// It wires the local store, the remote store adapter, the passcode vault and
// the background sync worker under the terminal UI, and closes them in order
// when the UI exits.
package client
