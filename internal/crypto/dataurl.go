// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURLScheme = "data:"
	base64Marker  = ";base64,"

	// DefaultMIMEType is used when a file has no detectable type.
	DefaultMIMEType = "application/octet-stream"
)

// EncodeDataURL renders data as a base64 data URL, the textual form binary
// files take before they are encrypted.
func EncodeDataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	return dataURLScheme + mimeType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL parses a base64 data URL back into its MIME type and bytes.
// It is also the structural check applied to freshly decrypted content.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, dataURLScheme)
	if !ok {
		return "", nil, fmt.Errorf("%w: missing scheme", ErrInvalidDataURL)
	}

	mimeType, payload, ok := strings.Cut(rest, base64Marker)
	if !ok {
		return "", nil, fmt.Errorf("%w: not base64 encoded", ErrInvalidDataURL)
	}
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	return mimeType, data, nil
}
