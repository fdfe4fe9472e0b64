// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ICEData is the "in case of emergency" card meant for first responders.
// It is stored unencrypted so it can be shown while the vault is locked.
type ICEData struct {
	Name          string `json:"name"`
	BloodGroup    string `json:"bloodGroup"`
	Allergies     string `json:"allergies"`
	Conditions    string `json:"conditions"`
	ContactName   string `json:"contactName"`
	ContactNumber string `json:"contactNumber"`
}

// DefaultICEData is shown until the user saves their own card.
func DefaultICEData() ICEData {
	return ICEData{
		Name:          "User Name",
		BloodGroup:    "O+",
		Allergies:     "None",
		Conditions:    "None",
		ContactName:   "Emergency Contact",
		ContactNumber: "000-000-0000",
	}
}
