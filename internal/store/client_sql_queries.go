// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	insertRecord = `
		INSERT INTO records (
			name,
			type,
			category,
			doctor,
			hospital,
			date,
			size,
			encrypted_data,
			iv,
			salt,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectRecordColumns = `
		SELECT
			id,
			name,
			type,
			category,
			doctor,
			hospital,
			date,
			size,
			encrypted_data,
			iv,
			salt,
			created_at
		FROM records`

	getRecord   = selectRecordColumns + ` WHERE id = ?;`
	listRecords = selectRecordColumns + ` ORDER BY created_at DESC, id DESC;`

	deleteRecord = `DELETE FROM records WHERE id = ?;`

	insertVital = `
		INSERT INTO vitals (
			type,
			value,
			unit,
			timestamp,
			created_at
		) VALUES (?, ?, ?, ?, ?);`

	listVitals = `
		SELECT
			id,
			type,
			value,
			unit,
			timestamp,
			created_at
		FROM vitals
		ORDER BY timestamp ASC, id ASC;`

	deleteVital = `DELETE FROM vitals WHERE id = ?;`

	insertReminder = `
		INSERT INTO reminders (
			medicine_name,
			dosage,
			frequency,
			time,
			is_active,
			next_dose,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	listReminders = `
		SELECT
			id,
			medicine_name,
			dosage,
			frequency,
			time,
			is_active,
			next_dose,
			created_at
		FROM reminders
		ORDER BY created_at DESC, id DESC;`

	setReminderActive = `UPDATE reminders SET is_active = ? WHERE id = ?;`
	deleteReminder    = `DELETE FROM reminders WHERE id = ?;`

	getSetting = `SELECT value FROM settings WHERE key = ?;`
	putSetting = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	insertSetting = `INSERT INTO settings (key, value) VALUES (?, ?);`
	deleteSetting = `DELETE FROM settings WHERE key = ?;`
)
