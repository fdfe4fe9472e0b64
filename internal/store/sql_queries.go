package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	recordColumns = []string{
		"id", "owner", "revision", "server_created_at",
		"name", "type", "category", "doctor", "hospital", "date", "size",
		"encrypted_data", "iv", "salt", "created_at",
	}
	vitalColumns = []string{
		"id", "owner", "revision", "server_created_at",
		"type", "value", "unit", "timestamp", "created_at",
	}
	reminderColumns = []string{
		"id", "owner", "revision", "server_created_at",
		"medicine_name", "dosage", "frequency", "time", "is_active", "next_dose", "created_at",
	}
)

// listByOwnerQuery selects every column of table for one owner, oldest first.
func listByOwnerQuery(table string, columns []string, owner int64) (string, []any, error) {
	return psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner": owner}).
		OrderBy("server_created_at ASC", "id ASC").
		ToSql()
}

// insertReturningQuery inserts one row and returns the server-assigned
// timestamp.
func insertReturningQuery(table string, columns []string, values []any) (string, []any, error) {
	return psql.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING server_created_at").
		ToSql()
}

func recordOwnerQuery(id string) (string, []any, error) {
	return psql.Select("owner").From("records").Where(sq.Eq{"id": id}).ToSql()
}

func deleteRecordQuery(owner int64, id string) (string, []any, error) {
	return psql.Delete("records").Where(sq.Eq{"id": id, "owner": owner}).ToSql()
}
