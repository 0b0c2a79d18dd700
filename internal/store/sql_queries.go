package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
    VALUES ($1, $2, $3, $4, $5, now(), now())
    RETURNING username, password, first_name, last_name, phone, join_at, last_login_at;`

	findUserByUsername = `SELECT username, password, first_name, last_name, phone, join_at, last_login_at
    FROM users
    WHERE username = $1;`

	updateLoginTimestamp = `UPDATE users
    SET last_login_at = now()
    WHERE username = $1
    RETURNING username;`

	allUsers = `SELECT username, first_name, last_name, phone
    FROM users
    ORDER BY username;`

	createMessage = `INSERT INTO messages (from_username, to_username, body, sent_at)
    VALUES ($1, $2, $3, now())
    RETURNING id, from_username, to_username, body, sent_at, read_at;`

	markMessageRead = `UPDATE messages
    SET read_at = now()
    WHERE id = $1 AND read_at IS NULL
    RETURNING id, read_at;`

	readReceipt = `SELECT id, read_at
    FROM messages
    WHERE id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetMessageQuery builds the SELECT that loads one message together with
// both participants' public profiles.
func buildGetMessageQuery(id int64) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"f.username", "f.first_name", "f.last_name", "f.phone",
			"t.username", "t.first_name", "t.last_name", "t.phone",
		).
		From("messages AS m").
		Join("users AS f ON m.from_username = f.username").
		Join("users AS t ON m.to_username = t.username").
		Where(sq.Eq{"m.id": id}).
		ToSql()
}

// buildMessagesFromQuery builds the SELECT that loads every message sent by
// username, joined with the recipient's public profile.
func buildMessagesFromQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"u.username", "u.first_name", "u.last_name", "u.phone",
		).
		From("messages AS m").
		Join("users AS u ON m.to_username = u.username").
		Where(sq.Eq{"m.from_username": username}).
		OrderBy("m.sent_at").
		ToSql()
}

// buildMessagesToQuery builds the SELECT that loads every message received by
// username, joined with the sender's public profile.
func buildMessagesToQuery(username string) (string, []any, error) {
	return psql.
		Select(
			"m.id", "m.body", "m.sent_at", "m.read_at",
			"u.username", "u.first_name", "u.last_name", "u.phone",
		).
		From("messages AS m").
		Join("users AS u ON m.from_username = u.username").
		Where(sq.Eq{"m.to_username": username}).
		OrderBy("m.sent_at").
		ToSql()
}
