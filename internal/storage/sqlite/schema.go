package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    TEXT NOT NULL,
	reason_id     TEXT NOT NULL,
	reason_title  TEXT NOT NULL DEFAULT '',
	variant_label TEXT NOT NULL DEFAULT '',
	action        TEXT NOT NULL DEFAULT '',
	usage         TEXT NOT NULL DEFAULT '',
	text          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS record_fields (
	record_id INTEGER NOT NULL,
	position  INTEGER NOT NULL,
	label     TEXT NOT NULL,
	key       TEXT NOT NULL DEFAULT '',
	value     TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (record_id, position)
);

CREATE INDEX IF NOT EXISTS idx_record_fields_record_id ON record_fields(record_id);
`

const (
	insertRecordSQL = `INSERT INTO records (created_at, reason_id, reason_title, variant_label, action, usage, text)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertFieldSQL = `INSERT INTO record_fields (record_id, position, label, key, value) VALUES (?, ?, ?, ?, ?)`

	selectRecordsSQL = `SELECT id, created_at, reason_id, reason_title, variant_label, action, usage, text
FROM records ORDER BY id`

	selectRecordSQL = `SELECT id, created_at, reason_id, reason_title, variant_label, action, usage, text
FROM records WHERE id = ?`

	selectFieldsSQL = `SELECT record_id, label, key, value FROM record_fields ORDER BY record_id, position`

	selectFieldsByRecordSQL = `SELECT record_id, label, key, value FROM record_fields WHERE record_id = ? ORDER BY position`

	deleteRecordSQL        = `DELETE FROM records WHERE id = ?`
	deleteFieldsSQL        = `DELETE FROM record_fields WHERE record_id = ?`
	deleteAllRecordsSQL    = `DELETE FROM records`
	deleteAllFieldsSQL     = `DELETE FROM record_fields`
	resetRecordSequenceSQL = `DELETE FROM sqlite_sequence WHERE name = 'records'`
)
