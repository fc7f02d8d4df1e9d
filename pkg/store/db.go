package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// migrationsSQL is the full schema, grounded on
// original_source/src-tauri/src/db/{show,episode,transcript,word,grammar_pattern}.rs,
// re-keyed to this module's domain (pattern occurrences instead of word
// definitions) the way pkg/db/db.go embeds its schema as one batch.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS shows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	show_type TEXT NOT NULL,
	UNIQUE(name, show_type)
);

CREATE TABLE IF NOT EXISTS episodes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	show_id INTEGER NOT NULL REFERENCES shows(id),
	name TEXT NOT NULL,
	episode_number INTEGER NOT NULL DEFAULT 0,
	UNIQUE(show_id, name, episode_number)
);

CREATE TABLE IF NOT EXISTS transcripts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id INTEGER NOT NULL REFERENCES episodes(id),
	line_id INTEGER NOT NULL DEFAULT 0,
	time_start TEXT NOT NULL DEFAULT '',
	time_end TEXT NOT NULL DEFAULT '',
	text TEXT NOT NULL,
	last_processed_sentence INTEGER NOT NULL DEFAULT -1,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sentences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	transcript_id INTEGER NOT NULL REFERENCES transcripts(id),
	sentence_index INTEGER NOT NULL,
	text TEXT NOT NULL,
	UNIQUE(transcript_id, sentence_index)
);

CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	lemma TEXT NOT NULL DEFAULT '',
	pronunciation TEXT NOT NULL DEFAULT '',
	language TEXT NOT NULL DEFAULT 'ja',
	UNIQUE(word, lemma, language)
);

CREATE TABLE IF NOT EXISTS word_occurrences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word_id INTEGER NOT NULL REFERENCES words(id),
	sentence_id INTEGER NOT NULL REFERENCES sentences(id),
	UNIQUE(word_id, sentence_id)
);

CREATE TABLE IF NOT EXISTS grammar_patterns (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pattern_name TEXT NOT NULL UNIQUE,
	level TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS grammar_pattern_occurrences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pattern_id INTEGER NOT NULL REFERENCES grammar_patterns(id),
	transcript_id INTEGER NOT NULL REFERENCES transcripts(id),
	sentence_id INTEGER NOT NULL REFERENCES sentences(id),
	confidence REAL NOT NULL,
	start_char INTEGER NOT NULL,
	end_char INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_gpo_pattern ON grammar_pattern_occurrences(pattern_id);
CREATE INDEX IF NOT EXISTS idx_gpo_transcript ON grammar_pattern_occurrences(transcript_id);

CREATE TABLE IF NOT EXISTS level_stats (
	level TEXT PRIMARY KEY,
	pattern_count INTEGER NOT NULL,
	occurrence_count INTEGER NOT NULL,
	avg_confidence REAL NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitDB runs migrations on the given DB connection using the embedded
// SQL, delegating statement parsing to SQLite itself exactly as
// pkg/db.InitDB does (safer than splitting on semicolons by hand).
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(migrationsSQL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
