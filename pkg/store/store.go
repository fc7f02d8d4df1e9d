// Package store persists the ingestion pipeline's output: shows,
// episodes, transcripts, sentences, words and grammar-pattern
// occurrences, grounded on original_source/src-tauri/src/db/*.rs and
// built around a DBExecutor/upsert idiom shared with the rest of the
// pipeline.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx, so batch
// writers can run these helpers inside a transaction or directly
// against the pool.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// CreateOrGetShow returns the existing show id or inserts a new one.
func CreateOrGetShow(db DBExecutor, name, showType string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("show name must be non-empty")
	}
	var id int64
	err := db.QueryRow(`INSERT INTO shows (name, show_type) VALUES (?, ?)
		ON CONFLICT(name, show_type) DO UPDATE SET name = excluded.name
		RETURNING id`, name, showType).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert show: %w", err)
	}
	return id, nil
}

// CreateOrGetEpisode returns the existing episode id or inserts a new one.
func CreateOrGetEpisode(db DBExecutor, showID int64, name string, episodeNumber int) (int64, error) {
	if showID <= 0 {
		return 0, fmt.Errorf("showID must be positive")
	}
	var id int64
	err := db.QueryRow(`INSERT INTO episodes (show_id, name, episode_number) VALUES (?, ?, ?)
		ON CONFLICT(show_id, name, episode_number) DO UPDATE SET name = excluded.name
		RETURNING id`, showID, name, episodeNumber).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert episode: %w", err)
	}
	return id, nil
}

// InsertTranscript inserts a new transcript and returns its id.
// Transcripts are never deduplicated against each other: each ingest
// run produces a new document, matching original_source's Transcript::insert.
func InsertTranscript(db DBExecutor, episodeID int64, lineID int, timeStart, timeEnd, text string) (int64, error) {
	res, err := db.Exec(`INSERT INTO transcripts (episode_id, line_id, time_start, time_end, text)
		VALUES (?, ?, ?, ?, ?)`, episodeID, lineID, timeStart, timeEnd, text)
	if err != nil {
		return 0, fmt.Errorf("insert transcript: %w", err)
	}
	return res.LastInsertId()
}

// GetTranscriptProgress returns the last processed sentence index for
// a transcript, backing the resume-from-checkpoint feature (spec
// supplement, SPEC_FULL.md §4).
func GetTranscriptProgress(db DBExecutor, transcriptID int64) (int, error) {
	var idx int
	err := db.QueryRow(`SELECT last_processed_sentence FROM transcripts WHERE id = ?`, transcriptID).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("read transcript progress: %w", err)
	}
	return idx, nil
}

// UpdateTranscriptProgress records how far ingestion has advanced
// through a transcript's sentences.
func UpdateTranscriptProgress(db DBExecutor, transcriptID int64, index int) error {
	_, err := db.Exec(`UPDATE transcripts SET last_processed_sentence = ? WHERE id = ?`, index, transcriptID)
	if err != nil {
		return fmt.Errorf("update transcript progress: %w", err)
	}
	return nil
}

// InsertSentence inserts a sentence belonging to a transcript and
// returns its id, or the existing id if that (transcript, index) pair
// was already recorded (re-running an interrupted ingest is idempotent).
func InsertSentence(db DBExecutor, transcriptID int64, index int, text string) (int64, error) {
	var id int64
	err := db.QueryRow(`INSERT INTO sentences (transcript_id, sentence_index, text) VALUES (?, ?, ?)
		ON CONFLICT(transcript_id, sentence_index) DO UPDATE SET text = excluded.text
		RETURNING id`, transcriptID, index, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert sentence: %w", err)
	}
	return id, nil
}

// CreateOrGetWord returns the existing word id or inserts a new word.
func CreateOrGetWord(db DBExecutor, word, lemma, pronunciation, language string) (int64, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	var id int64
	err := db.QueryRow(`INSERT INTO words (word, lemma, pronunciation, language) VALUES (?, ?, ?, ?)
		ON CONFLICT(word, lemma, language) DO UPDATE SET
			pronunciation = COALESCE(NULLIF(excluded.pronunciation, ''), words.pronunciation)
		RETURNING id`, word, lemma, pronunciation, language).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert word: %w", err)
	}
	return id, nil
}

// LinkWordToSentence records that wordID was seen in sentenceID, the
// way pkg/db.LinkWordToSource links a word to its provenance.
func LinkWordToSentence(db DBExecutor, wordID, sentenceID int64) error {
	if wordID <= 0 || sentenceID <= 0 {
		return fmt.Errorf("wordID and sentenceID must be positive")
	}
	_, err := db.Exec(`INSERT INTO word_occurrences (word_id, sentence_id) VALUES (?, ?)
		ON CONFLICT(word_id, sentence_id) DO NOTHING`, wordID, sentenceID)
	if err != nil {
		return fmt.Errorf("link word to sentence: %w", err)
	}
	return nil
}

// GetOrCreatePatternID returns the grammar_patterns row id for a
// pattern name, creating it (with its JLPT level) on first use,
// grounded on GrammarPattern::get_or_create_pattern_id.
func GetOrCreatePatternID(db DBExecutor, patternName, level string) (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM grammar_patterns WHERE pattern_name = ?`, patternName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("lookup pattern: %w", err)
	}
	res, err := db.Exec(`INSERT INTO grammar_patterns (pattern_name, level) VALUES (?, ?)`, patternName, level)
	if err != nil {
		if isUniqueConstraintErr(err) {
			err = db.QueryRow(`SELECT id FROM grammar_patterns WHERE pattern_name = ?`, patternName).Scan(&id)
			if err != nil {
				return 0, fmt.Errorf("lookup pattern after race: %w", err)
			}
			return id, nil
		}
		return 0, fmt.Errorf("insert pattern: %w", err)
	}
	return res.LastInsertId()
}

// InsertPatternOccurrence records one engine match, grounded on
// GrammarPatternOccurrence::insert.
func InsertPatternOccurrence(db DBExecutor, occ GrammarPatternOccurrence) error {
	_, err := db.Exec(`INSERT INTO grammar_pattern_occurrences
		(pattern_id, transcript_id, sentence_id, confidence, start_char, end_char)
		VALUES (?, ?, ?, ?, ?, ?)`,
		occ.PatternID, occ.TranscriptID, occ.SentenceID, occ.Confidence, occ.StartChar, occ.EndChar)
	if err != nil {
		return fmt.Errorf("insert pattern occurrence: %w", err)
	}
	return nil
}

// BatchInsertPatternOccurrences inserts many occurrences, one
// InsertPatternOccurrence call each, mirroring
// GrammarPatternOccurrence::batch_insert.
func BatchInsertPatternOccurrences(db DBExecutor, occs []GrammarPatternOccurrence) error {
	for _, occ := range occs {
		if err := InsertPatternOccurrence(db, occ); err != nil {
			return err
		}
	}
	return nil
}

// GetPatternsByEpisode returns per-level occurrence counts and
// average confidence across every transcript of an episode, grounded
// on GrammarPatternOccurrence::get_by_episode.
func GetPatternsByEpisode(db DBExecutor, episodeID int64) ([]LevelStats, error) {
	rows, err := db.Query(`
		SELECT gp.level, COUNT(gpo.id), AVG(gpo.confidence)
		FROM grammar_patterns gp
		JOIN grammar_pattern_occurrences gpo ON gp.id = gpo.pattern_id
		JOIN transcripts t ON gpo.transcript_id = t.id
		WHERE t.episode_id = ?
		GROUP BY gp.level
		ORDER BY gp.level`, episodeID)
	if err != nil {
		return nil, fmt.Errorf("query patterns by episode: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		var s LevelStats
		var occCount int
		var avg sql.NullFloat64
		if err := rows.Scan(&s.Level, &occCount, &avg); err != nil {
			return nil, fmt.Errorf("scan pattern stats: %w", err)
		}
		s.OccurrenceCount = occCount
		if avg.Valid {
			s.AvgConfidence = avg.Float64
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RefreshLevelStats recomputes the level_stats aggregate table from
// grammar_pattern_occurrences (spec.md §1: "JLPT level statistics").
// The level tag is opaque to the matching core (spec.md §6) and only
// meaningful here, in the persistence layer.
func RefreshLevelStats(db DBExecutor) error {
	rows, err := db.Query(`
		SELECT gp.level,
			COUNT(DISTINCT gp.id) AS pattern_count,
			COUNT(gpo.id) AS occurrence_count,
			AVG(gpo.confidence) AS avg_confidence
		FROM grammar_patterns gp
		LEFT JOIN grammar_pattern_occurrences gpo ON gpo.pattern_id = gp.id
		GROUP BY gp.level`)
	if err != nil {
		return fmt.Errorf("aggregate level stats: %w", err)
	}
	defer rows.Close()

	type row struct {
		level           string
		patternCount    int
		occurrenceCount int
		avgConfidence   sql.NullFloat64
	}
	var collected []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.level, &r.patternCount, &r.occurrenceCount, &r.avgConfidence); err != nil {
			return fmt.Errorf("scan level stats: %w", err)
		}
		collected = append(collected, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	now := time.Now()
	for _, r := range collected {
		avg := 0.0
		if r.avgConfidence.Valid {
			avg = r.avgConfidence.Float64
		}
		_, err := db.Exec(`INSERT INTO level_stats (level, pattern_count, occurrence_count, avg_confidence, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(level) DO UPDATE SET
				pattern_count = excluded.pattern_count,
				occurrence_count = excluded.occurrence_count,
				avg_confidence = excluded.avg_confidence,
				updated_at = excluded.updated_at`,
			r.level, r.patternCount, r.occurrenceCount, avg, now)
		if err != nil {
			return fmt.Errorf("upsert level stats for %q: %w", r.level, err)
		}
	}
	return nil
}
