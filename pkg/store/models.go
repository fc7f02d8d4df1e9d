package store

import "time"

// Show is a TV show or similar long-running program, grounded on
// original_source/src-tauri/src/db/show.rs.
type Show struct {
	ID       int64
	Name     string
	ShowType string
}

// Episode belongs to a Show, grounded on
// original_source/src-tauri/src/db/episode.rs.
type Episode struct {
	ID            int64
	ShowID        int64
	Name          string
	EpisodeNumber int
}

// Transcript is one ingested document (a subtitle file, article, or
// other source text) belonging to an Episode, grounded on
// original_source/src-tauri/src/db/transcript.rs. LastProcessedSentence
// is the resume checkpoint backing the last_processed_sentence column.
type Transcript struct {
	ID                     int64
	EpisodeID              int64
	LineID                 int
	TimeStart              string
	TimeEnd                string
	Text                   string
	LastProcessedSentence  int
	CreatedAt              time.Time
}

// Sentence is one sentence split out of a Transcript during ingestion.
type Sentence struct {
	ID            int64
	TranscriptID  int64
	SentenceIndex int
	Text          string
}

// Word is the canonical word entry, grounded on
// original_source/src-tauri/src/db/word.rs.
type Word struct {
	ID            int64
	Word          string
	Lemma         string
	Pronunciation string
	Language      string
}

// WordOccurrence links a Word to the Sentence it was seen in.
type WordOccurrence struct {
	ID         int64
	WordID     int64
	SentenceID int64
}

// GrammarPattern is a named grammar point from pkg/library, grounded on
// original_source/src-tauri/src/db/grammar_pattern.rs.
type GrammarPattern struct {
	ID          int64
	PatternName string
	Level       string
}

// GrammarPatternOccurrence records one engine match for a pattern
// within a transcript, including the span it matched so examples can
// be reconstructed later.
type GrammarPatternOccurrence struct {
	ID           int64
	PatternID    int64
	TranscriptID int64
	SentenceID   int64
	Confidence   float64
	StartChar    int
	EndChar      int
}

// LevelStats is a per-JLPT-level aggregate, refreshed by
// RefreshLevelStats (spec.md §1: "JLPT level statistics").
type LevelStats struct {
	Level           string
	PatternCount    int
	OccurrenceCount int
	AvgConfidence   float64
	UpdatedAt       time.Time
}
