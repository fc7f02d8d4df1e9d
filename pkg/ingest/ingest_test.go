package ingest

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/japaniel/grammascan/pkg/analyzer"
	"github.com/japaniel/grammascan/pkg/library"
	"github.com/japaniel/grammascan/pkg/store"
	"github.com/japaniel/grammascan/pkg/token"
)

func setupDB(t *testing.T) *sql.DB {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := store.InitDB(conn); err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	return conn
}

// withOffsets lays out consecutive tokens with monotonic codepoint
// offsets, the way the library and engine tests build fixtures.
func withOffsets(toks ...token.Token) []token.Token {
	offset := 0
	for i := range toks {
		n := len([]rune(toks[i].Surface))
		toks[i].StartChar = offset
		toks[i].EndChar = offset + n
		offset += n
	}
	return toks
}

func tok(surface, base string, pos ...string) token.Token {
	return token.Token{Surface: surface, BaseForm: base, PartOfSpeech: pos}
}

func newTestIngester(t *testing.T, conn *sql.DB) *Ingester {
	ig, err := NewIngester(conn, nil)
	if err != nil {
		t.Fatalf("failed to build ingester: %v", err)
	}
	return ig
}

func TestIngestResume(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	showID, err := store.CreateOrGetShow(conn, "Show", "drama")
	if err != nil {
		t.Fatal(err)
	}
	epID, err := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
	if err != nil {
		t.Fatal(err)
	}
	trID, err := store.InsertTranscript(conn, epID, 1, "00:00:00", "00:00:05", "test transcript")
	if err != nil {
		t.Fatal(err)
	}

	var sentences []analyzer.Sentence
	for i := 0; i < 10; i++ {
		sentences = append(sentences, analyzer.Sentence{
			Text:   "テスト",
			Tokens: withOffsets(tok("テスト", "テスト", "名詞")),
		})
	}

	// Manually set progress to index 4 (so 5 sentences processed: 0,1,2,3,4).
	if err := store.UpdateTranscriptProgress(conn, trID, 4); err != nil {
		t.Fatal(err)
	}

	ingester := newTestIngester(t, conn)
	ingester.BatchSize = 2 // Verify batching doesn't interfere.

	count, err := ingester.Ingest(context.Background(), trID, sentences)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	// No grammar patterns match "テスト", so the occurrence count is 0;
	// what matters is that only the 5 remaining sentences were persisted.
	if count != 0 {
		t.Errorf("expected 0 pattern occurrences, got %d", count)
	}

	idx, err := store.GetTranscriptProgress(conn, trID)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 9 {
		t.Errorf("expected progress to reach index 9, got %d", idx)
	}

	var sentenceCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM sentences WHERE transcript_id = ?`, trID).Scan(&sentenceCount); err != nil {
		t.Fatal(err)
	}
	if sentenceCount != 5 {
		t.Errorf("expected 5 sentences written (resumed past the first 5), got %d", sentenceCount)
	}
}

func TestIngestContextCancel(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	showID, _ := store.CreateOrGetShow(conn, "Show", "drama")
	epID, _ := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
	trID, _ := store.InsertTranscript(conn, epID, 1, "00:00:00", "00:00:05", "test")

	sentences := make([]analyzer.Sentence, 100)
	for i := range sentences {
		sentences[i] = analyzer.Sentence{
			Text:   "Test",
			Tokens: withOffsets(tok("A", "A", "Noun")),
		}
	}

	ingester := newTestIngester(t, conn)
	ingester.BatchSize = 10

	// A context that is already canceled.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := ingester.Ingest(ctx, trID, sentences)

	if count != 0 {
		t.Errorf("expected 0 pattern occurrences with cancelled context, got %d", count)
	}
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIngestWordFiltering(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	showID, err := store.CreateOrGetShow(conn, "Show", "drama")
	if err != nil {
		t.Fatal(err)
	}
	epID, err := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
	if err != nil {
		t.Fatal(err)
	}
	trID, err := store.InsertTranscript(conn, epID, 1, "00:00:00", "00:00:05", "手紙を書きました")
	if err != nil {
		t.Fatal(err)
	}

	tokens := withOffsets(
		tok("手紙", "手紙", "名詞"),
		tok("を", "を", "助詞"),
		tok("書い", "書く", "動詞"),
		tok("まし", "ます", "助動詞"),
		tok("た", "た", "助動詞"),
	)
	sentences := []analyzer.Sentence{{Text: "手紙を書きました", Tokens: tokens}}

	ingester := newTestIngester(t, conn)
	if _, err := ingester.Ingest(context.Background(), trID, sentences); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	rows, err := conn.Query(`SELECT word FROM words ORDER BY id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			t.Fatal(err)
		}
		words = append(words, w)
	}

	// "を" (助詞) and both 助動詞 tokens are filtered out; only the noun
	// and the verb's surface form survive.
	expected := []string{"手紙", "書い"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words in DB, got %d: %v", len(expected), len(words), words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("word %d: expected %s, got %s", i, expected[i], w)
		}
	}
}

func TestIngestDuplicateWordInSentence(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	showID, _ := store.CreateOrGetShow(conn, "Show", "drama")
	epID, _ := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
	trID, _ := store.InsertTranscript(conn, epID, 1, "00:00:00", "00:00:05", "猫は猫である")

	sentenceText := "猫は猫である"
	tokens := withOffsets(
		tok("猫", "猫", "名詞"),
		tok("は", "は", "助詞"),
		tok("猫", "猫", "名詞"),
	)
	sentences := []analyzer.Sentence{{Text: sentenceText, Tokens: tokens}}

	ingester := newTestIngester(t, conn)
	ingester.BatchSize = 10

	if _, err := ingester.Ingest(context.Background(), trID, sentences); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	var wordID int64
	if err := conn.QueryRow(`SELECT id FROM words WHERE word = '猫'`).Scan(&wordID); err != nil {
		t.Fatalf("failed to find word: %v", err)
	}

	var occCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM word_occurrences WHERE word_id = ?`, wordID).Scan(&occCount); err != nil {
		t.Fatal(err)
	}
	// Both 猫 tokens collapse onto the same base form within the
	// sentence, so LinkWordToSentence is only effective once.
	if occCount != 1 {
		t.Errorf("expected 1 occurrence row for a word repeated in one sentence, got %d", occCount)
	}
}

func TestIngestPatternScan(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	showID, _ := store.CreateOrGetShow(conn, "Show", "drama")
	epID, _ := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
	trID, _ := store.InsertTranscript(conn, epID, 1, "00:00:00", "00:00:05", "食べている")

	tokens := withOffsets(
		token.Token{Surface: "食べ", BaseForm: "食べる", PartOfSpeech: []string{"動詞"}, Features: []string{"動詞", "自立", "*", "*", "一段", "連用形"}},
		tok("て", "て", "助詞"),
		tok("いる", "いる", "動詞"),
	)
	sentences := []analyzer.Sentence{{Text: "食べている", Tokens: tokens}}

	ingester := newTestIngester(t, conn)
	count, err := ingester.Ingest(context.Background(), trID, sentences)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected at least one pattern occurrence for ~te iru, got 0")
	}

	var patternName string
	if err := conn.QueryRow(`
		SELECT gp.pattern_name FROM grammar_pattern_occurrences gpo
		JOIN grammar_patterns gp ON gp.id = gpo.pattern_id
		WHERE gpo.transcript_id = ?`, trID).Scan(&patternName); err != nil {
		t.Fatalf("failed to find recorded pattern occurrence: %v", err)
	}
	if patternName == "" {
		t.Error("expected a non-empty pattern name")
	}
}

func TestNewIngesterLoadsLibrary(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	ig, err := NewIngester(conn, nil)
	if err != nil {
		t.Fatalf("NewIngester failed: %v", err)
	}
	if ig.Library == nil {
		t.Fatal("expected a non-nil pattern library")
	}
	if ig.BatchSize == 0 || ig.Workers == 0 {
		t.Error("expected sane defaults for BatchSize and Workers")
	}
	var _ *library.PatternMatcher = ig.Library
}
