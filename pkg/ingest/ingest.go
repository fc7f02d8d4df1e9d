package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/japaniel/grammascan/pkg/analyzer"
	"github.com/japaniel/grammascan/pkg/library"
	"github.com/japaniel/grammascan/pkg/store"
)

// Ingester drives the grammar-pattern pipeline: scan every
// already-tokenized sentence of a transcript with the pattern library,
// and persist matches and words through a batched transactional writer.
type Ingester struct {
	DB        *sql.DB
	Analyzer  *analyzer.Analyzer
	Library   *library.PatternMatcher
	BatchSize int
	// Logger is used for informational messages (e.g. resume status). nil means no logging.
	Logger *log.Logger
	// OnProgress is called periodically with the number of processed sentences and total sentences.
	OnProgress func(current, total int)

	// Concurrency settings
	Workers int
}

// NewIngester creates a new Ingester with the pattern library preloaded.
func NewIngester(conn *sql.DB, az *analyzer.Analyzer) (*Ingester, error) {
	lib, err := library.New()
	if err != nil {
		return nil, fmt.Errorf("load pattern library: %w", err)
	}
	return &Ingester{
		DB:        conn,
		Analyzer:  az,
		Library:   lib,
		BatchSize: 50,
		Workers:   4,
	}, nil
}

// wordOccurrence is a deduplicated word seen in a sentence.
type wordOccurrence struct {
	Word string
	Base string
}

// patternOccurrence is one engine match found in a sentence.
// StartChar/EndChar are relative to the sentence, not the transcript;
// the transcript and sentence ids are added when it is persisted as a
// store.GrammarPatternOccurrence.
type patternOccurrence struct {
	PatternName string
	Level       string
	Confidence  float64
	StartChar   int
	EndChar     int
}

// processedSentence holds the result of processing a sentence before DB ingestion.
type processedSentence struct {
	Index    int
	Sentence string
	Words    []wordOccurrence
	Patterns []patternOccurrence
	Error    error
}

// Ingest scans already-tokenized sentences (produced by
// Analyzer.AnalyzeDocument) and writes results via concurrent workers
// and a batched writer. Resumes from transcriptID's last checkpoint
// (spec supplement, SPEC_FULL.md §4). Tokenization happens ahead of
// Ingest, so the caller analyzes a whole document once before handing
// its sentences to the Ingester.
func (ig *Ingester) Ingest(ctx context.Context, transcriptID int64, sentences []analyzer.Sentence) (int, error) {
	lastProcessed, err := store.GetTranscriptProgress(ig.DB, transcriptID)
	if err != nil {
		if ig.Logger != nil {
			ig.Logger.Printf("Warning: Failed to retrieve progress: %v", err)
		}
		lastProcessed = -1
	}

	if lastProcessed >= 0 && ig.Logger != nil {
		ig.Logger.Printf("Resuming from sentence index %d (skipping %d sentences)\n", lastProcessed+1, lastProcessed+1)
	}

	totalSentences := len(sentences)
	startIdx := lastProcessed + 1
	if startIdx >= totalSentences {
		return 0, nil
	}

	wp := NewWorkerPool(ig.Workers, ig.Workers*2)
	resultCh := make(chan processedSentence, ig.Workers*2)

	var totalOccurrences int64

	bw := NewBatchWriter(ig.DB, ig.BatchSize, 100*time.Millisecond)
	var batchErr error
	var batchErrMu sync.Mutex
	bw.OnError = func(e error) {
		batchErrMu.Lock()
		if batchErr == nil {
			batchErr = e
		}
		batchErrMu.Unlock()
	}

	defer bw.Close()
	defer wp.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	doneCh := make(chan error, 1)

	go func() {
		defer close(doneCh)
		buffer := make(map[int]processedSentence)
		nextIdx := startIdx

		for i := 0; i < totalSentences-startIdx; i++ {
			select {
			case <-ctx.Done():
				doneCh <- ctx.Err()
				return
			case res := <-resultCh:
				if res.Error != nil {
					doneCh <- res.Error
					return
				}
				buffer[res.Index] = res

				for {
					item, ok := buffer[nextIdx]
					if !ok {
						break
					}
					delete(buffer, nextIdx)

					currentItem := item
					err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
						sentID, err := store.InsertSentence(tx, transcriptID, currentItem.Index, currentItem.Sentence)
						if err != nil {
							return fmt.Errorf("persist sentence %d: %w", currentItem.Index, err)
						}
						for _, w := range currentItem.Words {
							wordID, err := store.CreateOrGetWord(tx, w.Word, w.Base, "", "ja")
							if err != nil {
								return fmt.Errorf("persist word %s: %w", w.Word, err)
							}
							if err := store.LinkWordToSentence(tx, wordID, sentID); err != nil {
								return fmt.Errorf("link word %d: %w", wordID, err)
							}
						}
						for _, p := range currentItem.Patterns {
							patID, err := store.GetOrCreatePatternID(tx, p.PatternName, p.Level)
							if err != nil {
								return fmt.Errorf("persist pattern %s: %w", p.PatternName, err)
							}
							occ := store.GrammarPatternOccurrence{
								PatternID: patID, TranscriptID: transcriptID, SentenceID: sentID,
								Confidence: p.Confidence, StartChar: p.StartChar, EndChar: p.EndChar,
							}
							if err := store.InsertPatternOccurrence(tx, occ); err != nil {
								return fmt.Errorf("persist pattern occurrence %s: %w", p.PatternName, err)
							}
							atomic.AddInt64(&totalOccurrences, 1)
						}
						if err := store.UpdateTranscriptProgress(tx, transcriptID, currentItem.Index); err != nil {
							return fmt.Errorf("save progress: %w", err)
						}
						return nil
					})

					if err != nil {
						doneCh <- err
						return
					}

					if ig.OnProgress != nil && (nextIdx+1)%ig.BatchSize == 0 {
						ig.OnProgress(nextIdx+1, totalSentences)
					}
					nextIdx++
				}
			}
		}
		if ig.OnProgress != nil {
			ig.OnProgress(totalSentences, totalSentences)
		}
		doneCh <- nil
	}()

Loop:
	for i := startIdx; i < totalSentences; i++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		idx := i
		sent := sentences[i]

		err := wp.Submit(func(ctx context.Context) error {
			res := ig.processSentence(idx, sent)
			select {
			case resultCh <- res:
			case <-ctx.Done():
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	consumerErr := <-doneCh

	if err := bw.Close(); err != nil {
		if consumerErr == nil {
			consumerErr = err
		}
	}

	batchErrMu.Lock()
	if batchErr != nil && consumerErr == nil {
		consumerErr = batchErr
	}
	batchErrMu.Unlock()

	return int(atomic.LoadInt64(&totalOccurrences)), consumerErr
}

// processSentence scans one already-tokenized sentence with the
// pattern library and collects its content words.
func (ig *Ingester) processSentence(index int, sentence analyzer.Sentence) processedSentence {
	tokens := sentence.Tokens

	wordSeen := make(map[string]bool)
	var words []wordOccurrence
	for _, t := range tokens {
		pos := t.POS(0)
		if pos == "記号" || pos == "補助記号" || pos == "助詞" || pos == "助動詞" {
			continue
		}
		base := t.BaseForm
		if base == "" {
			base = t.Surface
		}
		if wordSeen[base] {
			continue
		}
		wordSeen[base] = true
		words = append(words, wordOccurrence{Word: t.Surface, Base: base})
	}

	matches, err := ig.Library.Scan(tokens)
	if err != nil {
		return processedSentence{Index: index, Error: fmt.Errorf("scan sentence %d: %w", index, err)}
	}
	var patterns []patternOccurrence
	for _, m := range matches {
		patterns = append(patterns, patternOccurrence{
			PatternName: m.Result.ID,
			Level:       m.Result.Level,
			Confidence:  m.Confidence,
			StartChar:   m.StartChar,
			EndChar:     m.EndChar,
		})
	}

	return processedSentence{Index: index, Sentence: sentence.Text, Words: words, Patterns: patterns}
}
