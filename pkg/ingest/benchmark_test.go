package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/japaniel/grammascan/pkg/analyzer"
	"github.com/japaniel/grammascan/pkg/store"
)

func setupBenchmarkDB(b *testing.B) *sql.DB {
	// In-memory DB to isolate ingestion overhead from disk I/O, though
	// SQLite's in-memory mode still has some locking.
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		b.Fatalf("failed to open db: %v", err)
	}
	_, _ = conn.Exec("PRAGMA synchronous = OFF")
	_, _ = conn.Exec("PRAGMA journal_mode = MEMORY")

	if err := store.InitDB(conn); err != nil {
		b.Fatalf("failed to init db: %v", err)
	}
	return conn
}

func generateBenchmarkSentences(n int) []analyzer.Sentence {
	var sentences []analyzer.Sentence
	for i := 0; i < n; i++ {
		sentences = append(sentences, analyzer.Sentence{
			Text: fmt.Sprintf("これはテスト文です%d", i),
			Tokens: withOffsets(
				tok("これ", "これ", "名詞", "代名詞"),
				tok("は", "は", "助詞", "係助詞"),
				tok("テスト", "テスト", "名詞", "サ変接続"),
				tok("文", "文", "名詞", "一般"),
				tok("です", "です", "助動詞"),
				tok(fmt.Sprintf("%d", i), fmt.Sprintf("%d", i), "名詞", "数"),
			),
		})
	}
	return sentences
}

func BenchmarkIngest(b *testing.B) {
	sentences := generateBenchmarkSentences(1000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		conn := setupBenchmarkDB(b)

		showID, err := store.CreateOrGetShow(conn, fmt.Sprintf("bench_show_%d", i), "bench")
		if err != nil {
			conn.Close()
			b.Fatalf("CreateOrGetShow failed: %v", err)
		}
		epID, err := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
		if err != nil {
			conn.Close()
			b.Fatalf("CreateOrGetEpisode failed: %v", err)
		}
		trID, err := store.InsertTranscript(conn, epID, 1, "00:00:00", "01:00:00", "bench transcript")
		if err != nil {
			conn.Close()
			b.Fatalf("InsertTranscript failed: %v", err)
		}

		ingester, err := NewIngester(conn, nil)
		if err != nil {
			conn.Close()
			b.Fatalf("NewIngester failed: %v", err)
		}
		ingester.Workers = 4
		ingester.BatchSize = 100
		b.StartTimer()

		_, err = ingester.Ingest(context.Background(), trID, sentences)
		b.StopTimer()
		if err != nil {
			conn.Close()
			b.Fatalf("Ingest failed: %v", err)
		}
		conn.Close()
	}
}

func BenchmarkIngestConcurrencyScaling(b *testing.B) {
	// Compare different worker counts; in-memory DBs may hide gains at
	// small scale but this guards against gross regressions.
	counts := []int{1, 2, 4, 8}
	sentences := generateBenchmarkSentences(1000)

	for _, workers := range counts {
		b.Run(fmt.Sprintf("Workers_%d", workers), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				conn := setupBenchmarkDB(b)

				showID, err := store.CreateOrGetShow(conn, fmt.Sprintf("bench_show_%d_%d", workers, i), "bench")
				if err != nil {
					conn.Close()
					b.Fatalf("CreateOrGetShow failed: %v", err)
				}
				epID, err := store.CreateOrGetEpisode(conn, showID, "Ep 1", 1)
				if err != nil {
					conn.Close()
					b.Fatalf("CreateOrGetEpisode failed: %v", err)
				}
				trID, err := store.InsertTranscript(conn, epID, 1, "00:00:00", "01:00:00", "bench transcript")
				if err != nil {
					conn.Close()
					b.Fatalf("InsertTranscript failed: %v", err)
				}

				ingester, err := NewIngester(conn, nil)
				if err != nil {
					conn.Close()
					b.Fatalf("NewIngester failed: %v", err)
				}
				ingester.Workers = workers
				ingester.BatchSize = 100
				b.StartTimer()

				_, err = ingester.Ingest(context.Background(), trID, sentences)
				b.StopTimer()
				if err != nil {
					conn.Close()
					b.Fatalf("Ingest failed: %v", err)
				}
				conn.Close()
			}
		})
	}
}
