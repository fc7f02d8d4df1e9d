package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	_ "github.com/mattn/go-sqlite3"

	"github.com/japaniel/grammascan/pkg/analyzer"
	"github.com/japaniel/grammascan/pkg/ingest"
	"github.com/japaniel/grammascan/pkg/store"
)

func main() {
	dbFlag := flag.String("db", "grammascan.db", "Path to SQLite database")
	urlFlag := flag.String("url", "", "URL of a web article to fetch and ingest")
	fileFlag := flag.String("file", "", "Path to a local transcript text file to ingest")
	workersFlag := flag.Int("workers", 4, "Number of concurrent tokenize/scan workers")
	batchFlag := flag.Int("batch", 50, "Sentences per transactional write batch")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := store.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	fmt.Printf("Database initialized at %s\n", *dbFlag)

	if *urlFlag == "" && *fileFlag == "" {
		log.Fatal("Please provide -url or -file")
	}

	az, err := analyzer.New()
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	var text, showName, episodeName string
	switch {
	case *urlFlag != "":
		text, showName, episodeName, err = fetchArticle(ctx, *urlFlag)
	case *fileFlag != "":
		text, showName, episodeName, err = readTranscriptFile(*fileFlag)
	}
	if err != nil {
		log.Fatalf("Failed to acquire transcript text: %v", err)
	}

	fmt.Printf("Extracted %d chars of text.\n", len(text))

	showID, err := store.CreateOrGetShow(conn, showName, "ingested")
	if err != nil {
		log.Fatalf("Failed to persist show: %v", err)
	}
	epID, err := store.CreateOrGetEpisode(conn, showID, episodeName, 1)
	if err != nil {
		log.Fatalf("Failed to persist episode: %v", err)
	}
	trID, err := store.InsertTranscript(conn, epID, 1, "", "", text)
	if err != nil {
		log.Fatalf("Failed to persist transcript: %v", err)
	}
	fmt.Printf("Transcript saved with ID: %d\n", trID)

	sentences, err := az.AnalyzeDocument(text)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	fmt.Printf("Analyzed %d sentences.\n", len(sentences))

	ingester, err := ingest.NewIngester(conn, az)
	if err != nil {
		log.Fatalf("Failed to load pattern library: %v", err)
	}
	ingester.Workers = *workersFlag
	ingester.BatchSize = *batchFlag
	ingester.Logger = log.Default()
	ingester.OnProgress = func(current, total int) {
		fmt.Printf("Progress: %d/%d sentences\n", current, total)
	}

	occCount, err := ingester.Ingest(ctx, trID, sentences)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	fmt.Printf("Processing complete. Recorded %d grammar pattern occurrences.\n", occCount)

	if err := store.RefreshLevelStats(conn); err != nil {
		log.Fatalf("Failed to refresh level statistics: %v", err)
	}
	fmt.Println("JLPT level statistics refreshed.")
}

// fetchArticle downloads urlStr and extracts its article text via
// go-readability, including the browser-mimicking request headers
// needed to avoid bot blocking.
func fetchArticle(ctx context.Context, urlStr string) (text, showName, episodeName string, err error) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return "", "", "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ja;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", "", fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", "", fmt.Errorf("got status code %d fetching %s", resp.StatusCode, urlStr)
	}

	const maxBodySize = 10 * 1024 * 1024 // 10 MB limit for article HTML.
	if resp.ContentLength > int64(maxBodySize) {
		return "", "", "", fmt.Errorf("content-length %d exceeds limit of %d bytes", resp.ContentLength, maxBodySize)
	}
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", "", "", fmt.Errorf("read response body: %w", err)
	}
	if int64(len(bodyBytes)) >= int64(maxBodySize) {
		return "", "", "", fmt.Errorf("response body exceeded maximum size limit of %d bytes", maxBodySize)
	}

	bodyBytes = analyzer.SanitizeRuby(bodyBytes)

	parsedURL, _ := url.Parse(urlStr)
	article, err := readability.FromReader(bytes.NewReader(bodyBytes), parsedURL)
	if err != nil {
		return "", "", "", fmt.Errorf("extract article: %w", err)
	}

	site := article.SiteName
	if site == "" && parsedURL != nil {
		site = parsedURL.Host
	}
	return article.TextContent, site, article.Title, nil
}

// readTranscriptFile loads a local transcript file, using its base
// name (without extension) as both show and episode name.
func readTranscriptFile(path string) (text, showName, episodeName string, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", "", "", fmt.Errorf("read file: %w", err)
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return string(contents), name, name, nil
}
