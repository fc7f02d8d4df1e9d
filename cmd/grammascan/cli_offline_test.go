package main_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const fixtureHTML = `<!DOCTYPE html>
<html lang="ja">
<head><title>テスト記事</title></head>
<body>
<article>
<h1>テスト記事</h1>
<p>猫が好きです。毎日とても幸せです。</p>
<p>彼女は日本語を勉強しているところです。</p>
</article>
</body>
</html>`

func TestCLI_OfflineServer(t *testing.T) {
	tmp := t.TempDir()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fixtureHTML))
	}))
	defer srv.Close()

	dbPath := filepath.Join(tmp, "grammascan.db")
	bin := filepath.Join(tmp, "grammascan.bin")

	build := exec.Command("go", "build", "-o", bin, "github.com/japaniel/grammascan/cmd/grammascan")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "-url", srv.URL, "-db", dbPath)
	cmd.Dir = tmp
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		t.Fatalf("cli timed out, output:\n%s", out)
	}
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}

	outStr := string(out)
	if !strings.Contains(outStr, "Processing complete") {
		t.Fatalf("unexpected CLI output; expected success message, got:\n%s", outStr)
	}

	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer dbConn.Close()

	var cnt int
	if err := dbConn.QueryRow("SELECT COUNT(*) FROM transcripts").Scan(&cnt); err != nil {
		t.Fatalf("db query failed: %v", err)
	}
	if cnt == 0 {
		t.Fatalf("expected at least one transcript in DB, found 0")
	}
}
