package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hodu-dev/hangul/internal/data"
)

func testDocument() *data.Document {
	return &data.Document{
		Categories: []data.WordCategory{{
			Name: "Greetings",
			Words: []data.Word{
				{
					Korean: "안녕", English: "hi", Romanization: "annyeong",
					Syllables: []string{"안", "녕"},
					Breakdown: []data.Breakdown{
						{Initial: "ㅇ", Vowel: "ㅏ", Final: "ㄴ"},
						{Initial: "ㄴ", Vowel: "ㅕ", Final: "ㅇ"},
					},
				},
				{
					Korean: "네", English: "yes", Romanization: "ne",
					Syllables: []string{"네"},
					Breakdown: []data.Breakdown{{Initial: "ㄴ", Vowel: "ㅔ"}},
				},
			},
		}},
	}
}

func TestExportProducesReadablePackage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "hangul.apkg")

	// One word clip on disk, the other missing.
	assetDir := filepath.Join(dir, "assets")
	clip := filepath.Join(assetDir, "audio", "tts", "words", "annyeong.mp3")
	if err := os.MkdirAll(filepath.Dir(clip), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(clip, []byte("mp3data"), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewExporter("Hangul Words", assetDir)
	if err := e.Export(testDocument(), out); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening package: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"collection.anki2", "media", "0"} {
		if !names[want] {
			t.Errorf("package missing entry %q (has %v)", want, names)
		}
	}

	// Media mapping points the bundled clip at its original name.
	var mapping map[string]string
	for _, f := range zr.File {
		if f.Name != "media" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		raw, _ := io.ReadAll(rc)
		rc.Close()
		if err := json.Unmarshal(raw, &mapping); err != nil {
			t.Fatalf("media mapping is not JSON: %v", err)
		}
	}
	if mapping["0"] != "annyeong.mp3" {
		t.Errorf("media mapping = %v", mapping)
	}
}

func TestExportNotesAndCards(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.apkg")

	e := NewExporter("Hangul Words", "")
	if err := e.Export(testDocument(), out); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Unzip the collection and query it directly.
	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	dbPath := filepath.Join(dir, "collection.anki2")
	for _, f := range zr.File {
		if f.Name != "collection.anki2" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		raw, _ := io.ReadAll(rc)
		rc.Close()
		if err := os.WriteFile(dbPath, raw, 0644); err != nil {
			t.Fatal(err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var notes, cards int
	if err := db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&notes); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&cards); err != nil {
		t.Fatal(err)
	}
	if notes != 2 {
		t.Errorf("notes = %d, want 2", notes)
	}
	if cards != 4 {
		t.Errorf("cards = %d, want 4 (two templates per note)", cards)
	}

	var flds string
	if err := db.QueryRow(`SELECT flds FROM notes WHERE sfld = '안녕'`).Scan(&flds); err != nil {
		t.Fatal(err)
	}
	fields := strings.Split(flds, fieldSep)
	if len(fields) != 5 {
		t.Fatalf("note has %d fields, want 5", len(fields))
	}
	if fields[3] != "ㅇ+ㅏ+ㄴ / ㄴ+ㅕ+ㅇ" {
		t.Errorf("breakdown field = %q", fields[3])
	}
	if fields[4] != "" {
		t.Errorf("audio field = %q, want empty without assets", fields[4])
	}
}

func TestBreakdownField(t *testing.T) {
	w := data.Word{Breakdown: []data.Breakdown{
		{Initial: "ㄱ", Vowel: "ㅏ"},
		{Initial: "ㅂ", Vowel: "ㅏ", Final: "ㅂ"},
	}}
	if got := breakdownField(w); got != "ㄱ+ㅏ / ㅂ+ㅏ+ㅂ" {
		t.Errorf("breakdownField = %q", got)
	}
}
