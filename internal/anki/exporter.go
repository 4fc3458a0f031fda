// Package anki exports the flashcard word list as an Anki .apkg deck.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/data"
)

// Field separator inside an Anki note's flds column.
const fieldSep = "\x1f"

// Exporter builds an .apkg package from the word categories.
type Exporter struct {
	deckName string
	deckID   int64
	modelID  int64
	assetDir string // where pre-generated word clips live; "" skips media
}

// NewExporter creates an exporter. assetDir may be empty when no audio
// should be bundled.
func NewExporter(deckName, assetDir string) *Exporter {
	now := time.Now().UnixMilli()
	return &Exporter{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		assetDir: assetDir,
	}
}

// Export writes the deck for every word in the document to outputPath.
func (e *Exporter) Export(doc *data.Document, outputPath string) error {
	tempDir, err := os.MkdirTemp("", "hangul_anki_*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	media, err := e.collectMedia(doc, tempDir)
	if err != nil {
		return fmt.Errorf("collecting media: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := e.buildCollection(dbPath, doc, media); err != nil {
		return fmt.Errorf("building collection: %w", err)
	}

	if err := e.writePackage(tempDir, media, outputPath); err != nil {
		return fmt.Errorf("writing package: %w", err)
	}
	return nil
}

// collectMedia copies available word clips into the temp dir under
// their Anki media numbers and returns clip-key -> media-number.
func (e *Exporter) collectMedia(doc *data.Document, tempDir string) (map[string]int, error) {
	media := make(map[string]int)
	if e.assetDir == "" {
		return media, nil
	}

	counter := 0
	for _, cat := range doc.Categories {
		for _, word := range cat.Words {
			src := filepath.Join(e.assetDir, audio.TTSPath(audio.CategoryWords, word.ClipKey()))
			if _, err := os.Stat(src); err != nil {
				continue // missing clips are expected
			}
			dst := filepath.Join(tempDir, fmt.Sprintf("%d", counter))
			if err := copyFile(src, dst); err != nil {
				return nil, err
			}
			media[word.ClipKey()] = counter
			counter++
		}
	}
	return media, nil
}

func (e *Exporter) buildCollection(dbPath string, doc *data.Document, media map[string]int) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return err
	}
	if err := e.insertCollection(db); err != nil {
		return err
	}
	return e.insertNotes(db, doc, media)
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE col (
			id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
			scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL,
			usn integer NOT NULL, ls integer NOT NULL, conf text NOT NULL,
			models text NOT NULL, decks text NOT NULL, dconf text NOT NULL,
			tags text NOT NULL
		)`,
		`CREATE TABLE notes (
			id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
			mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL,
			flds text NOT NULL, sfld text NOT NULL, csum integer NOT NULL,
			flags integer NOT NULL, data text NOT NULL
		)`,
		`CREATE TABLE cards (
			id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
			ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL,
			type integer NOT NULL, queue integer NOT NULL, due integer NOT NULL,
			ivl integer NOT NULL, factor integer NOT NULL, reps integer NOT NULL,
			lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
			odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL
		)`,
		`CREATE TABLE revlog (
			id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
			ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
			factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL
		)`,
		`CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL)`,
		`CREATE INDEX ix_notes_usn ON notes (usn)`,
		`CREATE INDEX ix_cards_usn ON cards (usn)`,
		`CREATE INDEX ix_cards_nid ON cards (nid)`,
		`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (e *Exporter) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	decks := map[string]any{
		"1": deckJSON(1, "Default", "", now),
		fmt.Sprintf("%d", e.deckID): deckJSON(e.deckID, e.deckName,
			"Hangul vocabulary flashcards", now),
	}
	decksJSON, _ := json.Marshal(decks)

	models := map[string]any{
		fmt.Sprintf("%d", e.modelID): e.noteType(),
	}
	modelsJSON, _ := json.Marshal(models)

	conf := map[string]any{
		"nextPos": 1, "activeDecks": []int64{1}, "sortType": "noteFld",
		"addToCur": true, "curDeck": 1, "schedVer": 1,
		"curModel": fmt.Sprintf("%d", e.modelID),
	}
	confJSON, _ := json.Marshal(conf)

	dconf := map[string]any{
		"1": map[string]any{
			"id": 1, "name": "Default", "dyn": 0, "usn": 0, "mod": now,
			"autoplay": true, "replayq": true, "timer": 0, "maxTaken": 60,
			"new":   map[string]any{"delays": []int{1, 10}, "ints": []int{1, 4, 7}, "initialFactor": 2500, "perDay": 20, "order": 1},
			"lapse": map[string]any{"delays": []int{10}, "mult": 0, "minInt": 1, "leechFails": 8, "leechAction": 0},
			"rev":   map[string]any{"perDay": 100, "ease4": 1.3, "maxIvl": 36500, "ivlFct": 1},
		},
	}
	dconfJSON, _ := json.Marshal(dconf)

	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1, now, now*1000, now*1000, 11, 0, 0, 0,
		string(confJSON), string(modelsJSON), string(decksJSON), string(dconfJSON), "{}")
	return err
}

func deckJSON(id int64, name, desc string, now int64) map[string]any {
	return map[string]any{
		"id": id, "name": name, "desc": desc, "mod": now,
		"collapsed": false, "dyn": 0, "conf": 1, "usn": 0,
		"newToday": []int{0, 0}, "revToday": []int{0, 0},
		"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
	}
}

func (e *Exporter) noteType() map[string]any {
	fields := []map[string]any{}
	for i, name := range []string{"Korean", "English", "Romanization", "Breakdown", "Audio"} {
		fields = append(fields, map[string]any{
			"name": name, "ord": i, "sticky": false, "rtl": false,
			"font": "Arial", "size": 20, "media": []string{},
		})
	}

	return map[string]any{
		"id": e.modelID, "name": "Hangul Word", "type": 0,
		"mod": time.Now().Unix(), "usn": -1, "sortf": 0, "did": e.deckID,
		"req":  [][]any{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"vers": []int{}, "tags": []string{},
		"flds": fields,
		"tmpls": []map[string]any{
			{
				"name": "Recognition", "ord": 0,
				"qfmt": `<div class="korean">{{Korean}}</div>{{#Audio}}<div>{{Audio}}</div>{{/Audio}}`,
				"afmt": `{{FrontSide}}<hr id="answer"><div class="english">{{English}}</div><div class="roman">{{Romanization}}</div><div class="breakdown">{{Breakdown}}</div>`,
				"did":  nil, "bqfmt": "", "bafmt": "",
			},
			{
				"name": "Recall", "ord": 1,
				"qfmt": `<div class="english">{{English}}</div>`,
				"afmt": `{{FrontSide}}<hr id="answer"><div class="korean">{{Korean}}</div><div class="roman">{{Romanization}}</div>{{#Audio}}<div>{{Audio}}</div>{{/Audio}}`,
				"did":  nil, "bqfmt": "", "bafmt": "",
			},
		},
		"css": `.card { font-family: sans-serif; font-size: 20px; text-align: center; }
.korean { font-size: 48px; }
.english { font-size: 26px; font-weight: bold; }
.roman { color: #4ecdc4; font-style: italic; }
.breakdown { color: #888; font-size: 16px; margin-top: 12px; }`,
	}
}

func (e *Exporter) insertNotes(db *sql.DB, doc *data.Document, media map[string]int) error {
	now := time.Now()
	i := 0
	for _, cat := range doc.Categories {
		for _, word := range cat.Words {
			noteID := now.UnixMilli() + int64(i*3)

			audioField := ""
			if _, ok := media[word.ClipKey()]; ok {
				audioField = fmt.Sprintf("[sound:%s.mp3]", word.ClipKey())
			}

			fields := strings.Join([]string{
				word.Korean,
				word.English,
				word.Romanization,
				breakdownField(word),
				audioField,
			}, fieldSep)

			guid := fmt.Sprintf("hangul_%d_%s", now.Unix(), word.Korean)
			_, err := db.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				noteID, guid, e.modelID, now.Unix(), -1,
				strings.ToLower(cat.Name), fields, word.Korean, 0, 0, "")
			if err != nil {
				return fmt.Errorf("inserting note %s: %w", word.Korean, err)
			}

			for ord := 0; ord < 2; ord++ {
				_, err = db.Exec(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					noteID+int64(ord)+1, noteID, e.deckID, ord, now.Unix(), -1,
					0, 0, noteID, 0, 0, 0, 0, 0, 0, 0, 0, "")
				if err != nil {
					return fmt.Errorf("inserting card for %s: %w", word.Korean, err)
				}
			}
			i++
		}
	}
	return nil
}

// breakdownField renders the jamo decomposition, e.g. "ㅇ+ㅏ+ㄴ / ㄴ+ㅕ+ㅇ".
func breakdownField(word data.Word) string {
	parts := make([]string, 0, len(word.Breakdown))
	for _, b := range word.Breakdown {
		jamos := []string{b.Initial, b.Vowel}
		if b.Final != "" {
			jamos = append(jamos, b.Final)
		}
		parts = append(parts, strings.Join(jamos, "+"))
	}
	return strings.Join(parts, " / ")
}

// writePackage zips the collection, the media mapping and the media
// files into the final .apkg.
func (e *Exporter) writePackage(tempDir string, media map[string]int, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	// Media mapping: media-number -> original filename.
	mapping := make(map[string]string, len(media))
	for key, n := range media {
		mapping[fmt.Sprintf("%d", n)] = key + ".mp3"
	}
	mappingJSON, _ := json.Marshal(mapping)

	w, err := zw.Create("media")
	if err != nil {
		return err
	}
	if _, err := w.Write(mappingJSON); err != nil {
		return err
	}

	entries := []string{"collection.anki2"}
	for _, n := range media {
		entries = append(entries, fmt.Sprintf("%d", n))
	}
	for _, name := range entries {
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		f, err := os.Open(filepath.Join(tempDir, name))
		if err != nil {
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
