//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package datasets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/textkit/entities/document"
)

func writeWikiDump(t *testing.T, dataDir string, w *Wikimedia, lines []string) {
	t.Helper()
	path := filepath.Join(dataDir, w.fileStub())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

var wikiDumpLines = []string{
	`{"index": {"_id": "100"}}`,
	`{"namespace": 0, "title": "Gopher", "text": "Gophers are burrowing rodents. They live in North America.", "opening_text": "Gophers are burrowing rodents.", "category": ["Rodents", "All stub articles"], "outgoing_link": ["Rodent", "Wikipedia:Stub"], "external_link": ["https://example.com/gopher%20facts"], "create_timestamp": "2004-05-01T00:00:00Z", "incoming_links": 12, "popularity_score": 0.5}`,
	`{"index": {"_id": "101"}}`,
	`{"namespace": 4, "title": "Wikipedia:About", "text": "Meta page."}`,
	`{"index": {"_id": "102"}}`,
	`{"namespace": 0, "title": "Marmot", "text": "Marmots are large ground squirrels.", "category": ["Rodents", "Mountains"], "outgoing_link": ["Squirrel"]}`,
}

func collectWiki(t *testing.T, w *Wikimedia, filters WikiFilters) []document.Record {
	t.Helper()
	var got []document.Record
	require.NoError(t, w.Records(filters, func(rec document.Record) error {
		got = append(got, rec)
		return nil
	}))
	return got
}

func TestWikipediaRecords(t *testing.T) {
	dataDir := t.TempDir()
	w := Wikipedia(dataDir, "http://unused/", "en", VersionCurrent, NewDownloader(WithLogger(quietLogger())))
	writeWikiDump(t, dataDir, w, wikiDumpLines)

	got := collectWiki(t, w, WikiFilters{})
	require.Len(t, got, 2, "non-content namespaces are skipped")

	first := got[0]
	assert.Equal(t, "100", first.Meta["page_id"])
	assert.Equal(t, "Gopher", first.Meta["title"])
	// opening text is separated from the body
	assert.Equal(t, "Gophers are burrowing rodents.\n\nThey live in North America.", first.Text)
	// housekeeping categories and project-space links are dropped
	assert.Equal(t, []string{"Rodents"}, first.Meta["categories"])
	assert.Equal(t, []string{"Rodent"}, first.Meta["wiki_links"])
	// external links are percent-decoded
	assert.Equal(t, []string{"https://example.com/gopher facts"}, first.Meta["ext_links"])

	assert.Equal(t, "102", got[1].Meta["page_id"])
}

func TestWikipediaRecordFilters(t *testing.T) {
	dataDir := t.TempDir()
	w := Wikipedia(dataDir, "http://unused/", "en", VersionCurrent, NewDownloader(WithLogger(quietLogger())))
	writeWikiDump(t, dataDir, w, wikiDumpLines)

	got := collectWiki(t, w, WikiFilters{Category: []string{"Mountains"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Marmot", got[0].Meta["title"])

	got = collectWiki(t, w, WikiFilters{WikiLink: []string{"Rodent"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Gopher", got[0].Meta["title"])

	got = collectWiki(t, w, WikiFilters{MinLen: 40})
	require.Len(t, got, 1)
	assert.Equal(t, "Gopher", got[0].Meta["title"])

	got = collectWiki(t, w, WikiFilters{Limit: 1})
	require.Len(t, got, 1)
}

func TestWikimediaStopSentinel(t *testing.T) {
	dataDir := t.TempDir()
	w := Wikipedia(dataDir, "http://unused/", "en", VersionCurrent, NewDownloader(WithLogger(quietLogger())))
	writeWikiDump(t, dataDir, w, wikiDumpLines)

	seen := 0
	require.NoError(t, w.Records(WikiFilters{}, func(document.Record) error {
		seen++
		return ErrStop
	}))
	assert.Equal(t, 1, seen)
}

func TestWikimediaNotDownloaded(t *testing.T) {
	w := Wikipedia(t.TempDir(), "http://unused/", "en", VersionCurrent, NewDownloader(WithLogger(quietLogger())))

	assert.Empty(t, w.Filepath())
	err := w.Records(WikiFilters{}, func(document.Record) error { return nil })
	require.ErrorIs(t, err, ErrNotDownloaded)
}

func TestWikimediaResolveFileURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/20260817/enwiki-20260817-cirrussearch-content.json.gz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dl := NewDownloader(WithLogger(quietLogger()))

	w := Wikipedia(t.TempDir(), srv.URL+"/", "en", "20260817", dl)
	url, err := w.resolveFileURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/20260817/enwiki-20260817-cirrussearch-content.json.gz", url)

	w = Wikipedia(t.TempDir(), srv.URL+"/", "en", "20260810", dl)
	_, err = w.resolveFileURL(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Wikimedia CirrusSearch data found")

	w = Wikipedia(t.TempDir(), srv.URL+"/", "en", "not-a-date", dl)
	_, err = w.resolveFileURL(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be")
}

func TestWikinewsCategories(t *testing.T) {
	dataDir := t.TempDir()
	w := Wikinews(dataDir, "http://unused/", "en", VersionCurrent, NewDownloader(WithLogger(quietLogger())))
	writeWikiDump(t, dataDir, w, []string{
		`{"index": {"_id": "7"}}`,
		`{"namespace": 0, "title": "Local news", "text": "Something happened today.", "category": ["Published", "Politics"], "outgoing_link": ["Template:Infobox", "Election"]}`,
	})

	got := collectWiki(t, w, WikiFilters{})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Politics"}, got[0].Meta["categories"])
	assert.Equal(t, []string{"Election"}, got[0].Meta["wiki_links"])
}
