//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package datasets

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/textkit/textkit/entities/document"
)

// CapitolWordsVersion is the latest published artifact version.
const CapitolWordsVersion = "1.0"

// Speeches in the dataset span this date range, inclusive.
const (
	CapitolWordsFirstDate = "1996-01-01"
	CapitolWordsLastDate  = "2016-06-30"
)

var (
	capitolWordsParties  = map[string]struct{}{"R": {}, "D": {}, "I": {}, "ID": {}}
	capitolWordsChambers = map[string]struct{}{"House": {}, "Senate": {}, "Extensions": {}}
)

// CapitolWords streams ~11k speeches given by the main protagonists of
// the 2016 U.S. presidential election on the floor of Congress between
// January 1996 and June 2016. The artifact is a gzipped file with one
// JSON record per line.
type CapitolWords struct {
	version string
	dataDir string
	root    string
	dl      *Downloader
}

func NewCapitolWords(dataDir, root, version string, dl *Downloader) *CapitolWords {
	if version == "" {
		version = CapitolWordsVersion
	}
	return &CapitolWords{
		version: version,
		dataDir: dataDir,
		root:    root,
		dl:      dl,
	}
}

func (c *CapitolWords) Info() Info {
	return Info{
		Name:        "capitol_words",
		Site:        "http://sunlightlabs.github.io/Capitol-Words/",
		Description: "Collection of contemporary U.S. Senate and House speeches by the main 2016 presidential candidates.",
	}
}

func (c *CapitolWords) filename() string {
	return fmt.Sprintf("capitol-words-v%s.json.gz", c.version)
}

func (c *CapitolWords) Filepath() string {
	path := filepath.Join(c.dataDir, "capitol_words", c.filename())
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path
	}
	return ""
}

func (c *CapitolWords) Download(ctx context.Context, force bool) error {
	url := c.root + c.filename()
	dest := filepath.Join(c.dataDir, "capitol_words", c.filename())
	return c.dl.Fetch(ctx, url, dest, force)
}

// CapitolWordsFilters narrows the records yielded by Records and
// Texts. Multi-valued filters match if ANY value matches.
type CapitolWordsFilters struct {
	SpeakerName  []string
	SpeakerParty []string
	Chamber      []string
	Congress     []int
	// DateRange keeps speeches given in [From, To); both bounds are
	// ISO dates and may be empty for an open end.
	DateRange [2]string
	MinLen    int
	Limit     int
}

func (f CapitolWordsFilters) validate() error {
	for _, p := range f.SpeakerParty {
		if _, ok := capitolWordsParties[p]; !ok {
			return errors.Errorf("speaker_party %q not in dataset", p)
		}
	}
	for _, ch := range f.Chamber {
		if _, ok := capitolWordsChambers[ch]; !ok {
			return errors.Errorf("chamber %q not in dataset", ch)
		}
	}
	for _, cg := range f.Congress {
		if cg < 104 || cg > 114 {
			return errors.Errorf("congress %d not in dataset", cg)
		}
	}
	if f.MinLen < 0 {
		return errors.New("min_len must be at least 1")
	}
	if f.Limit < 0 {
		return errors.New("limit must be at least 1")
	}
	return nil
}

type capitolWordsRecord struct {
	Text         string `json:"text"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Congress     int    `json:"congress"`
	SpeakerName  string `json:"speaker_name"`
	SpeakerParty string `json:"speaker_party"`
	Chamber      string `json:"chamber"`
}

func (f CapitolWordsFilters) matches(rec capitolWordsRecord) bool {
	if f.MinLen > 0 && len([]rune(rec.Text)) < f.MinLen {
		return false
	}
	if len(f.SpeakerName) > 0 && !containsString(f.SpeakerName, rec.SpeakerName) {
		return false
	}
	if len(f.SpeakerParty) > 0 && !containsString(f.SpeakerParty, rec.SpeakerParty) {
		return false
	}
	if len(f.Chamber) > 0 && !containsString(f.Chamber, rec.Chamber) {
		return false
	}
	if len(f.Congress) > 0 {
		found := false
		for _, cg := range f.Congress {
			if cg == rec.Congress {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	// ISO dates compare correctly as strings
	if from := f.DateRange[0]; from != "" && rec.Date < from {
		return false
	}
	if to := f.DateRange[1]; to != "" && rec.Date >= to {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Records streams speeches in chronological order, passing each
// through fn until the file is exhausted, the limit is reached or fn
// returns an error.
func (c *CapitolWords) Records(filters CapitolWordsFilters, fn RecordFunc) error {
	if err := filters.validate(); err != nil {
		return err
	}

	path := c.Filepath()
	if path == "" {
		return errors.Wrap(ErrNotDownloaded, "capitol_words dataset")
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open dataset file %q", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "decompress dataset file %q", path)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	yielded := 0
	for scanner.Scan() {
		var rec capitolWordsRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return errors.Wrap(err, "parse record line")
		}
		if !filters.matches(rec) {
			continue
		}

		err := fn(document.Record{
			Text: rec.Text,
			Meta: map[string]interface{}{
				"title":         rec.Title,
				"date":          rec.Date,
				"congress":      rec.Congress,
				"speaker_name":  rec.SpeakerName,
				"speaker_party": rec.SpeakerParty,
				"chamber":       rec.Chamber,
			},
		})
		if err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		yielded++
		if filters.Limit > 0 && yielded >= filters.Limit {
			return nil
		}
	}
	return errors.Wrap(scanner.Err(), "scan dataset file")
}

// Texts is Records reduced to speech text only.
func (c *CapitolWords) Texts(filters CapitolWordsFilters, fn func(string) error) error {
	return c.Records(filters, func(rec document.Record) error {
		return fn(rec.Text)
	})
}
