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
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/textkit/textkit/entities/document"
)

// VersionCurrent selects the most recent weekly dump.
const VersionCurrent = "current"

const (
	projectWikipedia = "wiki"
	projectWikinews  = "wikinews"
)

// Wikimedia streams all content pages of a language- and
// version-specific Wikimedia project snapshot. The source files are
// CirrusSearch dumps: gzipped JSON in Elasticsearch bulk-insert
// format, meaning each page is an index line followed by a source
// line.
type Wikimedia struct {
	info      Info
	project   string
	lang      string
	version   string
	namespace int

	dataDir string
	root    string
	dl      *Downloader
}

// Wikipedia returns the dataset of all pages of a Wikipedia snapshot.
// version is either VersionCurrent or a date string like "20260824".
func Wikipedia(dataDir, root, lang, version string, dl *Downloader) *Wikimedia {
	return &Wikimedia{
		info: Info{
			Name:        "wikipedia",
			Site:        fmt.Sprintf("https://%s.wikipedia.org/wiki/Main_Page", lang),
			Description: "All pages for a given language- and version-specific Wikipedia site snapshot.",
		},
		project: projectWikipedia,
		lang:    lang,
		version: version,
		dataDir: dataDir,
		root:    root,
		dl:      dl,
	}
}

// Wikinews returns the dataset of all pages of a Wikinews snapshot.
func Wikinews(dataDir, root, lang, version string, dl *Downloader) *Wikimedia {
	return &Wikimedia{
		info: Info{
			Name:        "wikinews",
			Site:        fmt.Sprintf("https://%s.wikinews.org/wiki/Main_Page", lang),
			Description: "All pages for a given language- and version-specific Wikinews site snapshot.",
		},
		project: projectWikinews,
		lang:    lang,
		version: version,
		dataDir: dataDir,
		root:    root,
		dl:      dl,
	}
}

func (w *Wikimedia) Info() Info { return w.info }

func (w *Wikimedia) fileStub() string {
	return filepath.Join(
		w.lang+w.project,
		w.version,
		fmt.Sprintf("%s%s-%s-cirrussearch-content.json.gz", w.lang, w.project, w.version),
	)
}

// Filepath returns the local dump path, or "" if it is not on disk.
func (w *Wikimedia) Filepath() string {
	path := filepath.Join(w.dataDir, w.fileStub())
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path
	}
	return ""
}

// Download resolves the dump URL for the configured version and
// fetches it. Some dumps are large (English Wikipedia is ~30GB).
func (w *Wikimedia) Download(ctx context.Context, force bool) error {
	fileURL, err := w.resolveFileURL(ctx)
	if err != nil {
		return err
	}
	dest := filepath.Join(w.dataDir, w.fileStub())
	return w.dl.Fetch(ctx, fileURL, dest, force)
}

// resolveFileURL probes candidate dump URLs with HEAD requests. The
// "current" version maps to the previous two Mondays, since the
// current week's dump may not have landed yet.
func (w *Wikimedia) resolveFileURL(ctx context.Context) (string, error) {
	var stamps []string
	if w.version == VersionCurrent {
		today := time.Now()
		monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		stamps = []string{
			monday.Format("20060102"),
			monday.AddDate(0, 0, -7).Format("20060102"),
		}
	} else {
		if _, err := time.Parse("20060102", w.version); err != nil {
			return "", errors.Errorf(
				"version %q is invalid; must be %q or a date string like YYYYMMDD",
				w.version, VersionCurrent)
		}
		stamps = []string{w.version}
	}

	for _, stamp := range stamps {
		fileURL := fmt.Sprintf("%s%s/%s%s-%s-cirrussearch-content.json.gz",
			w.root, w.version, w.lang, w.project, stamp)
		ok, err := w.dl.Exists(ctx, fileURL)
		if err != nil {
			return "", err
		}
		if ok {
			return fileURL, nil
		}
	}
	return "", errors.Errorf(
		"no Wikimedia CirrusSearch data found for project=%q lang=%q version=%q; check %s for available data",
		w.project, w.lang, w.version, w.root)
}

// WikiFilters narrows the records yielded by Records and Texts. Multi-
// valued filters match if ANY value matches.
type WikiFilters struct {
	// Category keeps pages assigned to any of these categories.
	Category []string
	// WikiLink keeps pages linking to any of these wiki pages.
	WikiLink []string
	// MinLen keeps pages whose text has at least this many characters.
	MinLen int
	// Limit stops after this many matching pages; 0 means no limit.
	Limit int
}

func (f WikiFilters) validate() error {
	if f.MinLen < 0 {
		return errors.New("min_len must be at least 1")
	}
	if f.Limit < 0 {
		return errors.New("limit must be at least 1")
	}
	return nil
}

func (f WikiFilters) matches(rec document.Record) bool {
	if f.MinLen > 0 && len([]rune(rec.Text)) < f.MinLen {
		return false
	}
	if len(f.Category) > 0 {
		cats, _ := rec.Meta["categories"].([]string)
		if !anyOverlap(f.Category, cats) {
			return false
		}
	}
	if len(f.WikiLink) > 0 {
		links, _ := rec.Meta["wiki_links"].([]string)
		if !anyOverlap(f.WikiLink, links) {
			return false
		}
	}
	return true
}

func anyOverlap(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

type wikiSource struct {
	Namespace       *int     `json:"namespace"`
	Title           string   `json:"title"`
	Text            string   `json:"text"`
	OpeningText     string   `json:"opening_text"`
	Heading         []string `json:"heading"`
	Category        []string `json:"category"`
	OutgoingLink    []string `json:"outgoing_link"`
	ExternalLink    []string `json:"external_link"`
	CreateTimestamp string   `json:"create_timestamp"`
	IncomingLinks   int      `json:"incoming_links"`
	PopularityScore float64  `json:"popularity_score"`
}

type wikiIndex struct {
	Index struct {
		ID string `json:"_id"`
	} `json:"index"`
}

// Records streams pages in dump order, passing each through fn until
// the dump is exhausted, the limit is reached or fn returns an error.
func (w *Wikimedia) Records(filters WikiFilters, fn RecordFunc) error {
	if err := filters.validate(); err != nil {
		return err
	}

	path := w.Filepath()
	if path == "" {
		return errors.Wrapf(ErrNotDownloaded, "%s database dump", w.project)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open dump file %q", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "decompress dump file %q", path)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	// single pages can run to tens of MB of JSON
	scanner.Buffer(make([]byte, 1024*1024), 256*1024*1024)

	yielded := 0
	var index *wikiIndex
	for scanner.Scan() {
		line := scanner.Bytes()
		if index == nil {
			index = &wikiIndex{}
			if err := json.Unmarshal(line, index); err != nil {
				return errors.Wrap(err, "parse index line")
			}
			continue
		}

		var source wikiSource
		if err := json.Unmarshal(line, &source); err != nil {
			return errors.Wrap(err, "parse source line")
		}
		pageID := index.Index.ID
		index = nil

		if source.Namespace == nil || *source.Namespace != w.namespace {
			continue
		}

		rec := w.buildRecord(pageID, source)
		if !filters.matches(rec) {
			continue
		}

		if err := fn(rec); err != nil {
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
	return errors.Wrap(scanner.Err(), "scan dump file")
}

// Texts is Records reduced to page text only.
func (w *Wikimedia) Texts(filters WikiFilters, fn func(string) error) error {
	return w.Records(filters, func(rec document.Record) error {
		return fn(rec.Text)
	})
}

func (w *Wikimedia) buildRecord(pageID string, source wikiSource) document.Record {
	// split opening text from main body text, if available
	text := source.Text
	if source.OpeningText != "" && strings.HasPrefix(text, source.OpeningText) {
		text = source.OpeningText + "\n\n" +
			strings.TrimSpace(text[len(source.OpeningText):])
	}

	categories := make([]string, 0, len(source.Category))
	for _, cat := range source.Category {
		if !w.isBadCategory(cat) {
			categories = append(categories, cat)
		}
	}

	badStarts := badWikiLinkStarts[w.project][w.lang]
	wikiLinks := make([]string, 0, len(source.OutgoingLink))
	for _, wl := range source.OutgoingLink {
		if !hasAnyPrefix(wl, badStarts) {
			wikiLinks = append(wikiLinks, wl)
		}
	}

	extLinks := make([]string, 0, len(source.ExternalLink))
	for _, el := range source.ExternalLink {
		if unquoted, err := url.QueryUnescape(el); err == nil {
			extLinks = append(extLinks, unquoted)
		} else {
			extLinks = append(extLinks, el)
		}
	}

	return document.Record{
		Text: text,
		Meta: map[string]interface{}{
			"page_id":          pageID,
			"title":            source.Title,
			"headings":         source.Heading,
			"wiki_links":       wikiLinks,
			"ext_links":        extLinks,
			"categories":       categories,
			"dt_created":       source.CreateTimestamp,
			"n_incoming_links": source.IncomingLinks,
			"popularity_score": source.PopularityScore,
		},
	}
}

var enArticleCategoryRe = regexp.MustCompile(`^(?:All )?(?:Wikipedia )?(?:[Aa]rticles?|[Pp]ages)`)

// isBadCategory flags the housekeeping categories each project and
// language uses for workflow state rather than topical grouping.
func (w *Wikimedia) isBadCategory(cat string) bool {
	switch w.project {
	case projectWikipedia:
		switch w.lang {
		case "de", "nl":
			return strings.HasPrefix(cat, "Wikipedia:")
		case "en":
			return cat == "All stub articles" ||
				strings.HasPrefix(cat, "Disambiguation pages") ||
				enArticleCategoryRe.MatchString(cat)
		}
	case projectWikinews:
		if bad, ok := badWikinewsCategories[w.lang]; ok {
			_, found := bad[cat]
			return found
		}
	}
	return false
}

var badWikinewsCategories = map[string]map[string]struct{}{
	"de": {"Artikelstatus: Fertig": {}, "Veröffentlicht": {}},
	"en": {"Archived": {}, "Published": {}, "AutoArchived": {}, "No publish": {}},
	"es": {"Archivado": {}, "Artículos publicados": {}},
	"fr": {"Article archivé": {}, "Article publié": {}},
	"it": {"Pubblicati": {}},
	"nl": {"Gepubliceerd": {}},
	"pt": {"Arquivado": {}, "Publicado": {}},
}

var badWikiLinkStarts = map[string]map[string][]string{
	projectWikipedia: {
		"de": {"Wikipedia:", "Hilfe:"},
		"el": {"Βοήθεια:"},
		"en": {"Wikipedia:", "Help:"},
		"es": {"Wikipedia:", "Ayuda:"},
		"fr": {"Wikipédia:", "Aide:"},
		"it": {"Wikipedia:", "Aiuto:"},
		"nl": {"Wikipedia:"},
		"pt": {"Wikipédia:", "Ajuda:"},
	},
	projectWikinews: {
		"de": {"Wikinews:"},
		"el": {"Βικινέα"},
		"en": {"Wikinews:", "Template:", "User:"},
		"es": {"Wikinoticias:"},
		"fr": {"Wikinews:"},
		"it": {"Wikinotizie:"},
		"nl": {"Wikinieuws:"},
		"pt": {"Wikinotícias:"},
	},
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
