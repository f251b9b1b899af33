//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package datasets

import (
	"context"
	"os"
	"path/filepath"

	"github.com/textkit/textkit/usecases/langid"
)

// LangModelVersion is the latest published model artifact version.
const LangModelVersion = "2.0"

// LangModel fetches the trained language-identifier model artifact.
// Loading it is the langid package's job.
type LangModel struct {
	version string
	dataDir string
	root    string
	dl      *Downloader
}

func NewLangModel(dataDir, root, version string, dl *Downloader) *LangModel {
	if version == "" {
		version = LangModelVersion
	}
	return &LangModel{
		version: version,
		dataDir: dataDir,
		root:    root,
		dl:      dl,
	}
}

func (m *LangModel) Info() Info {
	return Info{
		Name:        "lang_identifier",
		Site:        "https://github.com/textkit/textkit-data",
		Description: "Trained character n-gram model for language identification.",
	}
}

func (m *LangModel) Filepath() string {
	path := filepath.Join(m.dataDir, "lang_identifier", langid.ModelFilename(m.version))
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path
	}
	return ""
}

func (m *LangModel) Download(ctx context.Context, force bool) error {
	name := langid.ModelFilename(m.version)
	url := m.root + name
	dest := filepath.Join(m.dataDir, "lang_identifier", name)
	return m.dl.Fetch(ctx, url, dest, force)
}

// Load reads the downloaded model from disk.
func (m *LangModel) Load() (*langid.Identifier, error) {
	return langid.Load(filepath.Join(m.dataDir, "lang_identifier", langid.ModelFilename(m.version)), m.version)
}
