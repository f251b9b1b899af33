//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package langid

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// model is the on-disk representation of an identifier: gob inside
// gzip, written by Save and by the model publishing tooling.
type model struct {
	Version  string
	Profiles map[string][]string
}

// ModelFilename is the name of a model artifact for a given version.
func ModelFilename(version string) string {
	return "lang-identifier-v" + version + ".gob.gz"
}

// Load reads a versioned model artifact from disk. The version inside
// the file must match the requested one.
func Load(path, version string) (*Identifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open language identifier model %q", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "read model gzip header")
	}
	defer gz.Close()

	var m model
	if err := gob.NewDecoder(gz).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decode language identifier model")
	}
	if m.Version != version {
		return nil, errors.Errorf("model version mismatch: requested %q, file contains %q",
			version, m.Version)
	}
	if len(m.Profiles) == 0 {
		return nil, errors.New("model contains no language profiles")
	}
	return newFromProfiles(m.Version, m.Profiles), nil
}

// Save writes the identifier's profiles as a versioned model artifact,
// creating parent directories as needed.
func (id *Identifier) Save(path, version string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create model directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create model file %q", path)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	m := model{Version: version, Profiles: id.profiles}
	if err := gob.NewEncoder(gz).Encode(m); err != nil {
		return errors.Wrap(err, "encode language identifier model")
	}
	return gz.Close()
}
