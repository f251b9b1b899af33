//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package datasets downloads and streams the corpora that ship as
// versioned artifacts: congressional speeches, Wikimedia dumps and the
// language-identifier model.
package datasets

import (
	"context"

	"github.com/pkg/errors"

	"github.com/textkit/textkit/entities/document"
)

// Info describes a dataset for display purposes.
type Info struct {
	Name        string
	Site        string
	Description string
}

// Dataset is anything that can be fetched to the local data dir and
// then streamed record by record.
type Dataset interface {
	Info() Info

	// Filepath returns the local path of the downloaded artifact, or
	// "" when it has not been downloaded yet.
	Filepath() string

	Download(ctx context.Context, force bool) error
}

// RecordFunc receives one record at a time. Returning ErrStop ends the
// iteration early without error; any other error aborts it.
type RecordFunc func(document.Record) error

// ErrStop is a sentinel a RecordFunc can return to stop iterating.
var ErrStop = errors.New("stop iteration")

var ErrNotDownloaded = errors.New("dataset not found on disk; has it been downloaded yet?")
