//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{in: "debug", want: logrus.DebugLevel},
		{in: "DEBUG", want: logrus.DebugLevel},
		{in: "info", want: logrus.InfoLevel},
		{in: "", want: logrus.InfoLevel},
		{in: "warning", want: logrus.WarnLevel},
		{in: "trace", want: logrus.TraceLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		logger, err := New(tt.in, "text")
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, logger.GetLevel(), tt.in)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("info", "xml")
	require.Error(t, err)
}

func TestJSONFormatterStampsBuildInfo(t *testing.T) {
	logger, err := New("info", "json")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("component", "test").Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "build_version")
	assert.Contains(t, entry, "build_go_version")
}
