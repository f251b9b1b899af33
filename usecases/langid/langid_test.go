//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package langid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	id := New()

	type testCase struct {
		text     string
		expected string
	}

	testCases := []testCase{
		{
			text:     "this is a short text about the weather and the people who talk about it",
			expected: "en",
		},
		{
			text:     "este es un texto corto sobre el tiempo y la gente que habla de ello",
			expected: "es",
		},
		{
			text:     "dies ist ein kurzer text über das wetter und die leute die darüber sprechen",
			expected: "de",
		},
		{
			text:     "ceci est un petit texte sur le temps et les gens qui en parlent",
			expected: "fr",
		},
	}

	for _, tc := range testCases {
		pred, err := id.Identify(tc.text)
		require.Nil(t, err)
		assert.Equal(t, tc.expected, pred.Lang, "text: %s", tc.text)
		assert.Greater(t, pred.Confidence, 0.0)
	}
}

func TestIdentifyTopN(t *testing.T) {
	id := New()

	preds, err := id.IdentifyTopN("the weather is nice today and the sun is out", 3)
	require.Nil(t, err)
	require.Len(t, preds, 3)
	assert.Equal(t, "en", preds[0].Lang)

	// most likely first
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Confidence, preds[i].Confidence)
	}

	_, err = id.IdentifyTopN("some text", 0)
	assert.NotNil(t, err)

	_, err = id.IdentifyTopN("12345 !!!", 1)
	assert.NotNil(t, err)
}

func TestIdentifierMetadata(t *testing.T) {
	id := New()
	assert.Equal(t, BuiltinVersion, id.Version())
	assert.Contains(t, id.Langs(), "en")
	assert.Contains(t, id.Langs(), "es")
}

func TestModelRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ModelFilename("2.0"))

	orig := New()
	require.Nil(t, orig.Save(path, "2.0"))

	loaded, err := Load(path, "2.0")
	require.Nil(t, err)
	assert.Equal(t, "2.0", loaded.Version())
	assert.Equal(t, orig.Langs(), loaded.Langs())

	pred, err := loaded.Identify("the weather is nice today and the sun is shining")
	require.Nil(t, err)
	assert.Equal(t, "en", pred.Lang)
}

func TestModelVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ModelFilename("2.0"))
	require.Nil(t, New().Save(path, "2.0"))

	_, err := Load(path, "3.0")
	assert.NotNil(t, err)
}

func TestModelMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gob.gz"), "2.0")
	assert.NotNil(t, err)
}
