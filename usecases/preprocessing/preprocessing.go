//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package preprocessing provides composable, pure string transforms for
// cleaning raw text before annotation: normalization of unicode and
// whitespace quirks, removal of markup and noise, and replacement of
// high-variance elements (URLs, numbers, handles) with placeholder tokens.
package preprocessing

// Transform is a pure text transform. Transforms compose with Chain.
type Transform func(string) string

// Chain combines transforms into one, applied left to right.
func Chain(transforms ...Transform) Transform {
	return func(text string) string {
		for _, tr := range transforms {
			text = tr(text)
		}
		return text
	}
}
