//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package document

// Record is a text plus its source metadata, as streamed out of a
// dataset. Meta keys depend on the dataset that produced the record.
type Record struct {
	Text string
	Meta map[string]interface{}
}
