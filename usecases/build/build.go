//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package build holds version information stamped in at link time.
package build

import "runtime"

var (
	// Version is set via -ldflags "-X ...build.Version=v0.x.y".
	Version = "unknown"
	// Revision is the git commit the binary was built from.
	Revision = "unknown"

	GoVersion = runtime.Version()
)
