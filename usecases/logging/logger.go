//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package logging configures the process-wide structured logger.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/textkit/textkit/usecases/build"
)

type jsonFormatter struct {
	*logrus.JSONFormatter
	version, revision, goVersion string
}

func newJSONFormatter() logrus.Formatter {
	return &jsonFormatter{
		&logrus.JSONFormatter{},
		build.Version,
		build.Revision,
		build.GoVersion,
	}
}

func (f *jsonFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Data["build_version"] = f.version
	e.Data["build_git_commit"] = f.revision
	e.Data["build_go_version"] = f.goVersion
	return f.JSONFormatter.Format(e)
}

type textFormatter struct {
	*logrus.TextFormatter
}

func newTextFormatter() logrus.Formatter {
	return &textFormatter{&logrus.TextFormatter{}}
}

// New builds a logrus logger with the given level and format. Format
// must be "text" or "json"; level is case insensitive.
func New(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()

	switch format {
	case "json":
		logger.SetFormatter(newJSONFormatter())
	case "text", "":
		logger.SetFormatter(newTextFormatter())
	default:
		return nil, errors.Errorf("log format %q not recognized", format)
	}

	lvl, err := levelFromString(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	return logger, nil
}

func levelFromString(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "panic":
		return logrus.PanicLevel, nil
	case "fatal":
		return logrus.FatalLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "info", "":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "trace":
		return logrus.TraceLevel, nil
	default:
		return logrus.InfoLevel, errors.Errorf("log level %q not recognized", level)
	}
}
