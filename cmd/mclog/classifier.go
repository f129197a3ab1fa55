package main

import (
	"fmt"

	"github.com/mclog/mclog-go/pkg/mclog"
	"github.com/mclog/mclog-go/pkg/mclog/pattern"
)

// buildClassifier builds a Classifier from pattern file paths.
// Returns nil if no pattern files are specified (use the default classifier).
func buildClassifier(patternFiles []string) (mclog.Classifier, error) {
	if len(patternFiles) == 0 {
		return nil, nil
	}

	classifiers := []mclog.Classifier{mclog.DefaultClassifier{}}
	for i, path := range patternFiles {
		rc, err := pattern.NewRegexClassifierFromFile(path)
		if err != nil {
			// Error from pattern package is already sanitized (no path)
			return nil, fmt.Errorf("pattern file %d: %w", i+1, err)
		}
		classifiers = append(classifiers, rc)
	}

	return &mclog.Chain{
		Mode:        mclog.ChainAll,
		Classifiers: classifiers,
	}, nil
}
