// Package mclog provides parsing and monitoring of Minecraft server log
// files, plus normalization of the server's per-player stat snapshots.
//
// This package allows you to:
//   - Classify server log lines into structured events
//   - Monitor the live log in real-time for new events
//   - Define custom event patterns via YAML configuration
//   - Build tools like death feeds, join notifications, or stat exporters
//
// # Basic Usage
//
// To monitor the server log in real-time:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	events, errs, err := mclog.Watch(ctx, "/opt/minecraft/logs/latest.log",
//	    mclog.WithIncludeTypes(event.Join, event.Leave, event.Death),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    select {
//	    case ev, ok := <-events:
//	        if !ok {
//	            return
//	        }
//	        fmt.Printf("%s %s %s\n", ev.Timestamp.Format(time.TimeOnly), ev.Type, ev.Player)
//	    case err, ok := <-errs:
//	        if !ok {
//	            return
//	        }
//	        log.Printf("error: %v", err)
//	    }
//	}
//
// To classify a single log line:
//
//	ev, err := mclog.ClassifyLine(line, time.Now())
//	if err != nil {
//	    log.Printf("classify error: %v", err)
//	} else if ev != nil {
//	    // process event
//	}
//
// # Custom Classifiers
//
// Implement the [Classifier] interface for custom log classification:
//
//	type Classifier interface {
//	    ClassifyLine(ctx context.Context, line string, logDate time.Time) (ClassifyResult, error)
//	}
//
// Use [Chain] to combine multiple classifiers:
//
//	chain := &mclog.Chain{
//	    Mode:        mclog.ChainAll,
//	    Classifiers: []mclog.Classifier{mclog.DefaultClassifier{}, custom},
//	}
//
// # YAML Pattern Files
//
// For pattern-based classification without code, use the [pattern]
// subpackage:
//
//	import "github.com/mclog/mclog-go/pkg/mclog/pattern"
//
//	cl, err := pattern.NewRegexClassifierFromFile("patterns.yaml")
//
// # Stat Snapshots
//
// The [stats] subpackage reads the server's world/stats/<uuid>.json files
// and normalizes them into flat per-player rows.
package mclog
