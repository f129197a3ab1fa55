package pattern_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclog/mclog-go/pkg/mclog/event"
	"github.com/mclog/mclog-go/pkg/mclog/pattern"
)

var logDate = time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

func mustClassifier(t *testing.T, yaml string) *pattern.RegexClassifier {
	t.Helper()
	pf, err := pattern.LoadBytes([]byte(yaml))
	require.NoError(t, err)
	cl, err := pattern.NewRegexClassifier(pf)
	require.NoError(t, err)
	return cl
}

func TestRegexClassifier_Match(t *testing.T) {
	cl := mustClassifier(t, `
version: 1
patterns:
  - id: villager_trade
    event_type: villager_trade
    regex: '(?P<player>\w+) traded with (?P<profession>\w+)'
`)

	result, err := cl.ClassifyLine(context.Background(),
		"[14:05:10] [Server thread/INFO]: Steve traded with librarian", logDate)
	require.NoError(t, err)
	require.True(t, result.Matched)
	require.Len(t, result.Events, 1)

	ev := result.Events[0]
	assert.Equal(t, event.Type("villager_trade"), ev.Type)
	assert.Equal(t, "Steve", ev.Player)
	assert.Equal(t, "Steve traded with librarian", ev.RawMessage)
	assert.Equal(t, time.Date(2026, 8, 23, 14, 5, 10, 0, time.UTC), ev.Timestamp)
	assert.Equal(t, map[string]string{"player": "Steve", "profession": "librarian"}, ev.Data)
}

func TestRegexClassifier_NoMatch(t *testing.T) {
	cl := mustClassifier(t, `
version: 1
patterns:
  - id: backup_done
    event_type: backup_done
    regex: 'Backup completed in (?P<seconds>[\d.]+)s'
`)

	result, err := cl.ClassifyLine(context.Background(),
		"[14:05:10] [Server thread/INFO]: Steve joined the game", logDate)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Empty(t, result.Events)
}

func TestRegexClassifier_NoPrefix(t *testing.T) {
	cl := mustClassifier(t, `
version: 1
patterns:
  - id: any
    event_type: any
    regex: '.*'
`)

	result, err := cl.ClassifyLine(context.Background(), "no log prefix here", logDate)
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestRegexClassifier_MultipleMatches(t *testing.T) {
	cl := mustClassifier(t, `
version: 1
patterns:
  - id: first
    event_type: first
    regex: 'traded'
  - id: second
    event_type: second
    regex: 'librarian'
`)

	result, err := cl.ClassifyLine(context.Background(),
		"[14:05:10] [Server thread/INFO]: Steve traded with librarian", logDate)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	// Events come out in pattern definition order.
	assert.Equal(t, event.Type("first"), result.Events[0].Type)
	assert.Equal(t, event.Type("second"), result.Events[1].Type)
}

func TestRegexClassifier_NoNamedGroups(t *testing.T) {
	cl := mustClassifier(t, `
version: 1
patterns:
  - id: plain
    event_type: plain
    regex: 'overloaded'
`)

	result, err := cl.ClassifyLine(context.Background(),
		"[14:05:10] [Server thread/INFO]: server overloaded", logDate)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Nil(t, result.Events[0].Data)
	assert.Empty(t, result.Events[0].Player)
}

func TestNewRegexClassifier_InvalidRegex(t *testing.T) {
	pf, err := pattern.Load("testdata/invalid_regex.yaml")
	require.NoError(t, err)

	_, err = pattern.NewRegexClassifier(pf)
	require.Error(t, err)
	var patErr *pattern.PatternError
	require.ErrorAs(t, err, &patErr)
	assert.Equal(t, "broken", patErr.ID)
}

func TestNewRegexClassifier_NilFile(t *testing.T) {
	_, err := pattern.NewRegexClassifier(nil)
	assert.Error(t, err)
}

func TestNewRegexClassifierFromFile(t *testing.T) {
	cl, err := pattern.NewRegexClassifierFromFile("testdata/valid.yaml")
	require.NoError(t, err)

	result, err := cl.ClassifyLine(context.Background(),
		"[22:00:00] [Server thread/INFO]: Backup completed in 4.2s", logDate)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, map[string]string{"seconds": "4.2"}, result.Events[0].Data)
}
