package mclog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mclog/mclog-go/pkg/mclog/event"
)

func staticClassifier(evType event.Type, matched bool, err error) Classifier {
	return ClassifierFunc(func(_ context.Context, _ string, _ time.Time) (ClassifyResult, error) {
		if err != nil {
			return ClassifyResult{}, err
		}
		if !matched {
			return ClassifyResult{}, nil
		}
		return ClassifyResult{Events: []event.Event{{Type: evType}}, Matched: true}, nil
	})
}

func TestChain_All(t *testing.T) {
	chain := &Chain{
		Mode: ChainAll,
		Classifiers: []Classifier{
			staticClassifier(event.Chat, true, nil),
			staticClassifier(event.Join, false, nil),
			staticClassifier(event.Death, true, nil),
		},
	}

	result, err := chain.ClassifyLine(context.Background(), "line", testDate)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.Len(t, result.Events, 2)
	assert.Equal(t, event.Chat, result.Events[0].Type)
	assert.Equal(t, event.Death, result.Events[1].Type)
}

func TestChain_First(t *testing.T) {
	chain := &Chain{
		Mode: ChainFirst,
		Classifiers: []Classifier{
			staticClassifier(event.Join, false, nil),
			staticClassifier(event.Chat, true, nil),
			staticClassifier(event.Death, true, nil),
		},
	}

	result, err := chain.ClassifyLine(context.Background(), "line", testDate)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.Len(t, result.Events, 1)
	assert.Equal(t, event.Chat, result.Events[0].Type)
}

func TestChain_ErrorStops(t *testing.T) {
	boom := errors.New("boom")
	chain := &Chain{
		Mode: ChainAll,
		Classifiers: []Classifier{
			staticClassifier(event.Chat, true, nil),
			staticClassifier("", false, boom),
			staticClassifier(event.Death, true, nil),
		},
	}

	result, err := chain.ClassifyLine(context.Background(), "line", testDate)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, result.Events)
}

func TestChain_ContinueOnError(t *testing.T) {
	boom := errors.New("boom")
	chain := &Chain{
		Mode: ChainContinueOnError,
		Classifiers: []Classifier{
			staticClassifier(event.Chat, true, nil),
			staticClassifier("", false, boom),
			staticClassifier(event.Death, true, nil),
		},
	}

	result, err := chain.ClassifyLine(context.Background(), "line", testDate)
	assert.ErrorIs(t, err, boom)
	assert.True(t, result.Matched)
	require.Len(t, result.Events, 2)
}

func TestChain_NilClassifiersSkipped(t *testing.T) {
	chain := &Chain{
		Mode:        ChainAll,
		Classifiers: []Classifier{nil, staticClassifier(event.Chat, true, nil), nil},
	}

	result, err := chain.ClassifyLine(context.Background(), "line", testDate)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Len(t, result.Events, 1)
}

func TestChain_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := &Chain{
		Mode:        ChainAll,
		Classifiers: []Classifier{staticClassifier(event.Chat, true, nil)},
	}

	_, err := chain.ClassifyLine(ctx, "line", testDate)
	assert.ErrorIs(t, err, context.Canceled)
}
