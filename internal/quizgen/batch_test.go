package quizgen

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docTag = regexp.MustCompile(`doc-(\d+)`)

// taggedCompleter echoes the document tag into its questions so the
// evaluation prompt can be scored per document, whatever the interleaving.
type taggedCompleter struct {
	scores   map[string]int
	failDoc  string
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (c *taggedCompleter) Complete(ctx context.Context, _ string, prompt string) (string, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	tag := docTag.FindString(prompt)
	if strings.HasPrefix(prompt, evaluationInstructions) {
		return strconv.Itoa(c.scores[tag]), nil
	}
	if tag == c.failDoc {
		return "", errors.New("upstream down")
	}
	return fmt.Sprintf("Q: About %s?\nA: Yes", tag), nil
}

func TestRunBatch(t *testing.T) {
	completer := &taggedCompleter{scores: map[string]int{
		"doc-1": 9, "doc-2": 8, "doc-3": 7, "doc-4": 10,
	}}
	w := New(completer, DefaultConfig(), nil)

	items := []BatchItem{
		{Key: "a", DocumentText: "notes doc-1"},
		{Key: "b", DocumentText: "notes doc-2"},
		{Key: "c", DocumentText: "notes doc-3"},
		{Key: "d", DocumentText: "notes doc-4"},
	}
	results, err := RunBatch(context.Background(), w, items, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		tag := fmt.Sprintf("doc-%d", i+1)
		assert.Equal(t, items[i].Key, r.Key)
		assert.Equal(t, []QAPair{{Question: "About " + tag + "?", Answer: "Yes"}}, r.Result.Questions)
		assert.Equal(t, completer.scores[tag], r.Result.BestScore)
	}
	assert.LessOrEqual(t, completer.peak.Load(), int32(2))
}

func TestRunBatch_FirstFailureIsReturned(t *testing.T) {
	completer := &taggedCompleter{
		scores:  map[string]int{"doc-1": 9, "doc-2": 9},
		failDoc: "doc-2",
	}
	w := New(completer, DefaultConfig(), nil)

	_, err := RunBatch(context.Background(), w, []BatchItem{
		{Key: "ok", DocumentText: "doc-1"},
		{Key: "broken", DocumentText: "doc-2"},
	}, 0)
	require.Error(t, err)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "broken", batchErr.Key)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, PhaseGenerating, stageErr.Stage)
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := RunBatch(context.Background(), New(&taggedCompleter{}, DefaultConfig(), nil), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
