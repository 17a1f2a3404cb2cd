package runner

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sshravan91/fundscope/internal/model"
)

func TestRunAllPartitionsOutcomes(t *testing.T) {
	process := func(ctx context.Context, id model.Identifier) model.Outcome {
		key := id.Primary()
		if strings.HasPrefix(key, "bad") {
			return model.Failure(key)
		}
		values := model.ValueMap{}
		values.SetString(model.FieldFund, key)
		return model.Success(key, values)
	}

	ids := []model.Identifier{"F1", "bad1", "F2:slug", "F3", "bad2"}
	res := New(process, 4).RunAll(context.Background(), ids)

	require.Len(t, res.Values, 3)
	require.Len(t, res.NoData, 2)

	var got []string
	for _, vm := range res.Values {
		got = append(got, vm.Text(model.FieldFund))
	}
	assert.ElementsMatch(t, []string{"F1", "F2", "F3"}, got)
	assert.ElementsMatch(t, []string{"bad1", "bad2"}, res.NoData)
}

func TestRunAllEveryInputAccountedFor(t *testing.T) {
	var calls atomic.Int64
	process := func(ctx context.Context, id model.Identifier) model.Outcome {
		calls.Add(1)
		return model.Failure(id.Primary())
	}

	ids := make([]model.Identifier, 50)
	for i := range ids {
		ids[i] = model.Identifier(strings.Repeat("f", i+1))
	}

	res := New(process, 8).RunAll(context.Background(), ids)
	assert.Equal(t, int64(50), calls.Load())
	assert.Len(t, res.NoData, 50)
	assert.Empty(t, res.Values)
}

func TestRunAllBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0

	process := func(ctx context.Context, id model.Identifier) model.Outcome {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
		return model.Failure(id.Primary())
	}

	ids := make([]model.Identifier, 40)
	for i := range ids {
		ids[i] = "F"
	}

	New(process, 3).RunAll(context.Background(), ids)
	assert.LessOrEqual(t, peak, 3)
}

func TestRunAllEmptyInput(t *testing.T) {
	process := func(ctx context.Context, id model.Identifier) model.Outcome {
		t.Fatal("process must not be called")
		return model.Outcome{}
	}

	res := New(process, 4).RunAll(context.Background(), nil)
	assert.Empty(t, res.Values)
	assert.Empty(t, res.NoData)
}

func TestNewDefaultsWorkers(t *testing.T) {
	r := New(nil, 0)
	assert.Equal(t, DefaultWorkers, r.workers)
	r = New(nil, -5)
	assert.Equal(t, DefaultWorkers, r.workers)
}
