package compare_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/programme-lv/bitterlesson/api"
	"github.com/programme-lv/bitterlesson/internal/compare"
	"github.com/programme-lv/bitterlesson/internal/method"
)

type event struct {
	name    string
	size    int
	time    float64
	quality float64
}

// recorder captures every gatherer callback in order.
type recorder struct {
	runID  string
	events []event
}

func (r *recorder) StartComparison(runID string) {
	r.runID = runID
	r.events = append(r.events, event{name: "start"})
}

func (r *recorder) StartSpecialized() {
	r.events = append(r.events, event{name: "spec-start"})
}

func (r *recorder) SpecializedResult(problemSize int, quality float64) {
	r.events = append(r.events, event{name: "spec-result", size: problemSize, quality: quality})
}

func (r *recorder) FinishSpecialized() {
	r.events = append(r.events, event{name: "spec-finish"})
}

func (r *recorder) StartGeneral() {
	r.events = append(r.events, event{name: "gen-start"})
}

func (r *recorder) StartProblemSize(problemSize int) {
	r.events = append(r.events, event{name: "size-start", size: problemSize})
}

func (r *recorder) GeneralResult(problemSize int, computationTime float64, quality float64) {
	r.events = append(r.events, event{
		name: "gen-result", size: problemSize, time: computationTime, quality: quality,
	})
}

func (r *recorder) FinishProblemSize(problemSize int) {
	r.events = append(r.events, event{name: "size-finish", size: problemSize})
}

func (r *recorder) FinishComparison() {
	r.events = append(r.events, event{name: "finish"})
}

func TestRunEmitsPhasesInOrder(t *testing.T) {
	scn := api.Scenario{
		ProblemSizes:     []int{100, 1000},
		ComputationTimes: []float64{0.05, 0.1},
	}

	rec := &recorder{}
	results, err := compare.Run(rec, scn)
	require.NoError(t, err)
	require.NotEmpty(t, rec.runID)

	want := []event{
		{name: "start"},
		{name: "spec-start"},
		{name: "spec-result", size: 100, quality: 0.7},
		{name: "spec-result", size: 1000, quality: 0.7},
		{name: "spec-finish"},
		{name: "gen-start"},
		{name: "size-start", size: 100},
		{name: "gen-result", size: 100, time: 0.05, quality: 0.5},
		{name: "gen-result", size: 100, time: 0.1, quality: 1.0},
		{name: "size-finish", size: 100},
		{name: "size-start", size: 1000},
		{name: "gen-result", size: 1000, time: 0.05, quality: 0.05},
		{name: "gen-result", size: 1000, time: 0.1, quality: 0.1},
		{name: "size-finish", size: 1000},
		{name: "finish"},
	}
	require.Equal(t, len(want), len(rec.events))
	for i, w := range want {
		require.Equal(t, w.name, rec.events[i].name, "event %d", i)
		require.Equal(t, w.size, rec.events[i].size, "event %d", i)
		require.InDelta(t, w.time, rec.events[i].time, 1e-9, "event %d", i)
		require.InDelta(t, w.quality, rec.events[i].quality, 1e-9, "event %d", i)
	}

	require.Len(t, results, 4)
	require.Equal(t, 100, results[0].ProblemSize)
	require.InDelta(t, 0.05, results[0].ComputationTime, 1e-9)
	require.InDelta(t, 0.5, results[0].Quality, 1e-9)
	require.Equal(t, 1000, results[3].ProblemSize)
	require.InDelta(t, 0.1, results[3].ComputationTime, 1e-9)
	require.InDelta(t, 0.1, results[3].Quality, 1e-9)
}

func TestRunPropagatesScorerError(t *testing.T) {
	scn := api.Scenario{
		ProblemSizes:     []int{0},
		ComputationTimes: []float64{0.1},
	}

	rec := &recorder{}
	results, err := compare.Run(rec, scn)
	require.ErrorIs(t, err, method.ErrNonPositiveProblemSize)
	require.Nil(t, results)

	// the run aborts before the size finishes
	last := rec.events[len(rec.events)-1]
	require.Equal(t, "size-start", last.name)
}
