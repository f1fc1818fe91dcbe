package compare

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/programme-lv/bitterlesson/api"
	"github.com/programme-lv/bitterlesson/internal"
	"github.com/programme-lv/bitterlesson/internal/method"
)

// Run walks the scenario in fixed order: a specialized pass over every
// problem size, then a general pass over the cross product of problem sizes
// and computation times. Every phase is reported to gath; the scored general
// results are returned in emission order.
func Run(gath internal.ResultGatherer, scn api.Scenario) ([]api.MethodResult, error) {
	runID := uuid.NewString()
	slog.Debug("starting comparison", "run_id", runID,
		"problem_sizes", len(scn.ProblemSizes),
		"computation_times", len(scn.ComputationTimes))

	gath.StartComparison(runID)

	gath.StartSpecialized()
	for _, size := range scn.ProblemSizes {
		gath.SpecializedResult(size, method.Specialized(size))
	}
	gath.FinishSpecialized()

	results := make([]api.MethodResult, 0, len(scn.ProblemSizes)*len(scn.ComputationTimes))

	gath.StartGeneral()
	for _, size := range scn.ProblemSizes {
		gath.StartProblemSize(size)
		for _, compTime := range scn.ComputationTimes {
			quality, err := method.General(size, compTime)
			if err != nil {
				return nil, fmt.Errorf("general method on problem size %d: %w", size, err)
			}
			gath.GeneralResult(size, compTime, quality)
			results = append(results, api.MethodResult{
				ProblemSize:     size,
				ComputationTime: compTime,
				Quality:         quality,
			})
		}
		gath.FinishProblemSize(size)
	}

	gath.FinishComparison()

	slog.Debug("comparison finished", "run_id", runID, "results", len(results))
	return results, nil
}
