package api

// Scenario holds the inputs of one comparison run: the problem sizes both
// methods are scored on and the computation time budgets granted to the
// general method.
type Scenario struct {
	ProblemSizes     []int     `json:"problem_sizes"`
	ComputationTimes []float64 `json:"computation_times"`
}

// MethodResult is a single scored data point of the general method.
type MethodResult struct {
	ProblemSize     int     `json:"problem_size"`
	ComputationTime float64 `json:"computation_time"`
	Quality         float64 `json:"quality"`
}
