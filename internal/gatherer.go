package internal

// ResultGatherer receives the phases of one comparison run in order.
type ResultGatherer interface {
	StartComparison(runID string)

	StartSpecialized()
	SpecializedResult(problemSize int, quality float64)
	FinishSpecialized()

	StartGeneral()
	StartProblemSize(problemSize int)
	GeneralResult(problemSize int, computationTime float64, quality float64)
	FinishProblemSize(problemSize int)

	FinishComparison()
}
