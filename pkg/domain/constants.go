package domain

const (
	// ContentTypeText is the content type used for stored results.
	ContentTypeText = "text/plain"

	// NoSolutionText is the literal stored when a system has no determinate solution.
	NoSolutionText = "No solution found"
)
