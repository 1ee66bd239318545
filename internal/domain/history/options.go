package history

// ListOptions provides filtering options for listing history entries.
type ListOptions struct {
	Source  Source
	Outcome Outcome
	Limit   int
}
