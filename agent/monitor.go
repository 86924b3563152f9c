package agent

// ProgressFunc receives human-readable phase updates during a search.
// Callbacks are invoked synchronously from the search goroutine and must
// return quickly.
type ProgressFunc func(message string)

func nopProgress(string) {}
