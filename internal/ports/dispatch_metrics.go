package ports

// Observability hooks for board operations.
type DispatchMetrics interface {
	// Count one operation with its outcome (ok, invalid, not_found, error).
	ObserveOperation(op string, result string)
	SetBoardSize(n int)
}
