package ports

// Supplies one route optimization suggestion per call.
// Implementations may return the same suggestion on consecutive calls.
type HintSource func() string
