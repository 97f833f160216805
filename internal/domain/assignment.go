package domain

// Represents one delivery assignment on the dispatch board.
// The ID is assigned by the board on creation and never reused.
// AIHint stays empty until an optimization suggestion is attached; once set it is
// only ever replaced by another suggestion, never cleared.
type Assignment struct {
	ID          string
	Driver      string
	Route       string
	VehicleType VehicleType
	CargoType   CargoType
	AIHint      string
}

// Report whether an optimization hint has been attached.
func (a Assignment) Annotated() bool { return a.AIHint != "" }
