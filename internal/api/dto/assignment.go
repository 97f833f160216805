package dto

type AssignmentResponse struct {
	ID          string `json:"id"`
	Driver      string `json:"driver"`
	Route       string `json:"route"`
	VehicleType string `json:"vehicle_type"`
	CargoType   string `json:"cargo_type"`
	AIHint      string `json:"ai_hint"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

type AddAssignmentRequest struct {
	Driver       string `json:"driver"`
	Route        string `json:"route"`
	LicenseClass string `json:"license_class"`
	VehicleType  string `json:"vehicle_type"`
	CargoType    string `json:"cargo_type"`
}

// Drag-drop result: the moved card takes the target card's slot.
type ReorderRequest struct {
	MovedID  string `json:"moved_id"`
	TargetID string `json:"target_id"`
}

type NotifyResponse struct {
	Message string `json:"message"`
}

type MapLinkResponse struct {
	URL string `json:"url"`
}
