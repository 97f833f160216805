package dto

type LicenseResponse struct {
	LicenseClass     string   `json:"license_class"`
	EligibleVehicles []string `json:"eligible_vehicles"`
}

type ListLicensesResponse struct {
	Licenses []LicenseResponse `json:"licenses"`
}
