package handlers

import (
	"dispatch-board-service/internal/api/dto"
	"dispatch-board-service/internal/domain"
	"net/http"
)

// Licenses lists each license class with the vehicle types it permits, so the
// board can offer only eligible vehicles for the chosen license.
func Licenses(w http.ResponseWriter, r *http.Request) {
	classes := domain.LicenseClasses()
	res := dto.ListLicensesResponse{Licenses: make([]dto.LicenseResponse, 0, len(classes))}

	for _, lc := range classes {
		vs, _ := domain.EligibleVehicles(lc)
		names := make([]string, 0, len(vs))
		for _, v := range vs {
			names = append(names, string(v))
		}
		res.Licenses = append(res.Licenses, dto.LicenseResponse{
			LicenseClass:     string(lc),
			EligibleVehicles: names,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
