package handler

import (
	"net/http"

	"github.com/osse101/scrapworld/internal/booster"
)

// HandleOpenBooster opens a booster and grants its rewards
// @Summary Open booster
// @Description Opens the given booster, or the user's oldest unopened booster when booster_id is omitted
// @Tags booster
// @Produce json
// @Param user_id query string true "User ID"
// @Param booster_id query string false "Booster ID"
// @Success 200 {object} APIResponse{data=booster.OpenResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /booster/open [get]
func HandleOpenBooster(svc booster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		boosterID := GetOptionalQueryParam(r, "booster_id", "")

		res, err := svc.OpenBooster(r.Context(), userID, boosterID)
		if err != nil {
			respondServiceError(w, r, "Open booster", err)
			return
		}

		respondData(w, http.StatusOK, res)
	}
}

// HandleListBoosters lists every booster granted to a user
// @Summary List boosters
// @Tags booster
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} APIResponse{data=[]domain.Booster}
// @Failure 404 {object} APIResponse
// @Router /booster/{userID} [get]
func HandleListBoosters(svc booster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, "userID")
		if !ok {
			return
		}

		list, err := svc.ListBoosters(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List boosters", err)
			return
		}

		respondData(w, http.StatusOK, list)
	}
}
