package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/scrapworld/internal/staking"
)

// StakeRequest locks scrap into a new stake
type StakeRequest struct {
	UserID string  `json:"user_id" validate:"required,notblank"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

// HandleStake deposits scrap into a stake
// @Summary Stake scrap
// @Tags staking
// @Accept json
// @Produce json
// @Param request body StakeRequest true "Stake details"
// @Success 200 {object} APIResponse{data=staking.StakeResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /stake [post]
func HandleStake(svc staking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StakeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Stake"); err != nil {
			return
		}

		res, err := svc.Stake(r.Context(), req.UserID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Stake", err)
			return
		}

		respondData(w, http.StatusOK, res)
	}
}

// HandleListStakes lists a user's stakes with their projected yield.
// The user id comes from the {userID} path segment or the user_id query parameter.
// @Summary List stakes
// @Tags staking
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} APIResponse{data=staking.StakeSummary}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /staking/{userID} [get]
func HandleListStakes(svc staking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if userID == "" {
			var ok bool
			if userID, ok = GetQueryParam(r, w, "user_id"); !ok {
				return
			}
		}

		summary, err := svc.ListStakes(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List stakes", err)
			return
		}

		respondData(w, http.StatusOK, summary)
	}
}
