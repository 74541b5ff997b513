package handler

import (
	"net/http"

	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/user"
)

// RegisterUserRequest registers a wallet
type RegisterUserRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,notblank,max=128,excludesall=\x00\n\r\t "`
}

// HandleRegisterUser creates the user for a wallet or returns the existing one
// @Summary Register user
// @Description Create a user for a wallet address. Registering an existing wallet returns the stored user.
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Wallet details"
// @Success 200 {object} APIResponse{data=domain.User}
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /user/register [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.Register(r.Context(), req.WalletAddress)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", u.ID)
		respondData(w, http.StatusOK, u)
	}
}

// HandleGetUser returns a user's progress and balance
// @Summary Get user
// @Tags user
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} APIResponse{data=domain.User}
// @Failure 404 {object} APIResponse
// @Router /user/{userID} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, "userID")
		if !ok {
			return
		}

		u, err := svc.Get(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}

		respondData(w, http.StatusOK, u)
	}
}

// HandleGetWalletItems lists the inventory of a wallet's owner
// @Summary List wallet items
// @Description Inventory rows of the wallet's owner, including items held at zero
// @Tags user
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} APIResponse{data=[]domain.InventoryItem}
// @Failure 404 {object} APIResponse
// @Router /wallet/{wallet}/items [get]
func HandleGetWalletItems(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallet, ok := GetPathParam(r, w, "wallet")
		if !ok {
			return
		}

		items, err := svc.GetItemsByWallet(r.Context(), wallet)
		if err != nil {
			respondServiceError(w, r, "Get wallet items", err)
			return
		}

		respondData(w, http.StatusOK, items)
	}
}
