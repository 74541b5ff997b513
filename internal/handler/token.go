package handler

import (
	"net/http"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/token"
)

// MintTokenRequest creates a token
type MintTokenRequest struct {
	Name       string                 `json:"name" validate:"required,notblank,min=1,max=200"`
	ImageURL   string                 `json:"image_url" validate:"required,url"`
	OwnerID    string                 `json:"owner_id" validate:"required,notblank"`
	Attributes domain.TokenAttributes `json:"attributes"`
}

// AttachStickerRequest appends a sticker to a token's metadata
type AttachStickerRequest struct {
	StickerID string `json:"sticker_id" validate:"required,notblank"`
}

// FusionResponse carries a message and the updated token
type FusionResponse struct {
	Message string        `json:"message"`
	Token   *domain.Token `json:"token"`
}

// HandleMintToken mints a token for an existing user
// @Summary Mint token
// @Description Attributes are a flat object: "stickers" is a list of item ids, every other key is a scalar trait
// @Tags token
// @Accept json
// @Produce json
// @Param request body MintTokenRequest true "Token details"
// @Success 201 {object} APIResponse{data=domain.Token}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /token [post]
func HandleMintToken(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintTokenRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Mint token"); err != nil {
			return
		}

		tok, err := svc.Mint(r.Context(), token.MintRequest{
			Name:       req.Name,
			ImageURL:   req.ImageURL,
			OwnerID:    req.OwnerID,
			Attributes: req.Attributes,
		})
		if err != nil {
			respondServiceError(w, r, "Mint token", err)
			return
		}

		respondData(w, http.StatusCreated, tok)
	}
}

// HandleGetToken returns a token's metadata
// @Summary Get token
// @Tags token
// @Produce json
// @Param tokenID path string true "Token ID"
// @Success 200 {object} APIResponse{data=domain.Token}
// @Failure 404 {object} APIResponse
// @Router /token/{tokenID} [get]
func HandleGetToken(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenID, ok := GetPathParam(r, w, "tokenID")
		if !ok {
			return
		}

		tok, err := svc.Get(r.Context(), tokenID)
		if err != nil {
			respondServiceError(w, r, "Get token", err)
			return
		}

		respondData(w, http.StatusOK, tok)
	}
}

// HandleAttachSticker appends a sticker to the token without consuming inventory
// @Summary Attach sticker
// @Tags token
// @Accept json
// @Produce json
// @Param tokenID path string true "Token ID"
// @Param request body AttachStickerRequest true "Sticker"
// @Success 200 {object} APIResponse{data=FusionResponse}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /token/{tokenID} [patch]
func HandleAttachSticker(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenID, ok := GetPathParam(r, w, "tokenID")
		if !ok {
			return
		}

		var req AttachStickerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Attach sticker"); err != nil {
			return
		}

		tok, err := svc.AttachSticker(r.Context(), tokenID, req.StickerID)
		if err != nil {
			respondServiceError(w, r, "Attach sticker", err)
			return
		}

		respondData(w, http.StatusOK, FusionResponse{Message: MsgStickerAttachedSuccess, Token: tok})
	}
}
