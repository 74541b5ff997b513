package handler

import (
	"net/http"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/fusion"
	"github.com/osse101/scrapworld/internal/logger"
)

// FuseStickerRequest applies a sticker from the user's inventory to a token
type FuseStickerRequest struct {
	TokenID   string `json:"token_id" validate:"required,notblank"`
	StickerID string `json:"sticker_id" validate:"required,notblank"`
	UserID    string `json:"user_id" validate:"required,notblank"`
}

// FuseTokensRequest fuses two tokens into a new one
type FuseTokensRequest struct {
	UserID string `json:"user_id" validate:"required,notblank"`
	NFT1ID string `json:"nft1_id" validate:"required,notblank"`
	NFT2ID string `json:"nft2_id" validate:"required,notblank,nefield=NFT1ID"`
}

// TokenFusionResponse carries the token created by a token fusion
type TokenFusionResponse struct {
	Message   string        `json:"message"`
	ResultNFT *domain.Token `json:"result_nft"`
}

// HandleFuseSticker consumes one sticker and appends it to the token
// @Summary Fuse sticker
// @Description Consumes one sticker from the user's inventory and appends it to the token's stickers
// @Tags fusion
// @Accept json
// @Produce json
// @Param request body FuseStickerRequest true "Fusion details"
// @Success 200 {object} APIResponse{data=domain.Token}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /fusion [post]
func HandleFuseSticker(svc fusion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FuseStickerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Fuse sticker"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()),
			"user_id", req.UserID, "token_id", req.TokenID, "sticker_id", req.StickerID)

		tok, err := svc.FuseSticker(r.Context(), req.UserID, req.TokenID, req.StickerID)
		if err != nil {
			respondServiceError(w, r, "Fuse sticker", err)
			return
		}

		respondData(w, http.StatusOK, tok)
	}
}

// HandleFuseTokens fuses two owned tokens into a new token
// @Summary Fuse tokens
// @Description Creates "<A> + <B>" owned by the user. Parents are kept unchanged.
// @Tags fusion
// @Accept json
// @Produce json
// @Param request body FuseTokensRequest true "Fusion details"
// @Success 200 {object} APIResponse{data=TokenFusionResponse}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /fusion/tokens [post]
func HandleFuseTokens(svc fusion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FuseTokensRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Fuse tokens"); err != nil {
			return
		}

		tok, err := svc.FuseTokens(r.Context(), req.UserID, req.NFT1ID, req.NFT2ID)
		if err != nil {
			respondServiceError(w, r, "Fuse tokens", err)
			return
		}

		respondData(w, http.StatusOK, TokenFusionResponse{Message: MsgTokensFusedSuccess, ResultNFT: tok})
	}
}
