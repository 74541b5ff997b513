package domain

import "time"

// Fusion kinds recorded in the fusion log
const (
	FusionKindSticker = "sticker"
	FusionKindToken   = "token"
)

// FusionLog is an append-only audit record of a fusion event
type FusionLog struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	UserID        string    `json:"user_id"`
	TokenID       string    `json:"token_id"`
	StickerID     string    `json:"sticker_id,omitempty"`
	SecondTokenID string    `json:"second_token_id,omitempty"`
	ResultTokenID string    `json:"result_token_id,omitempty"`
	Date          time.Time `json:"date"`
}
