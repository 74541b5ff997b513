package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgStickerNotFound = "sticker not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient balance"

	// Booster errors
	ErrMsgBoosterNotFound = "booster not found or already opened"

	// Token errors
	ErrMsgTokenNotFound = "token not found or not owned by user"

	// Quest errors
	ErrMsgQuestNotFound         = "quest not found"
	ErrMsgQuestAlreadyCompleted = "quest already completed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound class
	ErrUserNotFound         = errors.New(ErrMsgUserNotFound)
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrStickerNotFound      = errors.New(ErrMsgStickerNotFound)
	ErrBoosterNotFound      = errors.New(ErrMsgBoosterNotFound)
	ErrTokenNotFound        = errors.New(ErrMsgTokenNotFound)
	ErrQuestNotFound        = errors.New(ErrMsgQuestNotFound)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// DomainConflict class
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrQuestAlreadyCompleted = errors.New(ErrMsgQuestAlreadyCompleted)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
