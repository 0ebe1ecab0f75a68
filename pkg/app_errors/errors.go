package apperrors

import "errors"

var (
	// 儲存層
	ErrStorageFailure = errors.New("storage failure")
	ErrKeyNotFound    = errors.New("key not found")

	// 票券帳本
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidPackage      = errors.New("invalid ticket package")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrCooldownActive      = errors.New("ad cooldown active")

	// 訂閱
	ErrInvalidPlan = errors.New("invalid subscription plan")

	ErrProRequired = errors.New("pro subscription required")

	// 廣告
	ErrAdNotCompleted = errors.New("ad not completed")
	ErrAdUnavailable  = errors.New("ad provider unavailable")

	// 生圖
	ErrProviderFailure     = errors.New("image provider failure")
	ErrStyleNotAvailable   = errors.New("style not available for plan")
	ErrDreamNotFound       = errors.New("dream not found")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
