// Package error defines domain-specific errors for the Khatiyan calculator.
package error

import "errors"

// Calculation domain errors.
var (
	// ErrInvalidTotalArea is returned when the khatiyan area is not a positive number.
	ErrInvalidTotalArea = errors.New("total land area must be greater than zero")

	// ErrNoOwners is returned when a calculation is requested without owners.
	ErrNoOwners = errors.New("at least one owner is required")

	// ErrNegativeShare is returned when an owner's share has a negative tier.
	ErrNegativeShare = errors.New("share must not be negative")

	// ErrNegativeSoldAmount is returned when a selling owner has a negative sale amount.
	ErrNegativeSoldAmount = errors.New("sold amount must not be negative")

	// ErrNegativeTil is returned when a til count to decompose is negative.
	ErrNegativeTil = errors.New("til count must not be negative")

	// ErrTooManyOwners is returned when the owner list exceeds the configured limit.
	ErrTooManyOwners = errors.New("too many owners")

	// ErrShareTooLarge is returned when a share or the sum of shares does not fit in a til count.
	ErrShareTooLarge = errors.New("share is too large")

	// ErrInvalidSoldAmount is returned when a sale amount is not a finite number.
	ErrInvalidSoldAmount = errors.New("sold amount must be a finite number")

	// ErrOwnerNotFound is returned when a worksheet does not contain the owner.
	ErrOwnerNotFound = errors.New("owner not found")
)

// CalculationErrorCode defines error codes for calculation errors.
// Format: KHT-XXYYYY where XX is category and YYYY is specific error.
type CalculationErrorCode string

const (
	// Blocking input errors (01XXXX)
	ErrCodeInvalidTotalArea   CalculationErrorCode = "KHT-010001"
	ErrCodeNoOwners           CalculationErrorCode = "KHT-010002"
	ErrCodeNegativeShare      CalculationErrorCode = "KHT-010003"
	ErrCodeNegativeSoldAmount CalculationErrorCode = "KHT-010004"
	ErrCodeNegativeTil        CalculationErrorCode = "KHT-010005"
	ErrCodeTooManyOwners      CalculationErrorCode = "KHT-010006"
	ErrCodeInvalidRequest     CalculationErrorCode = "KHT-010007"
	ErrCodeShareTooLarge      CalculationErrorCode = "KHT-010008"
	ErrCodeInvalidSoldAmount  CalculationErrorCode = "KHT-010009"

	// Worksheet errors (02XXXX)
	ErrCodeOwnerNotFound CalculationErrorCode = "KHT-020001"

	// Advisory warnings (03XXXX)
	ErrCodeShareSumExceeded CalculationErrorCode = "KHT-030001"
)

// CalculationError represents a calculation error with code and message.
type CalculationError struct {
	Code    CalculationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculationError creates a new CalculationError with the given code and message.
func NewCalculationError(code CalculationErrorCode, message string, err error) *CalculationError {
	return &CalculationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// bengaliMessages are the user-facing texts shown by the khatiyan calculator.
var bengaliMessages = map[CalculationErrorCode]string{
	ErrCodeInvalidTotalArea:   "দয়া করে খতিয়ানের মোট জমি সঠিকভাবে লিখুন।",
	ErrCodeNoOwners:           "দয়া করে কমপক্ষে একজন মালিক যোগ করুন।",
	ErrCodeNegativeShare:      "অংশের মান ঋণাত্মক হতে পারে না।",
	ErrCodeNegativeSoldAmount: "বিক্রিত পরিমাণ ঋণাত্মক হতে পারে না।",
	ErrCodeNegativeTil:        "তিলের মান ঋণাত্মক হতে পারে না।",
	ErrCodeTooManyOwners:      "মালিকের সংখ্যা অনুমোদিত সীমা ছাড়িয়ে গেছে।",
	ErrCodeShareTooLarge:      "অংশের মান অনেক বড়।",
	ErrCodeInvalidSoldAmount:  "বিক্রিত পরিমাণ সঠিক নয়।",
	ErrCodeOwnerNotFound:      "মালিক খুঁজে পাওয়া যায়নি।",
}

// UserMessage returns the Bengali message for code, or fallback when none exists.
func UserMessage(code CalculationErrorCode, fallback string) string {
	if msg, ok := bengaliMessages[code]; ok {
		return msg
	}
	return fallback
}
