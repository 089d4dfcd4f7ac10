package domain

import "errors"

var (
	// ErrProviderNotFound indicates no adapter is registered for a provider id.
	ErrProviderNotFound = errors.New("provider not implemented")

	// ErrUnknownModel indicates the model is not in the catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrInvalidRequest indicates a malformed or inconsistent chat request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmailNotVerified indicates the user must verify their email first.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrInsufficientBalance indicates a pay-as-you-go user has no balance left.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrStreamOpen indicates the vendor stream could not be opened.
	ErrStreamOpen = errors.New("failed to open completion stream")

	// ErrUserNotFound indicates the user record does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrConversationNotFound indicates the conversation does not exist or is not owned by the user.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrMessageNotFound indicates the message record does not exist or is not owned by the user.
	ErrMessageNotFound = errors.New("message not found")
)
