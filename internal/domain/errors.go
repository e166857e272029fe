package domain

import "errors"

// Sentinel errors returned by repositories and services. Handlers map these
// onto the HTTP error taxonomy; callers branch with errors.Is.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrTemplateNotFound = errors.New("ticket template not found")
	ErrTicketNotFound   = errors.New("ticket not found")

	// ErrDuplicateWallet signals the wallet uniqueness constraint fired on
	// insert; the identity resolver treats it as "re-fetch existing row".
	ErrDuplicateWallet = errors.New("wallet address already registered")

	// ErrDuplicateMint signals a tokenId that already exists as a ticket.
	// It stays rejected on every retry.
	ErrDuplicateMint = errors.New("token already minted")

	// ErrQRHashCollision signals two tickets computed the same admission
	// credential. This is a fatal data-integrity failure and must never be
	// silently swallowed or retried.
	ErrQRHashCollision = errors.New("qr hash collision")

	ErrSupplyExhausted   = errors.New("template supply exhausted")
	ErrAlreadyCheckedIn  = errors.New("ticket already checked in")
	ErrTerminalStatus    = errors.New("ticket is in a terminal status")
	ErrSoulboundTransfer = errors.New("soulbound ticket cannot be transferred")

	ErrInvalidWallet = errors.New("invalid wallet address")
	ErrInvalidTxHash = errors.New("invalid transaction hash")
)
