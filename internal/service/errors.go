package service

import "errors"

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrDeviceNotFound  = errors.New("device not found")

	// ErrInvalidThreshold reports a group creation with a threshold below 2
	// or above the number of currently known devices.
	ErrInvalidThreshold = errors.New("invalid group threshold")

	// ErrGroupLocked reports a decrypt attempt before the group's secret has
	// been reconstructed.
	ErrGroupLocked = errors.New("group is locked")

	// ErrPasswordNotRevealed reports a visibility toggle on an account whose
	// password has not been decrypted this session.
	ErrPasswordNotRevealed = errors.New("password not revealed")

	// ErrMalformedEnvelope reports an inbound peer message missing the
	// fields its kind requires.
	ErrMalformedEnvelope = errors.New("malformed peer envelope")
)
