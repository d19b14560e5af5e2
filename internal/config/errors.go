package config

import "errors"

// Validation errors returned by [DeviceConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPeerConfigs indicates invalid outbound peer settings
	// (for example, zero request timeout or debounce delay).
	ErrInvalidPeerConfigs = errors.New("invalid peer configuration")
	// ErrInvalidDeviceConfigs indicates invalid device identity settings
	// (for example, an empty display name).
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
)
