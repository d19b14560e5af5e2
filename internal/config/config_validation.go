// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the runtime view is validated by
// [DeviceConfig.validate] instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DeviceConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Peers.RequestTimeout == 0 || cfg.Peers.SyncDebounce == 0 {
		return ErrInvalidPeerConfigs
	}

	if cfg.Device.DisplayName == "" {
		return ErrInvalidDeviceConfigs
	}

	return nil
}
