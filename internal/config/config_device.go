package config

import (
	"fmt"
	"time"
)

// DeviceConfig is the top-level replica configuration assembled from
// [StructuredConfig].
type DeviceConfig struct {
	// Device contains the local replica identity settings.
	Device Device
	// Storage contains local persistence settings.
	Storage Storage
	// Server contains the inbound peer-message server settings.
	Server Server
	// Peers contains outbound delivery settings.
	Peers Peers
	// App contains application-level settings.
	App App
}

// GetDeviceConfig builds and validates the replica config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the replica runtime, and validates the resulting [DeviceConfig].
func GetDeviceConfig() (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := &DeviceConfig{
		Device: Device{
			DisplayName: cfg.Device.DisplayName,
		},
		Storage: Storage{
			DB: DB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Peers: Peers{
			Addresses:      cfg.Peers.Addresses,
			RequestTimeout: cfg.Peers.RequestTimeout,
			SyncDebounce:   cfg.Peers.SyncDebounce,
		},
		App: App{Version: cfg.App.Version},
	}
	deviceCfg.applyDefaults()

	return deviceCfg, deviceCfg.validate()
}

func (cfg *DeviceConfig) applyDefaults() {
	if cfg.Device.DisplayName == "" {
		cfg.Device.DisplayName = "New device"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Peers.RequestTimeout == 0 {
		cfg.Peers.RequestTimeout = 15 * time.Second
	}
	if cfg.Peers.SyncDebounce == 0 {
		cfg.Peers.SyncDebounce = 2 * time.Second
	}
}
