package models

import "time"

// Host represents a NAS device that authenticates against the TACACS+
// daemon. Only name, address and key are rendered into the configuration;
// the banners and description are stored for the administrative UI.
type Host struct {
	// ID is the unique identifier for the host.
	ID uint64 `gorm:"primaryKey"`
	// Name is the unique device name used in the generated host block.
	Name string `gorm:"unique;size:255;not null"`
	// IPv4Address is the client address or network, e.g. "10.0.0.1/32".
	IPv4Address string `gorm:"size:255"`
	// IPv6Address is the optional IPv6 client address.
	IPv6Address string `gorm:"size:255"`
	// SecretKey is the shared TACACS+ secret for this device.
	SecretKey string `gorm:"size:255;not null"`
	// WelcomeBanner is shown to users before login.
	WelcomeBanner string
	// RejectBanner is shown when a connection is rejected.
	RejectBanner string
	// MOTDBanner is the message of the day.
	MOTDBanner string
	// FailedAuthenticationBanner is shown after a failed login.
	FailedAuthenticationBanner string
	// Parent is the optional name of a host template this device inherits from.
	Parent string `gorm:"size:255"`
	// Description is free-form administrative text.
	Description string
	// CreatedAt is the timestamp when the host was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the host was last updated (managed by GORM).
	UpdatedAt time.Time
}
