package models

import "time"

// DaemonSetting holds the spawnd/listener settings of the tac_plus-ng
// daemon. Exactly one row is expected; it is seeded with defaults on first
// start.
//
// The IPv4Enabled/IPv6Enabled flags are stored but the compiler currently
// always renders the IPv4 listen block and never an IPv6 one, matching the
// daemon deployment this service manages.
type DaemonSetting struct {
	ID          uint64 `gorm:"primaryKey"`
	IPv4Enabled bool   `gorm:"default:true"`
	IPv4Address string `gorm:"size:255;default:'0.0.0.0'"`
	IPv4Port    int    `gorm:"default:49"`
	IPv6Enabled bool   `gorm:"default:false"`
	IPv6Address string `gorm:"size:255;default:'::'"`
	IPv6Port    int    `gorm:"default:49"`

	InstancesMin int `gorm:"default:1"`
	InstancesMax int `gorm:"default:10"`

	// Background is rendered lowercase as "background = yes|no".
	Background bool `gorm:"default:false"`

	AccessLogDestination         string `gorm:"size:512"`
	AuthenticationLogDestination string `gorm:"size:512"`
	AuthorizationLogDestination  string `gorm:"size:512"`
	AccountingLogDestination     string `gorm:"size:512"`

	// The backends are fixed to "mavis" in the current policy but stored so
	// a future change does not need a migration.
	LoginBackend string `gorm:"size:64;default:'mavis'"`
	UserBackend  string `gorm:"size:64;default:'mavis'"`
	PapBackend   string `gorm:"size:64;default:'mavis'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
