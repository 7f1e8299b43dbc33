package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole controls admin privileges.
type AdminRole string

const (
	AdminRoleSuper   AdminRole = "super"
	AdminRoleRegular AdminRole = "regular"
)

// Admin is an administrator account, separate from the user population.
type Admin struct {
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         AdminRole  `json:"role" db:"role"`
	ID           uuid.UUID  `json:"id" db:"id"`
}

// PublicAdmin is the sanitized admin representation returned by the API.
type PublicAdmin struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     AdminRole `json:"role"`
}

// Public strips credentials from an admin.
func (a *Admin) Public() PublicAdmin {
	return PublicAdmin{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// GPUInfo identifies the graphics adapter reported by a device.
type GPUInfo struct {
	Renderer string `json:"renderer,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
}

// HardwareInfo carries the hardware portion of a device fingerprint.
type HardwareInfo struct {
	GPU   GPUInfo `json:"gpu"`
	Cores int     `json:"cores,omitempty"`
}

// DeviceInfo is an opaque device-fingerprint snapshot collected by the
// client. The server only stores and compares it; it never interprets
// individual fields beyond equality.
type DeviceInfo struct {
	Browser          string       `json:"browser,omitempty"`
	OS               string       `json:"os,omitempty"`
	Language         string       `json:"language,omitempty"`
	Vendor           string       `json:"vendor,omitempty"`
	ScreenResolution string       `json:"screenResolution,omitempty"`
	Timezone         string       `json:"timezone,omitempty"`
	HardwareID       string       `json:"hardwareId,omitempty"`
	NetworkDevices   []string     `json:"networkDevices,omitempty"`
	Hardware         HardwareInfo `json:"hardwareInfo"`
	ColorDepth       int          `json:"colorDepth,omitempty"`
}

// BlockedUser is a block record keyed primarily by email, carrying the
// identity signals captured when the block was created.
type BlockedUser struct {
	BlockedAt  time.Time  `json:"blockedAt" db:"blocked_at"`
	Email      string     `json:"email" db:"email"`
	Reason     string     `json:"reason,omitempty" db:"reason"`
	IPAddress  string     `json:"ipAddress,omitempty" db:"ip_address"`
	UserAgent  string     `json:"userAgent,omitempty" db:"user_agent"`
	DeviceInfo DeviceInfo `json:"deviceInfo" db:"device_info"`
	ID         uuid.UUID  `json:"id" db:"id"`
}
