package service

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
)

// Identity carries the signals a registration or login attempt presents:
// email, network address, user agent, and the device fingerprint snapshot.
type Identity struct {
	Email     string
	IPAddress string
	UserAgent string
	Device    models.DeviceInfo
}

// BlockRule decides whether an identity matches one stored block record.
// Rules are deliberately independent so the matching policy can be tuned
// and tested apart from the lookup mechanism.
type BlockRule interface {
	Name() string
	Matches(identity Identity, record *models.BlockedUser) bool
}

// emailRule matches on email alone.
type emailRule struct{}

func (emailRule) Name() string { return "email" }

func (emailRule) Matches(identity Identity, record *models.BlockedUser) bool {
	return identity.Email != "" && identity.Email == record.Email
}

// ipRule matches on IP address alone.
type ipRule struct{}

func (ipRule) Name() string { return "ip_address" }

func (ipRule) Matches(identity Identity, record *models.BlockedUser) bool {
	return identity.IPAddress != "" && identity.IPAddress == record.IPAddress
}

// hardwareIDRule matches on the client-reported hardware identifier alone.
type hardwareIDRule struct{}

func (hardwareIDRule) Name() string { return "hardware_id" }

func (hardwareIDRule) Matches(identity Identity, record *models.BlockedUser) bool {
	return identity.Device.HardwareID != "" &&
		identity.Device.HardwareID == record.DeviceInfo.HardwareID
}

// fingerprintRule matches only when GPU renderer, GPU vendor, screen
// resolution, and core count all agree with one record. Requiring the full
// conjunction keeps this weaker signal from blocking unrelated devices that
// happen to share one attribute.
type fingerprintRule struct{}

func (fingerprintRule) Name() string { return "fingerprint" }

func (fingerprintRule) Matches(identity Identity, record *models.BlockedUser) bool {
	device := identity.Device
	stored := record.DeviceInfo

	if device.Hardware.GPU.Renderer == "" || device.Hardware.GPU.Vendor == "" ||
		device.ScreenResolution == "" || device.Hardware.Cores == 0 {
		return false
	}

	return device.Hardware.GPU.Renderer == stored.Hardware.GPU.Renderer &&
		device.Hardware.GPU.Vendor == stored.Hardware.GPU.Vendor &&
		device.ScreenResolution == stored.ScreenResolution &&
		device.Hardware.Cores == stored.Hardware.Cores
}

// DefaultBlockRules is the production matching policy: OR across email, IP,
// hardware identifier, and the fingerprint conjunction.
func DefaultBlockRules() []BlockRule {
	return []BlockRule{
		emailRule{},
		ipRule{},
		hardwareIDRule{},
		fingerprintRule{},
	}
}

// BlocklistMatcher checks identities against stored block records.
type BlocklistMatcher struct {
	repo  repository.BlocklistRepository
	rules []BlockRule
}

// NewBlocklistMatcher creates a matcher with the given rule set.
func NewBlocklistMatcher(repo repository.BlocklistRepository, rules []BlockRule) *BlocklistMatcher {
	return &BlocklistMatcher{repo: repo, rules: rules}
}

// Match returns the first block record any rule matches, or nil when the
// identity is not blocked.
func (m *BlocklistMatcher) Match(ctx context.Context, identity Identity) (*models.BlockedUser, string, error) {
	records, err := m.repo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load blocklist: %w", err)
	}

	for i := range records {
		record := &records[i]
		for _, rule := range m.rules {
			if rule.Matches(identity, record) {
				return record, rule.Name(), nil
			}
		}
	}

	return nil, "", nil
}

// IsBlocked reports whether any rule matches the identity.
func (m *BlocklistMatcher) IsBlocked(ctx context.Context, identity Identity) (bool, error) {
	record, _, err := m.Match(ctx, identity)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}
