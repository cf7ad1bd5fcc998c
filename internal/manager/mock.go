package manager

import "context"

// MockRunner implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
type MockRunner struct {
	ListInstalledFunc func(ctx context.Context) ([]Package, error)
	ListOutdatedFunc  func(ctx context.Context) ([]Package, error)
	UpgradeFunc       func(ctx context.Context, name string) error
	UpgradeSelfFunc   func(ctx context.Context) error
	selfName          string
}

// NewMockRunner creates a new MockRunner for a manager with the given self name
func NewMockRunner(selfName string) *MockRunner {
	return &MockRunner{
		selfName: selfName,
	}
}

// ListInstalled returns every installed package in listing order
func (m *MockRunner) ListInstalled(ctx context.Context) ([]Package, error) {
	if m.ListInstalledFunc != nil {
		return m.ListInstalledFunc(ctx)
	}
	return nil, nil
}

// ListOutdated returns the packages the manager reports as outdated
func (m *MockRunner) ListOutdated(ctx context.Context) ([]Package, error) {
	if m.ListOutdatedFunc != nil {
		return m.ListOutdatedFunc(ctx)
	}
	return nil, nil
}

// Upgrade upgrades a single package
func (m *MockRunner) Upgrade(ctx context.Context, name string) error {
	if m.UpgradeFunc != nil {
		return m.UpgradeFunc(ctx, name)
	}
	return nil
}

// UpgradeSelf upgrades the manager itself
func (m *MockRunner) UpgradeSelf(ctx context.Context) error {
	if m.UpgradeSelfFunc != nil {
		return m.UpgradeSelfFunc(ctx)
	}
	return nil
}

// SelfName returns the name the manager uses for itself in listings
func (m *MockRunner) SelfName() string {
	return m.selfName
}

// Ensure MockRunner implements Executor interface
var _ Executor = (*MockRunner)(nil)
