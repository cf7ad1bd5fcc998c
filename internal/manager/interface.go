package manager

import "context"

// Executor defines the operations pkgup needs from a package manager.
// This interface allows for mocking the manager in tests.
type Executor interface {
	// ListInstalled returns every installed package in listing order
	ListInstalled(ctx context.Context) ([]Package, error)

	// ListOutdated returns the packages the manager reports as outdated
	ListOutdated(ctx context.Context) ([]Package, error)

	// Upgrade upgrades a single package
	Upgrade(ctx context.Context, name string) error

	// UpgradeSelf upgrades the manager itself
	UpgradeSelf(ctx context.Context) error

	// SelfName returns the name the manager uses for itself in listings
	SelfName() string
}
