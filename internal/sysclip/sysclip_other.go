//go:build !linux && !darwin && !windows

package sysclip

// New returns the headless backend on platforms without a supported system
// clipboard.
func New() Backend {
	return &headlessBackend{}
}
