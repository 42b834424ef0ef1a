//go:build !gui

package window

// Run reports that this build has no window support.
func Run(Options) error {
	return ErrUnavailable
}
