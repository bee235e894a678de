//go:build !linux

package mpris

// Adapter does nothing outside Linux: MPRIS is a D-Bus interface and media
// keys are not forwarded elsewhere.
type Adapter struct{}

// New returns an inert adapter.
func New(Caller, Queue, Engine) (*Adapter, error) {
	return &Adapter{}, nil
}

func (a *Adapter) Close() error { return nil }
