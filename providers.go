package vt510term

// BellProvider handles BEL (0x07) events. BEL is always a no-op in the grid
// (spec.md §4.4.2); the host may ring a bell in response.
// Grounded on the teacher's providers.go BellProvider/NoopBell pattern.
type BellProvider interface {
	Ring()
}

// NoopBell ignores all bell events. It is the default provider.
type NoopBell struct{}

// Ring implements BellProvider by doing nothing.
func (NoopBell) Ring() {}

var _ BellProvider = NoopBell{}
