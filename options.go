package coroutine

// spawnOptions holds resolved configuration for SpawnWithOptions.
type spawnOptions struct {
	stackSize int
	name      string
}

// Option configures a SpawnWithOptions call.
type Option func(*spawnOptions)

func resolveOptions(opts ...Option) spawnOptions {
	var so spawnOptions
	for _, opt := range opts {
		opt(&so)
	}
	return so
}

// WithStackSize sets the coroutine's stack reservation in bytes.
// Zero or negative means DefaultStackSize; requests below the
// implementation floor are rounded up.
func WithStackSize(bytes int) Option {
	return func(o *spawnOptions) {
		o.stackSize = bytes
	}
}

// WithName attaches a human-readable label to the coroutine, used in
// the diagnostic line printed when its body panics.
func WithName(name string) Option {
	return func(o *spawnOptions) {
		o.name = name
	}
}
