package ports

// Watcher monitors the lexicon source file for changes so long-lived sessions
// (the REPL) can hot-reload without restarting. Only one Watch call should be
// active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called after each settled
	// write (rapid editor write bursts are debounced into one call). The
	// callback may be invoked from any goroutine.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
