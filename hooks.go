package readthrough

// Hooks are lightweight callbacks for read-through events.
// Implementations MUST be cheap and non-blocking; they run inline on Get/Set.
// key is always the driver key (namespace included).
type Hooks interface {
	// Get found an entry in the driver.
	Hit(key string)
	// Get found nothing and is about to call the loader.
	Miss(key string)
	// The loader failed; nothing was written.
	LoadError(key string, err error)
	// A loaded value was not written back (absent, or rejected by the policy).
	WriteBackSkipped(key string)
	// The driver failed. op ∈ {"get", "set"}.
	DriverError(op, key string, err error)
	// A stored entry could not be decoded.
	DecodeError(key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(string)                        {}
func (NopHooks) Miss(string)                       {}
func (NopHooks) LoadError(string, error)           {}
func (NopHooks) WriteBackSkipped(string)           {}
func (NopHooks) DriverError(string, string, error) {}
func (NopHooks) DecodeError(string, error)         {}
