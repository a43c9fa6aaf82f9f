package cosched

// noCopy may be embedded into structs which must not be copied after
// first use, such as Scheduler and anything owning a WaitQueue. go vet
// -copylocks flags copies because it implements sync.Locker.
type noCopy struct{}

// Lock is a no-op used by go vet.
func (*noCopy) Lock() {}

// Unlock is a no-op used by go vet.
func (*noCopy) Unlock() {}
