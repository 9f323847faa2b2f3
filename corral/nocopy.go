package corral

// noCopy makes `go vet` (copylocks) reject copying a corral by value.
// Ownership moves only through Take and Move.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
