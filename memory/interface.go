package memory

// Memory is an address-indexed store of Intcode words.
//
// Addresses that have never been written read as zero. Implementations must
// never discard a value once it has been stored: the store only grows.
//
type Memory interface {
	// Load returns the word at addr.
	Load(addr uint64) (int64, error)

	// Store writes v at addr, allocating the cell if needed.
	Store(addr uint64, v int64) error

	// Len returns one past the highest address that holds a value.
	Len() uint64

	// ForEach calls f exactly once for each cell that holds a value. The
	// addresses for successive calls are guaranteed to be in ascending
	// order.
	ForEach(f func(addr uint64, v int64))
}

// Of returns the default Memory for a program: a Sparse store holding the
// given words at addresses 0 .. len(words)-1.
func Of(words []int64) Memory {
	return Sparse(words...)
}
