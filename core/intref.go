package core

// IntRef yields the stable address of an int32 that the firmware may read
// for the rest of the program. It is implemented only by StaticInt and
// *Cell.
type IntRef interface {
	intPtr() *int32
}

// StaticInt wraps a pointer to a package-level (or otherwise never-freed)
// int32. The value is read by address, never copied.
type StaticInt struct {
	ptr *int32
}

// Static returns an IntRef for p
func Static(p *int32) StaticInt {
	return StaticInt{ptr: p}
}

func (s StaticInt) intPtr() *int32 {
	return s.ptr
}

// Cell is an int32 the application updates in place after registration.
// It is not synchronized: the firmware may observe a value mid-update.
type Cell struct {
	value int32
}

// NewCell allocates a Cell holding v
func NewCell(v int32) *Cell {
	return &Cell{value: v}
}

// Get returns the current value
func (c *Cell) Get() int32 {
	return c.value
}

// Set stores v at the registered address
func (c *Cell) Set(v int32) {
	c.value = v
}

// Add adds delta and returns the new value
func (c *Cell) Add(delta int32) int32 {
	c.value += delta
	return c.value
}

func (c *Cell) intPtr() *int32 {
	if c == nil {
		return nil
	}
	return &c.value
}
