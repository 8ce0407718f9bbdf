package grid

import "fmt"

// Element is the set of scalar types a Cube can hold.
type Element interface {
	~float32 | ~float64
}

// Cube is a dense cubic 3D array stored flat in row-major order.
// Cell (i, j, k) lives at Data[(i*Dim+j)*Dim+k].
type Cube[T Element] struct {
	Dim  int
	Data []T
}

// NewCube allocates a zero-initialized cube with the given side length.
func NewCube[T Element](dim int) (*Cube[T], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("grid: side length must be > 0: %d", dim)
	}

	return &Cube[T]{Dim: dim, Data: make([]T, dim*dim*dim)}, nil
}

// FromSlice wraps an existing flat buffer as a cube without copying.
// The buffer length must be exactly dim^3.
func FromSlice[T Element](dim int, data []T) (*Cube[T], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("grid: side length must be > 0: %d", dim)
	}

	if len(data) != dim*dim*dim {
		return nil, fmt.Errorf("%w: len=%d want=%d", ErrShapeMismatch, len(data), dim*dim*dim)
	}

	return &Cube[T]{Dim: dim, Data: data}, nil
}

func (c *Cube[T]) index(i, j, k int) int { return (i*c.Dim+j)*c.Dim + k }

// At returns the value at cell (i, j, k).
func (c *Cube[T]) At(i, j, k int) T { return c.Data[c.index(i, j, k)] }

// Set stores v at cell (i, j, k).
func (c *Cube[T]) Set(i, j, k int, v T) { c.Data[c.index(i, j, k)] = v }

// Add accumulates v into cell (i, j, k).
func (c *Cube[T]) Add(i, j, k int, v T) { c.Data[c.index(i, j, k)] += v }

// Fill sets every cell to v.
func (c *Cube[T]) Fill(v T) {
	for i := range c.Data {
		c.Data[i] = v
	}
}

// Clone returns an independently owned copy of the cube.
func (c *Cube[T]) Clone() *Cube[T] {
	data := make([]T, len(c.Data))
	copy(data, c.Data)

	return &Cube[T]{Dim: c.Dim, Data: data}
}

// Total returns the sum over all cells in float64 precision.
func (c *Cube[T]) Total() float64 {
	var sum float64
	for _, v := range c.Data {
		sum += float64(v)
	}

	return sum
}

// Mean returns the average cell value.
func (c *Cube[T]) Mean() float64 {
	if len(c.Data) == 0 {
		return 0
	}

	return c.Total() / float64(len(c.Data))
}
