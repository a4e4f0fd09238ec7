package bitmatrix

import "github.com/bits-and-blooms/bitset"

// Matrix is a dense row-major boolean matrix. Row i is stored as a single
// bitset.BitSet of length Cols, so row-at-a-time operations (ColMul, Mul)
// run a word at a time instead of bit at a time.
type Matrix struct {
	rows, cols int
	data       []*bitset.BitSet // data[i] is row i, length cols
}

// New allocates a rows x cols Matrix with every bit clear.
//
// Complexity: O(rows*cols/64) for the backing word allocation.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*bitset.BitSet, rows)
	for i := range data {
		data[i] = bitset.New(uint(cols))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }
