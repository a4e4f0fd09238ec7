package bitmatrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

func boundsErrorf(method string, row, col int) error {
	return fmt.Errorf("bitmatrix.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
}

// Set assigns the bit at (row, col) to v.
//
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v bool) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return boundsErrorf("Set", row, col)
	}
	if v {
		m.data[row].Set(uint(col))
	} else {
		m.data[row].Clear(uint(col))
	}
	return nil
}

// Get reads the bit at (row, col).
//
// Complexity: O(1).
func (m *Matrix) Get(row, col int) (bool, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false, boundsErrorf("Get", row, col)
	}
	return m.data[row].Test(uint(col)), nil
}

// Row returns a clone of row i as a standalone bit-vector of length Cols.
// Mutating the result does not affect the matrix.
func (m *Matrix) Row(i int) (*bitset.BitSet, error) {
	if i < 0 || i >= m.rows {
		return nil, boundsErrorf("Row", i, 0)
	}
	return m.data[i].Clone(), nil
}

// ColMul left-multiplies v (length Rows) by the matrix, returning a bit
// vector of length Cols where result[j] = OR over i of (v[i] AND M[i][j]).
//
// Complexity: O(Rows*Cols/64) in the worst case, but only set bits of v are
// visited, so it is O(popcount(v) * Cols/64) in practice.
func (m *Matrix) ColMul(v *bitset.BitSet) (*bitset.BitSet, error) {
	if v.Len() != uint(m.rows) {
		return nil, fmt.Errorf("bitmatrix.ColMul: vector length %d, want %d: %w", v.Len(), m.rows, ErrDimensionMismatch)
	}
	result := bitset.New(uint(m.cols))
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		result.InPlaceUnion(m.data[i])
	}
	return result, nil
}

// Mul computes the boolean matrix product m*other: result[i][j] = OR over k
// of (m[i][k] AND other[k][j]). m's column count must equal other's row
// count.
//
// Complexity: O(Rows * Cols(other) * other.Rows/64) worst case, proportional
// to the number of set bits actually visited per row.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("bitmatrix.Mul: %dx%d * %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	result, err := New(m.rows, other.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		row := m.data[i]
		for k, ok := row.NextSet(0); ok; k, ok = row.NextSet(k + 1) {
			result.data[i].InPlaceUnion(other.data[k])
		}
	}
	return result, nil
}

// String renders the matrix as one "0101..." line per row, for debugging.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i].Test(uint(j)) {
				s += "1"
			} else {
				s += "0"
			}
		}
		s += "\n"
	}
	return s
}
