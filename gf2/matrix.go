// SPDX-License-Identifier: MIT

package gf2

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is a dense matrix over GF(2). Rows are stored as bitsets so that the
// single row operation GF(2) admits — adding one row to another — is a
// word-wise XOR. The zero value is not usable; construct through New.
type Matrix struct {
	rows, cols int
	data       []*bitset.BitSet // one bitset per row, indexed by column
}

// New returns a zero-filled rows×cols matrix.
// Returns ErrBadShape unless both dimensions are positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
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

// At returns entry (i, j) as 0 or 1, or ErrOutOfRange.
func (m *Matrix) At(i, j int) (uint8, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	if m.data[i].Test(uint(j)) {
		return 1, nil
	}
	return 0, nil
}

// Set writes v mod 2 at entry (i, j), or returns ErrOutOfRange.
func (m *Matrix) Set(i, j int, v uint8) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	if v%2 == 1 {
		m.data[i].Set(uint(j))
	} else {
		m.data[i].Clear(uint(j))
	}
	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]*bitset.BitSet, m.rows)
	for i, r := range m.data {
		data[i] = r.Clone()
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// IsZero reports whether every entry is zero.
func (m *Matrix) IsZero() bool {
	for _, r := range m.data {
		if r.Any() {
			return false
		}
	}
	return true
}

// Transpose returns a new cols×rows matrix with entries mirrored across the
// main diagonal.
func (m *Matrix) Transpose() *Matrix {
	out, _ := New(m.cols, m.rows) // shape already validated by m
	for i, r := range m.data {
		for j, ok := r.NextSet(0); ok && j < uint(m.cols); j, ok = r.NextSet(j + 1) {
			out.data[j].Set(uint(i))
		}
	}
	return out
}

// Mul returns the mod-2 product a·b.
// Returns ErrNilMatrix for nil operands and ErrDimensionMismatch unless
// a.Cols() == b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	out, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	// Row i of the product is the XOR of the rows of b selected by row i of a.
	for i := 0; i < a.rows; i++ {
		for k, ok := a.data[i].NextSet(0); ok && k < uint(a.cols); k, ok = a.data[i].NextSet(k + 1) {
			out.data[i].InPlaceSymmetricDifference(b.data[k])
		}
	}
	return out, nil
}

// Rank returns the rank of m over GF(2). It eliminates on a copy; the
// receiver is never mutated.
func (m *Matrix) Rank() int {
	work := make([]*bitset.BitSet, m.rows)
	for i, r := range m.data {
		work[i] = r.Clone()
	}
	rank := 0
	for col := 0; col < m.cols && rank < m.rows; col++ {
		pivot := -1
		for i := rank; i < m.rows; i++ {
			if work[i].Test(uint(col)) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for i := 0; i < m.rows; i++ {
			if i != rank && work[i].Test(uint(col)) {
				work[i].InPlaceSymmetricDifference(work[rank])
			}
		}
		rank++
	}
	return rank
}

// String renders the matrix as one line of 0/1 digits per row — small
// matrices only, meant for debugging and test failure output.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if m.data[i].Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
