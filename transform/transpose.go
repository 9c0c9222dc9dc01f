package transform

import "github.com/lattice384/ringq/residue"

// transposeBlockCells is the cache-oblivious recursion's base-case
// threshold: at or below this many cells, Transpose switches to a direct
// double loop instead of bisecting further.
const transposeBlockCells = 256

// Transpose rewrites the majors x minors row-major matrix src into the
// minors x majors row-major matrix dst: dst[c*majors+r] = src[r*minors+c].
// It is the glue dft uses to reassemble the p sub-transforms' outputs
// into the caller's expected ordering: a p x m' matrix transposed into
// an m' x p matrix.
func Transpose(majors, minors int, src, dst []residue.Residue) error {
	if majors <= 0 || minors <= 0 {
		return ErrPrecondition
	}
	if len(src) != majors*minors || len(dst) != majors*minors {
		return ErrPrecondition
	}
	transposeInto(majors, minors, src, dst)
	return nil
}

// transposeInto is Transpose without the precondition checks, used
// internally by dft where the lengths are already known correct.
func transposeInto(majors, minors int, src, dst []residue.Residue) {
	transposeBlock(0, majors, 0, minors, majors, minors, src, dst)
}

// transposeBlock transposes the sub-block [rowStart,rowEnd) x
// [colStart,colEnd) of the conceptual majors x minors matrix, recursing
// by bisecting whichever dimension is larger until the block is small
// enough to copy directly. Bisecting the larger dimension keeps each
// recursive call's working set shrinking toward cache-line size
// regardless of the original matrix's aspect ratio.
func transposeBlock(rowStart, rowEnd, colStart, colEnd, majors, minors int, src, dst []residue.Residue) {
	rows := rowEnd - rowStart
	cols := colEnd - colStart
	if rows*cols <= transposeBlockCells {
		for r := rowStart; r < rowEnd; r++ {
			base := r * minors
			for c := colStart; c < colEnd; c++ {
				dst[c*majors+r] = src[base+c]
			}
		}
		return
	}
	if rows >= cols {
		mid := rowStart + rows/2
		transposeBlock(rowStart, mid, colStart, colEnd, majors, minors, src, dst)
		transposeBlock(mid, rowEnd, colStart, colEnd, majors, minors, src, dst)
	} else {
		mid := colStart + cols/2
		transposeBlock(rowStart, rowEnd, colStart, mid, majors, minors, src, dst)
		transposeBlock(rowStart, rowEnd, mid, colEnd, majors, minors, src, dst)
	}
}
