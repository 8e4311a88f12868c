package partition

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/autgroup/pkg/graph"
)

// Invariant returns a 64-bit certificate of an equitable partition: a hash of
// its cell sizes followed by its quotient matrix (for each ordered pair of
// cells, the number of neighbors a vertex of the first has in the second).
//
// Two search nodes whose partitions are related by an automorphism always get
// the same value, so a node whose invariant differs from the reference path at
// the same depth cannot lead to a leaf equivalent to the reference leaf. The
// converse does not hold; equal values are only a hint.
//
// p should be equitable. For a non-equitable p the quotient row of a cell is
// taken from its first vertex.
func Invariant(g *graph.Graph, p *Partition) uint64 {
	d := xxhash.New()
	k := len(p.cells)

	buf := make([]byte, 0, 8*(k+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(k))
	for _, c := range p.cells {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(c)))
	}
	_, _ = d.Write(buf)

	row := make([]int, k)
	for i, c := range p.cells {
		clear(row)
		g.IterateNeighbors(c[0], func(u int) bool {
			row[p.cellOf[u]]++
			return true
		})
		buf = buf[:0]
		for j, cnt := range row {
			if cnt == 0 {
				continue
			}
			buf = binary.LittleEndian.AppendUint32(buf, uint32(i))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(j))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(cnt))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
