// 16 Oct 2026

package mutparam

import (
	"fmt"
	"io"
	"math/big"

	"github.com/andrew-torda/matrix"
	"github.com/dustin/go-humanize"

	"github.com/andrew-torda/mutparam/pkg/constants"
)

const (
	colProb = iota // column in the report matrix
	colTail        // P(>= n_mut)
	nCol
)

// reportTable puts the probability of n mutations and of n or more
// into a matrix, one row per count. These are only printed to a few
// digits, so float32 is plenty. Expected counts are up to M and are
// not kept here.
func reportTable(c *constants.Constants) *matrix.FMatrix2d {
	pn := c.PNMut()
	tbl := matrix.NewFMatrix2d(len(pn), nCol)
	var tail float64
	for i := len(pn) - 1; i >= 0; i-- {
		tail += pn[i]
		tbl.Mat[i][colProb] = float32(pn[i])
		tbl.Mat[i][colTail] = float32(tail)
	}
	return tbl
}

// nIDs is the number of identities with exactly n mutations.
func nIDs(r []uint64, n int) uint64 {
	if n == 0 {
		return r[0]
	}
	return r[n] - r[n-1]
}

// bigComma is humanize.BigComma for a uint64, which can be too big
// for humanize.Comma.
func bigComma(x uint64) string { return humanize.BigComma(new(big.Int).SetUint64(x)) }

// writeReport writes a human readable summary of the derived
// parameters. The last row of probabilities includes everything with
// more mutations, so it is marked with >=.
func writeReport(w io.Writer, name string, c *constants.Constants) error {
	r := c.NMutRange()
	fmt.Fprintf(w, "# %s\n", name)
	fmt.Fprintf(w, "# L %d, q %d, M %s, p_mut %g, chunk width %d, max_mut %d\n",
		c.L, c.Q, humanize.Comma(int64(c.M)), c.PMut, c.ChunkL(), c.MaxMut())
	fmt.Fprintf(w, "%6s %12s %12s %16s %26s\n",
		"n_mut", "P(n_mut)", "P(>=n_mut)", "expected", "identities")
	tbl := reportTable(c)
	ex := c.ExpectedSeqs()
	last := len(tbl.Mat) - 1
	for i, row := range tbl.Mat {
		lbl := fmt.Sprintf("%d", i)
		if i == last {
			lbl = ">=" + lbl
		}
		fmt.Fprintf(w, "%6s %12.4e %12.4e %16.2f %26s\n",
			lbl, row[colProb], row[colTail], ex[i], bigComma(nIDs(r, i)))
	}
	_, err := fmt.Fprintf(w, "# id space up to %d mutations: %s\n", len(r)-1, bigComma(r[len(r)-1]))
	return err
}
