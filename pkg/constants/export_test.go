package constants

// BinomProb lets the tests check single terms of the distribution.
func BinomProb(l, k int, pMut float64) float64 {
	x, _ := binomProb(l, k, pMut).Float64()
	return x
}
