// 12 Oct 2026
/*
Package constants derives the numbers which drive a mutation
simulation from a handful of scalar parameters.

Given a sequence length L, q symbols per position and a mutation
probability p_mut per position, it works out
 - a chunk width, the largest divisor of L that is at most 25
 - max_mut, how many mutations have to be modelled before the expected
   number of sequences becomes insignificant. With m sequences, the
   expected number with k mutations is m * C(L,k) * p^k * (1-p)^(L-k).
 - the cumulative number of distinct mutated sequences for 0 .. 2 max_mut
   mutations. These are id ranges, so a sequence number can be mapped back
   to its number of mutations.
 - the probability of 0 .. max_mut mutations, with everything beyond
   max_mut added to the last entry.

Everything is calculated once in New and then only read.
*/
package constants
