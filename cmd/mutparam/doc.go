// 16 Oct 2026
/*

Mutparam sets up the parameters for mutation simulation runs.

Usage:
	mutparam [options] outdir [outdir ...]

For each output directory, it reads outdir/parameters.txt, if it is there.
A missing directory is created and a missing file means default
parameters. The file has one parameter per line, name and value separated
by a tab:
	L             sequence length (50)
	q             symbols per position (2)
	M             number of sequences (12000000)
	p_mut         mutation probability per position (0.1)
	p_error       sequencing error probability (p_mut / 10)
	p_effect      (0.5)
	p_epistasis   (0.3)
	seed          random number seed (from the clock)
	max_mut       maximum number of mutations to model (derived)
	B_tot         total binding partner concentration (2)
	epi_restrict  epistasis restriction level, 0, 1 or 2 (0)
A value which cannot be read is replaced by its default, with a warning.
The file may be gzipped.

From these we derive the chunk width (largest divisor of L up to 25),
max_mut if it was not given, the id ranges for each number of mutations and
the probability of each number of mutations. The complete set is written
back to outdir/parameters.txt, or to standard output if outdir is a file.

Several output directories are handled in parallel.

Flags:
  -r	print a table with the probability, expected number of sequences
  	and number of distinct sequences for each number of mutations
  -d file
  	save each parameter set in a sqlite database
  -t	print out timing information
  -j	log in json, rather than for people
  -q	only log errors

L should not be prime. If it is, the only chunk width is 1 and we stop.
With q > 2 and a long sequence, the number of distinct mutated sequences
soon becomes too big for 64 bits. This is an error too. Set max_mut
yourself or use fewer symbols.

*/
package main
