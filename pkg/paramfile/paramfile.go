// 14 Oct 2026
// Reading and writing parameter files. A parameter file has one
// parameter per line, name and value separated by a tab. Names we do
// not know and lines starting with # are ignored.
// A value we cannot convert is not fatal. We complain and use the
// default for that one parameter, since one typo should not stop a
// whole run.

package paramfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/rs/zerolog"

	"github.com/andrew-torda/mutparam/pkg/constants"
	"github.com/andrew-torda/mutparam/pkg/zwrap"
)

// ParameterFile is the name of the file in an output directory.
const ParameterFile = "parameters.txt"

// ErrNoPath is returned if we are not given an output path.
var ErrNoPath = errors.New("output path is a mandatory parameter")

// Parse reads parameters from r. Anything not in the file keeps its
// default. If p_error is not given, it is a tenth of p_mut.
// The only error is a failing reader.
func Parse(r io.Reader, log zerolog.Logger) (constants.Params, error) {
	p := constants.DefaultParams()
	pErrSet := false
	var key, val string
	warn := func(err error) {
		log.Warn().Str("param", key).Str("value", val).Err(err).
			Msg("invalid value in parameter file, using default")
	}
	setInt := func(dst *int) bool {
		v, err := strconv.Atoi(val)
		if err != nil {
			warn(err)
			return false
		}
		*dst = v
		return true
	}
	setFloat := func(dst *float64) bool {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			warn(err)
			return false
		}
		*dst = v
		return true
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		var rest string
		key, rest, _ = strings.Cut(line, "\t")
		val, _, _ = strings.Cut(rest, "\t")
		val = strings.TrimSpace(val)
		switch key {
		case "M":
			setInt(&p.M)
		case "L":
			setInt(&p.L)
		case "q":
			setInt(&p.Q)
		case "p_mut":
			setFloat(&p.PMut)
		case "p_error":
			pErrSet = setFloat(&p.PErr)
		case "p_effect":
			setFloat(&p.PEffect)
		case "p_epistasis":
			setFloat(&p.PEpistasis)
		case "seed":
			if v, err := strconv.ParseInt(val, 10, 64); err != nil {
				warn(err)
			} else {
				p.Seed = v
			}
		case "max_mut":
			var n int
			if setInt(&n) {
				p.MaxMut = nil
				if n >= 0 { // -1 means derive it
					p.MaxMut = constants.Fixed(n)
				}
			}
		case "B_tot":
			setFloat(&p.BTot)
		case "epi_restrict":
			setInt(&p.EpiRestrict)
		}
	}
	if err := scanner.Err(); err != nil {
		return p, fmt.Errorf("reading parameters: %w", err)
	}
	if !pErrSet {
		p.PErr = p.PMut / 10
	}
	return p, nil
}

// Write puts out the parameters in a fixed order. Floats are written
// so they read back to the same bits.
func Write(w io.Writer, c *constants.Constants) error {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "seed\t%d\n", c.Seed)
	fmt.Fprintln(bw, "### parameters regarding kd sampling ###")
	fmt.Fprintf(bw, "p_effect\t%s\n", f(c.PEffect))
	fmt.Fprintf(bw, "p_epistasis\t%s\n", f(c.PEpistasis))
	fmt.Fprintf(bw, "epi_restrict\t%d\n", c.EpiRestrict)
	fmt.Fprintln(bw, "### parameters regarding sequence sampling ###")
	fmt.Fprintf(bw, "L\t%d\n", c.L)
	fmt.Fprintf(bw, "q\t%d\n", c.Q)
	fmt.Fprintf(bw, "M\t%d\n", c.M)
	fmt.Fprintf(bw, "p_mut\t%s\n", f(c.PMut))
	fmt.Fprintf(bw, "p_error\t%s\n", f(c.PErr))
	fmt.Fprintf(bw, "max_mut\t%d\n", c.MaxMut())
	fmt.Fprintln(bw, "### parameters regarding binding competition ###")
	fmt.Fprintf(bw, "B_tot\t%s\n", f(c.BTot))
	return bw.Flush()
}

// Load reads a parameter file, which may be gzipped. The file is
// mapped rather than read. An empty file cannot be mapped, but it just
// means defaults anyway.
func Load(fname string, log zerolog.Logger) (constants.Params, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return constants.Params{}, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return constants.Params{}, err
	}
	if fi.Size() == 0 {
		return Parse(bytes.NewReader(nil), log)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return constants.Params{}, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	zr, err := zwrap.WrapMaybe(bytes.NewReader(mm))
	if err != nil {
		return constants.Params{}, err
	}
	defer zr.Close()
	return Parse(zr, log)
}

// paraFile decides where the parameters live. outPath is either a
// directory, holding ParameterFile, or the parameter file itself.
func paraFile(outPath string) string {
	if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
		return filepath.Join(outPath, ParameterFile)
	}
	return outPath
}

// ReadParameters gets parameters for a run in outPath and derives
// everything else. If outPath does not exist, it is created as a
// directory. If there is no parameter file, we run on defaults.
func ReadParameters(outPath string, log zerolog.Logger) (*constants.Constants, error) {
	if outPath == "" {
		return nil, ErrNoPath
	}
	if _, err := os.Stat(outPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(outPath, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		abs, _ := filepath.Abs(outPath)
		log.Info().Str("dir", abs).Msg("created output directory")
	}

	fname := paraFile(outPath)
	params := constants.DefaultParams()
	if fi, err := os.Stat(fname); err == nil && fi.Mode().IsRegular() {
		log.Info().Str("file", fname).Msg("reading parameters")
		if params, err = Load(fname, log); err != nil {
			return nil, fmt.Errorf("parameter file %s: %w", fname, err)
		}
	} else {
		log.Info().Msg("no parameter file given, using default parameters")
	}

	c, err := constants.New(params)
	if err != nil {
		return nil, fmt.Errorf("parameters from %s: %w", fname, err)
	}
	return c, nil
}

// WriteParameters writes to ParameterFile in outPath if that is a
// directory and to dflt otherwise.
func WriteParameters(outPath string, c *constants.Constants, dflt io.Writer, log zerolog.Logger) error {
	if fi, err := os.Stat(outPath); err != nil || !fi.IsDir() {
		return Write(dflt, c)
	}
	fname := filepath.Join(outPath, ParameterFile)
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("parameter file: %w", err)
	}
	log.Info().Str("file", fname).Msg("writing parameters")
	if err := Write(fp, c); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
