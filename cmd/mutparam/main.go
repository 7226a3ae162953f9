// 16 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/mutparam/pkg/common"
	"github.com/andrew-torda/mutparam/pkg/mutparam"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] outdir [outdir ...]")
	flag.PrintDefaults()
}

func main() {
	var flags mutparam.CmdFlag
	var jsonLog, quiet bool
	flag.BoolVar(&flags.Report, "r", false, "print a table of the derived values")
	flag.StringVar(&flags.DB, "d", "", "sqlite file to save parameter sets in")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.BoolVar(&jsonLog, "j", false, "log in json")
	flag.BoolVar(&quiet, "q", false, "only log errors")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(ExitUsageError)
	}
	flags.Log = NewLogger(os.Stderr, !jsonLog, quiet)

	if err := mutparam.Mymain(&flags, flag.Args()); err != nil {
		flags.Log.Error().Err(err).Msg("failed setting up parameters")
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
