// 16 Oct 2026
// Set up the parameters for one or more simulation runs. Each run has
// its own output directory. We read the parameter file there (or take
// defaults), derive everything and write back the full set, so the
// simulation proper and anyone looking later sees exactly what was used.

package mutparam

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/mutparam/pkg/paramfile"
	"github.com/andrew-torda/mutparam/pkg/paramstore"
)

// CmdFlag is literally command line flags after parsing, plus where
// output goes.
type CmdFlag struct {
	Report bool           // print a table of the derived values
	DB     string         // sqlite file to save parameter sets in, if not ""
	Time   bool           // log run time
	Wrtr   io.Writer      // reports, and parameters with no directory. Stdout if nil
	Log    zerolog.Logger // for progress and warnings
}

// lockedWriter lets the runs share one writer. Each run hands over a
// complete block of text, so output does not get interleaved.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// oneRun does everything for one output directory.
func oneRun(ctx context.Context, flags *CmdFlag, dir string, wrtr io.Writer,
	store *paramstore.SQLiteStore) error {
	log := flags.Log.With().Str("run", dir).Logger()
	c, err := paramfile.ReadParameters(dir, log)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := paramfile.WriteParameters(dir, c, &buf, log); err != nil {
		return err
	}
	if flags.Report {
		if err := writeReport(&buf, dir, c); err != nil {
			return err
		}
	}
	if buf.Len() > 0 {
		if _, err := wrtr.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	if store != nil {
		id, err := store.Save(ctx, c)
		if err != nil {
			return fmt.Errorf("run %s: %w", dir, err)
		}
		log.Info().Str("id", id).Msg("saved parameter set")
	}
	log.Info().Int("max_mut", c.MaxMut()).Int("chunk_width", c.ChunkL()).
		Msg("parameters derived")
	return nil
}

// Mymain sets up parameters for each directory in dirs. They are done
// in parallel and the first error stops the rest.
func Mymain(flags *CmdFlag, dirs []string) error {
	if len(dirs) == 0 {
		return paramfile.ErrNoPath
	}
	if flags.Time {
		startTime := time.Now()
		defer func() {
			flags.Log.Info().Int64("ms", time.Since(startTime).Milliseconds()).Msg("finished")
		}()
	}
	var w io.Writer = os.Stdout
	if flags.Wrtr != nil {
		w = flags.Wrtr
	}
	wrtr := &lockedWriter{w: w}

	g, ctx := errgroup.WithContext(context.Background())
	var store *paramstore.SQLiteStore
	if flags.DB != "" {
		store = paramstore.NewSQLiteStore(flags.DB)
		if err := store.Init(ctx); err != nil {
			return fmt.Errorf("parameter store %s: %w", flags.DB, err)
		}
		defer store.Close()
	}

	g.SetLimit(runtime.NumCPU())
	for _, dir := range dirs {
		dir := dir
		g.Go(func() error { return oneRun(ctx, flags, dir, wrtr, store) })
	}
	return g.Wait()
}
