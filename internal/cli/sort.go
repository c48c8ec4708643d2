package cli

import (
	"context"
	"fmt"
	"io"
)

// RunSort sorts the quotes file in place. On success it prints nothing
// unless verbose is set.
func RunSort(ctx context.Context, opts Options, verbose bool, out io.Writer) error {
	eng := createEngine(opts)

	res, err := eng.Sort(ctx)
	if err != nil {
		return err
	}

	if verbose {
		if _, err := fmt.Fprintf(out, "Sorted %d quotes in %s (%d moved)\n", res.Count, res.Location, res.Moved); err != nil {
			return err
		}
	}
	return nil
}

// RunCheck verifies the quotes file is in order without writing it.
func RunCheck(ctx context.Context, opts Options, out io.Writer) error {
	eng := createEngine(opts)

	if err := eng.Check(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "%s is sorted ✅\n", eng.Store().Location())
	return err
}
