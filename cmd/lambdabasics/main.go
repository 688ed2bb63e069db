// Command lambdabasics walks through functional-style collection
// processing over a list of points, and times the same computation across
// several pipeline libraries.
package main

import (
	"context"
	"os"
)

func main() {
	ctx := context.Background()
	a := newApp(os.Stdout, os.Stderr)
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		// PersistentPostRunE is skipped when a command fails.
		if cerr := a.close(ctx); cerr != nil {
			a.logger.Warn("metrics shutdown failed", "error", cerr)
		}
		a.logger.Error("lambdabasics failed", "error", err)
		os.Exit(1)
	}
}
