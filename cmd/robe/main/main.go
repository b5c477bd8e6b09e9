package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/robe/cmd/robe"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := robe.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "robe: %s\n", errors.UserMessage(err))
		}
		os.Exit(1)
	}
}
