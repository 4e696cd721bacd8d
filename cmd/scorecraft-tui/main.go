package main

import (
	"fmt"
	"os"

	"github.com/scorecraft/scorecraft/cmd"
	"github.com/scorecraft/scorecraft/frontend/tui"
	"go.uber.org/zap"
)

func main() {
	// stderr belongs to the terminal ui, so log to the file only
	model, logger := cmd.Start("scorecraft-tui", false)
	defer logger.Sync()
	if err := tui.Run(model, nil); err != nil {
		logger.Error("terminal ui failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
