package main

import (
	"os"

	"gioui.org/app"
	"github.com/scorecraft/scorecraft/cmd"
	"github.com/scorecraft/scorecraft/config"
	"github.com/scorecraft/scorecraft/frontend"
	"github.com/scorecraft/scorecraft/frontend/gioui"
	"go.uber.org/zap"
)

func main() {
	model, logger := cmd.Start("scorecraft", true)
	prefs, err := gioui.MakePreferences(config.Dir())
	if err != nil {
		logger.Warn("could not read preferences", zap.Error(err))
		model.Alerts().AddNamed("Preferences", err.Error(), frontend.Warning)
	}
	ui := gioui.NewScoreCraft(model, prefs)
	go func() {
		code := 0
		if err := ui.Main(); err != nil {
			logger.Error("window failed", zap.Error(err))
			code = 1
		}
		logger.Sync()
		os.Exit(code)
	}()
	app.Main()
}
