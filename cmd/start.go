// Package cmd holds the start-up code shared by the ScoreCraft executables.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/config"
	"github.com/scorecraft/scorecraft/frontend"
	"github.com/scorecraft/scorecraft/logging"
	"github.com/scorecraft/scorecraft/version"
	"go.uber.org/zap"
)

var printVersion = flag.Bool("version", false, "print version and exit")
var catalogFile = flag.String("catalog", "", "read the instrument catalog from `file`")
var logLevel = flag.String("log-level", "", "log `level`: debug, info, warn or error")

// Start parses the command line and the environment, builds the logger and
// returns a fresh wizard model. Logs go to stderr only if console is set.
// Start exits the process on -version and on configuration errors.
func Start(program string, console bool) (*frontend.Model, *zap.Logger) {
	flag.Parse()
	if *printVersion {
		fmt.Println(program, version.VersionOrHash)
		os.Exit(0)
	}
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if isFlagPassed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if isFlagPassed("catalog") {
		cfg.CatalogPath = *catalogFile
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: console})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger = logger.With(zap.String("program", program))
	logger.Info("starting", zap.String("version", version.VersionOrHash), zap.String("catalog", cfg.CatalogPath))
	catalog, err := LoadCatalog(cfg.CatalogPath)
	model := frontend.NewModel(catalog, logger)
	if err != nil {
		model.Alerts().AddNamed("Catalog", err.Error()+"; using the built-in catalog", frontend.Warning)
	}
	return model, logger
}

// LoadCatalog reads the instrument catalog from path. An empty path selects
// the built-in catalog. On error, the built-in catalog is returned along with
// the error.
func LoadCatalog(path string) (scorecraft.Catalog, error) {
	if path == "" {
		return scorecraft.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return scorecraft.DefaultCatalog(), fmt.Errorf("could not open catalog: %w", err)
	}
	defer f.Close()
	c, err := scorecraft.ReadCatalog(f)
	if err != nil {
		return scorecraft.DefaultCatalog(), fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
