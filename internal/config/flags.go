package config

import (
	"flag"
	"os"

	"github.com/crestrepo/photovault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the sqlite database file (default from Config)
//	-s string   directory for session state files (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the sqlite database file")
	fs.StringVar(&cfg.SessionDir, "s", cfg.SessionDir, "directory for session state files")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
