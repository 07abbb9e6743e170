package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/puisi/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the
// flags listed in the package doc are considered; the rest of os.Args is
// filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-r", "-t", "-s", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthURL, "a", cfg.AuthURL, "auth service URL")
	fs.StringVar(&cfg.PuisiURL, "p", cfg.PuisiURL, "puisi service URL")
	fs.StringVar(&cfg.ReactionURL, "r", cfg.ReactionURL, "reaction service URL")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
