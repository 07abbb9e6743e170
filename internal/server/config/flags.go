package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/puisi/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":3002")
//	-g string   gRPC health bind address, empty disables it
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   auth service base URL
//	-p string   puisi service base URL
//	-o int      upstream call timeout, seconds
//	-w int      shutdown grace period, seconds
//	-k int      bcrypt cost
//	-x bool     strict ownership (transactional check-then-mutate)
//	-r bool     remote token validation against the auth service
//
// os.Args is filtered with flagx.FilterArgs first so -c / -env do not
// trip this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-u", "-p", "-o", "-w", "-k", "-x", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPCHealth, "g", config.EndpointAddrGRPCHealth, "gRPC health address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.AuthServiceURL, "u", config.AuthServiceURL, "auth service URL")
	fs.StringVar(&config.PuisiServiceURL, "p", config.PuisiServiceURL, "puisi service URL")

	upstreamTimeout := fs.Int("o", int(config.UpstreamTimeout.Seconds()), "upstream timeout (in seconds)")
	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	fs.IntVar(&config.PasswordHashCost, "k", config.PasswordHashCost, "bcrypt cost")
	fs.BoolVar(&config.StrictOwnership, "x", config.StrictOwnership, "transactional ownership checks")
	fs.BoolVar(&config.RemoteTokenValidation, "r", config.RemoteTokenValidation, "validate tokens with the auth service")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations are only replaced when their flag was given; the int
	// defaults above would truncate sub-unit values from earlier layers.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
		case "o":
			config.UpstreamTimeout = time.Duration(*upstreamTimeout) * time.Second
		case "w":
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
