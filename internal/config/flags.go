package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

var errBadAddress = errors.New("address must look like host:port")

// NetAddress is a host:port flag value. The host may be a name, an IP or
// empty (all interfaces).
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errBadAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q out of range", errBadAddress, rawPort)
	}

	a.Host, a.Port = host, port
	return nil
}

// ParseFlags reads the command line of either binary. Flags that a process
// does not use are accepted and ignored, so one wrapper script can start both.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		serverAddress NetAddress
	)

	fs := flag.NewFlagSet("medi-vault", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "backend listen address, host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "backend PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Client.DSN, "l", "", "local SQLite database path")
	fs.StringVar(&cfg.Storage.SessionFile, "session", "", "file keeping the backend session token")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "backend address used by the client")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (same as -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "secret for signing session tokens")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "session token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "backend request timeout")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "client request timeout")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "background sync period")
	fs.StringVar(&cfg.App.LogFile, "log", "", "client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}
