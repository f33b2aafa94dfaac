package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Headers collects repeated -H "Name: value" flags. It implements flag.Value.
type Headers map[string]string

// ParseFlags parses command-line arguments (without the program name).
// Arguments left after the flags become [StructuredConfig.Command].
//
// Flags:
//
//	-a              emulator listen address in format [host]:[port]
//	-u, -url        remote service root URL
//	-d              sqlite DSN
//	-c, -config     json file path with configs
//	-hash-key       HMAC key for the HashSHA256 header
//	-api-token      value of the x-amx-token header
//	-adapter-timeout  outbound request timeout (e.g. "30s")
//	-request-timeout  inbound request timeout of the emulator
//	-sync-interval  background sync period (e.g. "5m")
//	-log            client log file path
//	-H              extra request header "Name: value", repeatable
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serviceURL string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var apiToken string
	var adapterTimeout time.Duration
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var logPath string
	headers := Headers{}

	fs := flag.NewFlagSet("go-bookmark-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serviceURL, "u", "", "Remote service URL")
	fs.StringVar(&serviceURL, "url", "", "Remote service URL (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&apiToken, "api-token", "", "API token")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.Var(headers, "H", "Extra request header 'Name: value'")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			APIToken: apiToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ServiceURL:     serviceURL,
			RequestTimeout: adapterTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		Log:          Log{Path: logPath},
		JSONFilePath: jsonConfigPath,
		Command:      fs.Args(),
	}
	if len(headers) > 0 {
		cfg.Adapter.ExtraHeaders = headers
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Hosts other than "localhost" must be
// IP addresses.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (h Headers) String() string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+": "+h[k])
	}
	return strings.Join(pairs, ", ")
}

func (h Headers) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return errors.New("need header in a form `Name: value`")
	}
	h[name] = strings.TrimSpace(value)
	return nil
}
