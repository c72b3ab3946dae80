package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s/-storage-uri store connection string
//	-storage-database mongo database name
//	-commit-timeout scene transaction commit budget (e.g., "1s")
//	-c/-config json file path with configs
//	-token-sign-key room token signing key
//	-token-issuer room token issuer name
//	-token-duration room token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cache-ttl version cache entry ttl (e.g., "24h")
//	-cache-max-entries version cache capacity
//	-sweep-interval version cache sweep interval (e.g., "10m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("scene-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var storageURI, storageDatabase string
	var commitTimeout time.Duration
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var cacheTTL time.Duration
	var cacheEntries int
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&storageURI, "s", "", "Store connection string")
	fs.StringVar(&storageURI, "storage-uri", "", "Store connection string (alias)")
	fs.StringVar(&storageDatabase, "storage-database", "", "Mongo database name")
	fs.DurationVar(&commitTimeout, "commit-timeout", 0, "Commit timeout (e.g., 1s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Room token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Room token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Room token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Version cache ttl (e.g., 24h)")
	fs.IntVar(&cacheEntries, "cache-max-entries", 0, "Version cache capacity")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Version cache sweep interval (e.g., 10m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			URI:           storageURI,
			Database:      storageDatabase,
			CommitTimeout: commitTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			TTL:        cacheTTL,
			MaxEntries: cacheEntries,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
