package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the command-line configuration flags in args.
//
// Flags:
//
//	-a web server address in format [host]:[port]
//	-server-url address of a running web server (terminal client remote mode)
//	-d database file path
//	-c/-config json file path with configs
//	-env-file path of the .env file to load
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-provider translation provider (gemini, openai)
//	-model translation model
//	-translate-timeout timeout of one translation call
//	-breaker-failures consecutive translation failures that open the breaker
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var requestTimeout time.Duration
	var provider string
	var model string
	var translateTimeout time.Duration
	var breakerFailures uint

	fs := flag.NewFlagSet("go-todo-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Address of a running web server")
	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Path of the .env file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&provider, "provider", "", "Translation provider (gemini, openai)")
	fs.StringVar(&model, "model", "", "Translation model")
	fs.DurationVar(&translateTimeout, "translate-timeout", 0, "Timeout of one translation call")
	fs.UintVar(&breakerFailures, "breaker-failures", 0, "Consecutive failures that open the translation breaker")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
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
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Translator: Translator{
			Provider:        strings.ToLower(provider),
			Model:           model,
			Timeout:         translateTimeout,
			BreakerFailures: uint32(breakerFailures),
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
