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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-refresh-token-secret refresh token signing secret
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "15m")
//	-refresh-token-duration refresh token lifetime (e.g., "240h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-staging-dir upload staging directory
//	-media-upload-url media host upload endpoint
//	-media-api-key media host API key
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessTokenSecret string
	var refreshTokenSecret string
	var tokenIssuer string
	var accessTokenDuration time.Duration
	var refreshTokenDuration time.Duration
	var requestTimeout time.Duration
	var stagingDir string
	var mediaUploadURL string
	var mediaAPIKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessTokenSecret, "access-token-secret", "", "Access token signing secret")
	flag.StringVar(&refreshTokenSecret, "refresh-token-secret", "", "Refresh token signing secret")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g., 15m)")
	flag.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g., 240h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&stagingDir, "staging-dir", "", "Upload staging directory")
	flag.StringVar(&mediaUploadURL, "media-upload-url", "", "Media host upload endpoint")
	flag.StringVar(&mediaAPIKey, "media-api-key", "", "Media host API key")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:    accessTokenSecret,
			RefreshTokenSecret:   refreshTokenSecret,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Staging: Staging{
				Dir: stagingDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Media: Media{
			UploadURL: mediaUploadURL,
			APIKey:    mediaAPIKey,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
