package config

import (
	"errors"
	"flag"
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

// parseFlags parses the configuration flags found in args (without the
// program name). Both binaries share one flag set.
//
// Flags:
//
//	-a              http server address in format [host]:[port]
//	-grpc-address   grpc server address in format [host]:[port]
//	-d              database DSN
//	-db-driver      database driver: postgres or sqlite
//	-pictures       picture storage backend: file, cloudinary or gcs
//	-pictures-dir   directory of the file picture backend
//	-request-timeout request timeout (e.g. "30s")
//	-redis-address  redis address, enables the cache
//	-kafka-brokers  comma-separated kafka brokers, enables profile events
//	-c/-config      config file path (json, yaml, toml)
//	-server         server base URL used by the client
//	-user-id        user id edited by the client
//	-token          JWT carrying the user id in its subject
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var picturesBackend, picturesDir string
	var requestTimeout time.Duration
	var redisAddress, kafkaBrokers string
	var configPath string
	var adapterAddress string
	var userID, token string

	fs := flag.NewFlagSet("profile-editor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&picturesBackend, "pictures", "", "Picture storage backend (file, cloudinary, gcs)")
	fs.StringVar(&picturesDir, "pictures-dir", "", "Picture storage directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&kafkaBrokers, "kafka-brokers", "", "Comma-separated Kafka brokers")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL")
	fs.StringVar(&userID, "user-id", "", "User ID to edit")
	fs.StringVar(&token, "token", "", "Session JWT")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Pictures: Pictures{
				Backend: picturesBackend,
				Dir:     picturesDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			RedisAddress: redisAddress,
		},
		Events: Events{
			KafkaBrokers: splitList(kafkaBrokers),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			UserID: userID,
			Token:  token,
		},
		ConfigFilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress,
// or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
