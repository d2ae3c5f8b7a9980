package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPicturesConfigs indicates an unknown picture backend or
	// missing backend credentials.
	ErrInvalidPicturesConfigs = errors.New("invalid pictures configuration")
	// ErrInvalidEventsConfigs indicates brokers without a topic.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates that the client has no user to edit.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
