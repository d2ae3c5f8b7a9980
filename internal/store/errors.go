package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no row of the users table matches the id.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownDriver is returned by [NewConnect] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrEncodingPlatforms is returned when the platform list cannot be
	// serialized to the JSON column.
	ErrEncodingPlatforms = errors.New("failed to encode platforms")

	// ErrDecodingPlatforms is returned when the JSON column holds
	// something other than a list of platforms.
	ErrDecodingPlatforms = errors.New("failed to decode platforms")
)

// Picture storage and cache errors.
var (
	// ErrStoringPicture is returned when a blob cannot be written.
	ErrStoringPicture = errors.New("failed to store picture")

	// ErrDeletingPicture is returned when a blob cannot be removed.
	ErrDeletingPicture = errors.New("failed to delete picture")

	// ErrForeignPicture is returned by Delete for references that do not
	// belong to the storage, e.g. an URL set through PUT /users/{id}.
	ErrForeignPicture = errors.New("picture reference does not belong to storage")

	// ErrCacheMiss is returned by cache getters when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)
