package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. The same code serves PostgreSQL and SQLite; the dialect only
// changes the placeholder format.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetProfile").Msg("failed to build query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&profile.Email, &profile.FirstName, &profile.LastName, &profile.ProfilePicture)
	if err != nil {
		return models.Profile{}, r.rowError(ctx, "*userRepository.GetProfile", userID, err)
	}

	return profile, nil
}

func (r *userRepository) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPlatformsQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetPlatforms").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = r.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, r.rowError(ctx, "*userRepository.GetPlatforms", userID, err)
	}

	platforms, err := decodePlatforms(raw)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetPlatforms").Str("user_id", userID).Msg("stored platforms are malformed")
		return nil, err
	}

	return platforms, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	return r.update(ctx, "*userRepository.UpdateProfile", userID, update, nil)
}

func (r *userRepository) ReplacePlatforms(ctx context.Context, userID string, platforms []models.Platform) error {
	if platforms == nil {
		platforms = []models.Platform{}
	}
	return r.update(ctx, "*userRepository.ReplacePlatforms", userID, models.ProfileUpdate{}, platforms)
}

func (r *userRepository) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	return r.update(ctx, "*userRepository.SaveProfile", userID, req.ProfileUpdate, req.Platforms)
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.PingContext(ctx)
}

// update runs a single UPDATE statement and reports [ErrUserNotFound] when
// no row was touched.
func (r *userRepository) update(ctx context.Context, fn, userID string, update models.ProfileUpdate, platforms []models.Platform) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder(), userID, update, platforms)
	if err != nil {
		log.Err(err).Str("func", fn).Str("user_id", userID).Msg("failed to build query")
		if errors.Is(err, ErrEncodingPlatforms) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Stringer("retry", r.classify(err)).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("user_id", userID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", fn).Str("user_id", userID).Msg("no user row was updated")
		return ErrUserNotFound
	}

	return nil
}

// rowError converts a QueryRow/Scan failure to a store error.
func (r *userRepository) rowError(ctx context.Context, fn, userID string, err error) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", fn).Str("user_id", userID).Msg("user was not found")
		return ErrUserNotFound
	}

	log.Err(err).
		Str("func", fn).
		Str("user_id", userID).
		Stringer("retry", r.classify(err)).
		Msg("failed to query user row")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
