package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-profile-editor/models"
)

const usersTable = "users"

const (
	columnID             = "id"
	columnEmail          = "email"
	columnFirstName      = "first_name"
	columnLastName       = "last_name"
	columnProfilePicture = "profile_picture"
	columnPlatforms      = "platforms"
	columnUpdatedAt      = "updated_at"
)

// buildGetProfileQuery selects the four profile columns of one user.
func buildGetProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.
		Select(columnEmail, columnFirstName, columnLastName, columnProfilePicture).
		From(usersTable).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}

// buildGetPlatformsQuery selects the JSON platform list of one user.
func buildGetPlatformsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.
		Select(columnPlatforms).
		From(usersTable).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}

// buildUpdateUserQuery builds a single UPDATE writing the non-nil fields of
// update and, when platforms is non-nil, the platform list.
// updated_at is always set, so the statement is never empty and a missing
// row always shows up as zero affected rows.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID string, update models.ProfileUpdate, platforms []models.Platform) (string, []any, error) {
	query := b.Update(usersTable).Set(columnUpdatedAt, sq.Expr("CURRENT_TIMESTAMP"))

	if update.Email != nil {
		query = query.Set(columnEmail, *update.Email)
	}
	if update.FirstName != nil {
		query = query.Set(columnFirstName, *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set(columnLastName, *update.LastName)
	}
	if update.ProfilePicture != nil {
		query = query.Set(columnProfilePicture, *update.ProfilePicture)
	}

	if platforms != nil {
		encoded, err := encodePlatforms(platforms)
		if err != nil {
			return "", nil, err
		}
		query = query.Set(columnPlatforms, encoded)
	}

	return query.Where(sq.Eq{columnID: userID}).ToSql()
}

// encodePlatforms renders the list as the JSON text stored in the platforms
// column. A nil list is stored as [].
func encodePlatforms(platforms []models.Platform) (string, error) {
	if platforms == nil {
		platforms = []models.Platform{}
	}
	raw, err := json.Marshal(platforms)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPlatforms, err)
	}
	return string(raw), nil
}

// decodePlatforms parses the platforms column. NULL and empty values decode
// to an empty list.
func decodePlatforms(raw []byte) ([]models.Platform, error) {
	platforms := make([]models.Platform, 0)
	if len(raw) == 0 {
		return platforms, nil
	}
	if err := json.Unmarshal(raw, &platforms); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingPlatforms, err)
	}
	if platforms == nil {
		platforms = make([]models.Platform, 0)
	}
	return platforms, nil
}
