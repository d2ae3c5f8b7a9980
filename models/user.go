// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the editable part of a user record as it is exposed over HTTP.
type Profile struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"`
}

// ProfileUpdate is a partial update of the profile fields.
// A nil field is left untouched. Every field must be a JSON string:
// decoding an array or an object into it fails.
type ProfileUpdate struct {
	Email          *string `json:"email,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// Apply returns p with every non-nil field of u written over it.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.ProfilePicture != nil {
		p.ProfilePicture = *u.ProfilePicture
	}
	return p
}

// Fields returns the JSON names of the fields carried by the update.
func (u ProfileUpdate) Fields() []string {
	fields := make([]string, 0, 4)
	if u.Email != nil {
		fields = append(fields, "email")
	}
	if u.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if u.LastName != nil {
		fields = append(fields, "last_name")
	}
	if u.ProfilePicture != nil {
		fields = append(fields, "profile_picture")
	}
	return fields
}
