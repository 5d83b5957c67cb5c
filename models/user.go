// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a person going through onboarding.
//
// A user is identified by its numeric UserID and by a unique, case-sensitive
// Email. Every onboarding submission with a known email overwrites the
// mutable profile fields (FullName, Phone, CurrentRole, TargetRole) in place;
// no history is kept.
type User struct {
	// UserID is the server-assigned primary key.
	UserID int64 `json:"id"`

	// Email is the unique identity of the user as submitted.
	Email string `json:"email"`

	// FullName is the display name of the user. Required.
	FullName string `json:"full_name"`

	// Phone is an optional contact number.
	Phone *string `json:"phone,omitempty"`

	// CurrentRole is the optional role the user holds today.
	CurrentRole *string `json:"current_role,omitempty"`

	// TargetRole is the optional role the user is aiming for.
	TargetRole *string `json:"target_role,omitempty"`

	// CreatedAt is the time the user row was first inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time of the latest profile overwrite.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the identity fields echoed back in the onboarding envelope.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:   u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}

// UserSummary is the short identity echo returned after a submission.
type UserSummary struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
