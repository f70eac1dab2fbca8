// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered identity allowed through the gate.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Identity is the value carried in the envelope identity field: an
	// e-mail address, a user id or an opaque data string. It is unique.
	Identity string `json:"identity"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Locker is the locker assigned to the user, echoed back on admission.
	Locker string `json:"locker"`

	// CreatedAt is the moment the user was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
