// Package models defines client-side data models used by the netflex CLI.
package models

import (
	"fmt"
	"strings"
)

// User mirrors one entry of the remote user directory. The remote service
// owns its identity; the client only keeps the last fetched copy.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func (u User) String() string {
	return fmt.Sprintf("%d\t%s\t%s", u.ID, u.Username, u.Fullname)
}

// NewUser is the create-user form.
type NewUser struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Required field names of the create-user form.
const (
	FieldFullname = "fullname"
	FieldUsername = "username"
	FieldPassword = "password"
)

// MissingFields reports the required fields left blank, in form order.
func (n NewUser) MissingFields() ValidationErrors {
	var errs ValidationErrors
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			if errs == nil {
				errs = ValidationErrors{}
			}
			errs[field] = []string{"The " + field + " field is required."}
		}
	}
	check(FieldFullname, n.Fullname)
	check(FieldUsername, n.Username)
	check(FieldPassword, n.Password)
	return errs
}

// ValidationErrors maps a form field to its human-readable messages.
type ValidationErrors map[string][]string

// Clone returns a deep copy; nil stays nil.
func (v ValidationErrors) Clone() ValidationErrors {
	if v == nil {
		return nil
	}
	out := make(ValidationErrors, len(v))
	for field, msgs := range v {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}
