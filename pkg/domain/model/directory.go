package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// DirectoryUser is the projection of a Rootly user this service needs
type DirectoryUser struct {
	ID    types.DirectoryUserID `json:"id" firestore:"id"`
	Name  string                `json:"name" firestore:"name"`
	Email string                `json:"email" firestore:"email"`
}

// Label returns the display text used in select menus
func (u *DirectoryUser) Label() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}

// Matches reports whether the query is a case-insensitive substring of the
// user's name or email. An empty query matches everyone.
func (u *DirectoryUser) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Email), q)
}

// FindDirectoryUser returns the user with the given ID, or nil
func FindDirectoryUser(users []*DirectoryUser, id types.DirectoryUserID) *DirectoryUser {
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// SelectOption is a single entry of a Slack external select menu
type SelectOption struct {
	Label string
	Value string
}

// ErrorOptionValue is the option value returned when the directory could
// not be loaded. Submitting it is rejected by modal validation.
const ErrorOptionValue = "error"

// NewSelectOption builds a select option for a directory user
func NewSelectOption(u *DirectoryUser) SelectOption {
	return SelectOption{Label: u.Label(), Value: u.ID.String()}
}

// CacheEntry is the cached full directory listing
type CacheEntry struct {
	Users     []*DirectoryUser `firestore:"users"`
	FetchedAt time.Time        `firestore:"fetched_at"`
	ExpiresAt time.Time        `firestore:"expires_at"`
}

// IsFresh reports whether the entry is still within its TTL at now
func (e *CacheEntry) IsFresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
