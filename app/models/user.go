// Package models defines the rows and request bodies shared across handlers.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID               int64     `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	StripeCustomerID string    `db:"stripe_customer_id"`
	CreatedAt        time.Time `db:"created_at"`
}

// UserID is the client-supplied account id. Browsers keep it in localStorage
// and send it back as a string, so both JSON numbers and numeric strings decode.
type UserID int64

var ErrInvalidUserID = errors.New("invalid user id")

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*id = 0
			return nil
		}
		parsed, err := ParseUserID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return ErrInvalidUserID
	}
	*id = UserID(n)
	return nil
}

// ParseUserID parses a path or query parameter into a positive UserID.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidUserID
	}
	return UserID(n), nil
}

// Valid reports whether the id was supplied.
func (id UserID) Valid() bool { return id > 0 }

func (id UserID) Int64() int64 { return int64(id) }

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }
