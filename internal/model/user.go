package model

import "time"

// User is the hosted auth service's view of an account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Organization string     `json:"organization"`
	Role         string     `json:"role"`
	AvatarURL    string     `json:"avatar_url"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}
