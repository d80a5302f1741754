package models

import (
	"strings"
	"time"
)

// User owns forms and the submissions collected against them.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Email        string     `gorm:"not null;unique" json:"email" form:"email"`
	Password     string     `gorm:"not null" json:"-" form:"password"`
	Name         string     `json:"name" form:"name"`
	Organization string     `json:"organization" form:"organization"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (user User) MissingFields() string {
	if strings.TrimSpace(user.Email) == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	}
	return ""
}
