package tools

import (
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// EncryptPassword derives the stored password hash. The email is mixed in so
// equal passwords never share a hash.
func EncryptPassword(email, password string) string {
	encoded := EncryptTextSHA512(password)
	encoded = email + ":" + encoded
	return EncryptTextSHA512(encoded)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func CheckPassword(password string) string {
	if len(password) < 8 {
		return "password"
	}
	return ""
}

// IsURL accepts absolute http(s) URLs only.
func IsURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
