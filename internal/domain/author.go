package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidAuthor is returned when an author cannot be constructed
var ErrInvalidAuthor = errors.New("invalid author")

// MaxPasswordBytes bcrypt 입력 한도 (룬이 아니라 바이트 기준)
const MaxPasswordBytes = 72

// Author is who wrote a post: either a MemberAuthor or a GuestAuthor.
// The interface is sealed; no other implementations exist.
type Author interface {
	isAuthor()
}

// MemberAuthor a post written by a registered user
type MemberAuthor struct {
	UserID uint64
}

// GuestAuthor a post written by a non-member.
// PasswordHash is a bcrypt hash and is the only credential for edit/delete.
type GuestAuthor struct {
	Nickname     string
	PasswordHash string
}

func (MemberAuthor) isAuthor() {}
func (GuestAuthor) isAuthor()  {}

// NewMemberAuthor creates a member author
func NewMemberAuthor(userID uint64) (MemberAuthor, error) {
	if userID == 0 {
		return MemberAuthor{}, ErrInvalidAuthor
	}
	return MemberAuthor{UserID: userID}, nil
}

// NewGuestAuthor creates a guest author, hashing the plaintext password
func NewGuestAuthor(nickname, password string) (GuestAuthor, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || password == "" || len(password) > MaxPasswordBytes {
		return GuestAuthor{}, ErrInvalidAuthor
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return GuestAuthor{}, err
	}

	return GuestAuthor{Nickname: nickname, PasswordHash: string(hash)}, nil
}

// VerifyPassword reports whether attempted matches the guest password
func (a GuestAuthor) VerifyPassword(attempted string) bool {
	if attempted == "" || a.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(attempted)) == nil
}
