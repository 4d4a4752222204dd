package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuestAuthor(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		password string
		wantErr  bool
	}{
		{name: "valid", nickname: "anon", password: "secret"},
		{name: "trimmed nickname", nickname: "  anon  ", password: "secret"},
		{name: "empty nickname", nickname: "", password: "secret", wantErr: true},
		{name: "blank nickname", nickname: "   ", password: "secret", wantErr: true},
		{name: "empty password", nickname: "anon", password: "", wantErr: true},
		{name: "72 byte password", nickname: "anon", password: strings.Repeat("a", MaxPasswordBytes)},
		{name: "multi-byte password over 72 bytes", nickname: "anon", password: strings.Repeat("비", 30), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := NewGuestAuthor(tt.nickname, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "anon", author.Nickname)
			assert.NotEqual(t, tt.password, author.PasswordHash)
			assert.True(t, author.VerifyPassword(tt.password))
		})
	}
}

func TestGuestAuthor_VerifyPassword(t *testing.T) {
	author, err := NewGuestAuthor("anon", "secret")
	require.NoError(t, err)

	assert.True(t, author.VerifyPassword("secret"))
	assert.False(t, author.VerifyPassword("wrong"))
	assert.False(t, author.VerifyPassword(""))
	assert.False(t, GuestAuthor{Nickname: "anon"}.VerifyPassword("secret"))
}

func TestNewMemberAuthor(t *testing.T) {
	_, err := NewMemberAuthor(0)
	assert.ErrorIs(t, err, ErrInvalidAuthor)

	author, err := NewMemberAuthor(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), author.UserID)
}

func TestNewPost_MemberAuthor(t *testing.T) {
	post := NewPost(1, "T", "C", MemberAuthor{UserID: 3})

	require.NotNil(t, post.WriterUserID)
	assert.Equal(t, uint64(3), *post.WriterUserID)
	assert.Nil(t, post.NonMemNick)
	assert.Nil(t, post.NonMemPwHash)
	assert.Equal(t, MemberAuthor{UserID: 3}, post.Author())
}

func TestNewPost_GuestAuthor(t *testing.T) {
	guest, err := NewGuestAuthor("anon", "secret")
	require.NoError(t, err)

	post := NewPost(1, "T", "C", guest)

	assert.Nil(t, post.WriterUserID)
	require.NotNil(t, post.NonMemNick)
	assert.Equal(t, "anon", *post.NonMemNick)

	author, ok := post.Author().(GuestAuthor)
	require.True(t, ok)
	assert.True(t, author.VerifyPassword("secret"))
}

func TestPost_AuthorWithoutColumns(t *testing.T) {
	post := &Post{ID: 1}
	assert.Nil(t, post.Author())
}

func TestCreatePostRequest_HasGuestCredentials(t *testing.T) {
	assert.False(t, (&CreatePostRequest{}).HasGuestCredentials())
	assert.True(t, (&CreatePostRequest{NonMemNick: "anon"}).HasGuestCredentials())
	assert.True(t, (&CreatePostRequest{NonMemPw: "pw"}).HasGuestCredentials())
}
