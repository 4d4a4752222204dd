package domain

import (
	"time"
)

// Post represents a board post (posts table).
// Exactly one of WriterUserID or (NonMemNick, NonMemPwHash) is set.
type Post struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BoardID      uint64    `gorm:"column:board_id;index;not null" json:"board_id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	WriterUserID *uint64   `gorm:"column:writer_user_id;index" json:"writer_user_id,omitempty"`
	NonMemNick   *string   `gorm:"column:non_mem_nick;type:varchar(50)" json:"non_mem_nick,omitempty"`
	NonMemPwHash *string   `gorm:"column:non_mem_pw_hash;type:varchar(100)" json:"-"`
	Views        uint64    `gorm:"column:views;not null;default:0" json:"views"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }

// NewPost builds a post for the given author
func NewPost(boardID uint64, title, content string, author Author) *Post {
	post := &Post{
		BoardID: boardID,
		Title:   title,
		Content: content,
	}

	switch a := author.(type) {
	case MemberAuthor:
		id := a.UserID
		post.WriterUserID = &id
	case GuestAuthor:
		nick, hash := a.Nickname, a.PasswordHash
		post.NonMemNick = &nick
		post.NonMemPwHash = &hash
	}

	return post
}

// Author reconstructs the authorship variant from the stored columns
func (p *Post) Author() Author {
	if p.NonMemPwHash != nil {
		a := GuestAuthor{PasswordHash: *p.NonMemPwHash}
		if p.NonMemNick != nil {
			a.Nickname = *p.NonMemNick
		}
		return a
	}
	if p.WriterUserID != nil {
		return MemberAuthor{UserID: *p.WriterUserID}
	}
	return nil
}

// CreatePostRequest request to create a post.
// NonMemNick / NonMemPw are only accepted from unauthenticated callers.
type CreatePostRequest struct {
	BoardID    uint64 `json:"board_id" binding:"required,min=1"`
	Title      string `json:"title" binding:"required,max=255"`
	Content    string `json:"content" binding:"required"`
	NonMemNick string `json:"non_mem_nick" binding:"omitempty,max=50"`
	NonMemPw   string `json:"non_mem_pw" binding:"omitempty,max=72"`
}

// HasGuestCredentials reports whether any non-member field was supplied
func (r *CreatePostRequest) HasGuestCredentials() bool {
	return r.NonMemNick != "" || r.NonMemPw != ""
}

// UpdatePostRequest content-only update
type UpdatePostRequest struct {
	Content  string `json:"contents" binding:"required"`
	NonMemPw string `json:"non_mem_pw"`
}

// DeletePostRequest carries the guest password when deleting a guest post
type DeletePostRequest struct {
	NonMemPw string `json:"non_mem_pw"`
}

// ListPostsRequest page of a board
type ListPostsRequest struct {
	BoardID uint64 `form:"board_id"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

// PostSummary list row
type PostSummary struct {
	ID        uint64    `gorm:"column:id" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Writer    string    `gorm:"column:writer" json:"writer"`
	Views     uint64    `gorm:"column:views" json:"views"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"update_time"`
}

// PostDetail single post view
type PostDetail struct {
	ID        uint64    `json:"id"`
	BoardID   uint64    `json:"board_id"`
	Title     string    `json:"title"`
	Writer    string    `json:"writer"`
	Contents  string    `json:"contents"`
	Views     uint64    `json:"views"`
	Images    []uint64  `json:"images"`
	Updatable bool      `json:"updatable"`
	UpdatedAt time.Time `json:"update_time"`
}
