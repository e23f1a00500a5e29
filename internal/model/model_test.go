package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/optional"
)

func newTestUser(id uint, loginID string) *User {
	u := NewUser(loginID, "hashed", "sihyun", loginID+"@example.com", "Hi")
	u.ID = id
	return u
}

func TestNewUser_StartsActive(t *testing.T) {
	u := NewUser("123syihyun123", "hashed", "sihyun", "111lch_n9@df.com", "Hi")

	assert.Equal(t, UserStatusActive, u.Status)
	assert.False(t, u.IsWithdrawn())
	assert.Nil(t, u.StatusModifiedAt)
}

func TestUser_Withdraw(t *testing.T) {
	u := newTestUser(1, "123syihyun123")
	u.UpdateRefreshToken("refresh")

	before := time.Now()
	require.NoError(t, u.Withdraw(time.Now()))

	assert.True(t, u.IsWithdrawn())
	require.NotNil(t, u.StatusModifiedAt)
	assert.False(t, u.StatusModifiedAt.Before(before))
	assert.False(t, u.StatusModifiedAt.After(time.Now()))
	assert.Empty(t, u.RefreshToken)
}

func TestUser_WithdrawTwice(t *testing.T) {
	u := newTestUser(1, "123syihyun123")
	require.NoError(t, u.Withdraw(time.Now()))
	first := *u.StatusModifiedAt

	err := u.Withdraw(time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, apperrors.ErrAlreadyWithdrawn)
	assert.Equal(t, first, *u.StatusModifiedAt)
}

func TestUser_UpdateProfileAndPassword(t *testing.T) {
	u := newTestUser(1, "123syihyun123")

	u.UpdateProfile("Updated Name", "Updated Description")
	u.UpdatePassword("new-hash")

	assert.Equal(t, "Updated Name", u.Name)
	assert.Equal(t, "Updated Description", u.Description)
	assert.Equal(t, "new-hash", u.PasswordHash)
	assert.Equal(t, "123syihyun123", u.LoginID)
}

func TestRecipe_LikeCounter(t *testing.T) {
	r := NewRecipe(newTestUser(1, "123syihyun123"), "Test Recipe", "Test content")
	assert.Zero(t, r.LikeCount)

	r.AddLike()
	assert.Equal(t, int64(1), r.LikeCount)
	r.MinusLike()
	assert.Equal(t, int64(0), r.LikeCount)

	// no floor at zero
	r.MinusLike()
	assert.Equal(t, int64(-1), r.LikeCount)
}

func TestRecipe_Update(t *testing.T) {
	tests := []struct {
		name        string
		title       optional.Value[string]
		content     optional.Value[string]
		wantTitle   string
		wantContent string
	}{
		{"title only", optional.Of("New title"), optional.None[string](), "New title", "Initial recipe content"},
		{"content only", optional.None[string](), optional.Of("New content"), "Initial Recipe Title", "New content"},
		{"both", optional.Of("New title"), optional.Of("New content"), "New title", "New content"},
		{"neither", optional.None[string](), optional.None[string](), "Initial Recipe Title", "Initial recipe content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecipe(newTestUser(1, "123syihyun123"), "Initial Recipe Title", "Initial recipe content")
			r.Update(tt.title, tt.content)
			assert.Equal(t, tt.wantTitle, r.Title)
			assert.Equal(t, tt.wantContent, r.Content)
		})
	}
}

func TestComment_LikeCounterAndUpdate(t *testing.T) {
	author := newTestUser(1, "123syihyun123")
	recipe := NewRecipe(author, "t", "c")
	recipe.ID = 7
	c := NewComment(recipe, author, "Test comment")

	assert.True(t, c.BelongsTo(7))
	assert.False(t, c.BelongsTo(8))

	c.MinusLike()
	assert.Equal(t, int64(-1), c.LikeCount)
	c.AddLike()
	assert.Equal(t, int64(0), c.LikeCount)

	c.Update(optional.None[string]())
	assert.Equal(t, "Test comment", c.Content)
	c.Update(optional.Of("Updated comment"))
	assert.Equal(t, "Updated comment", c.Content)
}

func TestAssertOwner(t *testing.T) {
	owner := newTestUser(1, "123syihyun123")
	other := newTestUser(2, "otheruser12")
	recipe := NewRecipe(owner, "t", "c")
	comment := NewComment(recipe, owner, "c")

	for _, entity := range []Owned{recipe, comment} {
		assert.NoError(t, AssertOwner(entity, owner))
		assert.ErrorIs(t, AssertOwner(entity, other), apperrors.ErrPermissionDenied)
		assert.ErrorIs(t, AssertOwner(entity, nil), apperrors.ErrPermissionDenied)
	}
}
