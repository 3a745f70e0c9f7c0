package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "handle wins",
			user: User{ID: 1, Username: "alice", FirstName: "Alice", LastName: "Liddell"},
			want: "@alice",
		},
		{
			name: "full name when no handle",
			user: User{ID: 1, FirstName: "Alice", LastName: "Liddell"},
			want: "Alice Liddell",
		},
		{
			name: "first name alone",
			user: User{ID: 1, FirstName: "Alice"},
			want: "Alice",
		},
		{
			name: "numeric fallback",
			user: User{ID: 7},
			want: "user 7",
		},
		{
			name: "whitespace handle is ignored",
			user: User{ID: 7, Username: "   "},
			want: "user 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestParseActionKind(t *testing.T) {
	for _, valid := range []string{"truth", "dare"} {
		got, err := ParseActionKind(valid)
		assert.NoError(t, err)
		assert.Equal(t, ActionKind(valid), got)
	}

	_, err := ParseActionKind("riddle")
	assert.ErrorIs(t, err, ErrInvalidActionKind)
	_, err = ParseActionKind("")
	assert.ErrorIs(t, err, ErrInvalidActionKind)
}
