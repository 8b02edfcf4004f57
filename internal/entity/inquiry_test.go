package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInquiryTrimsFields(t *testing.T) {
	inquiry, err := NewInquiry("  Ada  ", " ada@example.com ", "  ", " Hello\nthere \n")
	require.NoError(t, err)

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "Ada", inquiry.Name)
	assert.Equal(t, "ada@example.com", inquiry.Email)
	assert.Equal(t, "", inquiry.Phone)
	assert.False(t, inquiry.HasPhone())
	assert.Equal(t, "Hello\nthere", inquiry.Message)
	assert.False(t, inquiry.ReceivedAt.IsZero())
}

func TestNewInquiryRequiresFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  [4]string
		wantErr error
	}{
		{"missing name", [4]string{"", "a@b.c", "", "hi"}, ErrNameRequired},
		{"blank name", [4]string{"   ", "a@b.c", "", "hi"}, ErrNameRequired},
		{"missing email", [4]string{"Ada", "", "", "hi"}, ErrEmailRequired},
		{"missing message", [4]string{"Ada", "a@b.c", "555", "\n\t"}, ErrMessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inquiry, err := NewInquiry(tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3])
			assert.Nil(t, inquiry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewInquiryAcceptsAnyEmailText(t *testing.T) {
	inquiry, err := NewInquiry("A", "bad", "", "hi")
	require.NoError(t, err)
	assert.Equal(t, "bad", inquiry.Email)
}

func TestNewInquiryDistinctIDs(t *testing.T) {
	a, err := NewInquiry("A", "a@b.c", "", "hi")
	require.NoError(t, err)
	b, err := NewInquiry("A", "a@b.c", "", "hi")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
