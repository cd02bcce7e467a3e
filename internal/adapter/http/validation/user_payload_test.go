package validation_test

import (
	"testing"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/adapter/http/validation"
	"todoboard/pkg/apierrors"

	"github.com/stretchr/testify/require"
)

func TestBuildUserInput_Valid(t *testing.T) {
	input, err := validation.BuildUserInput(dto.UserRequest{
		Username: "  alice ",
		Email:    " alice@example.com ",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", input.Username)
	require.Equal(t, "alice@example.com", input.Email)
	require.False(t, input.CreatedAt.IsZero())
}

func TestBuildUserInput_MissingFields(t *testing.T) {
	cases := []dto.UserRequest{
		{Username: "", Email: "alice@example.com"},
		{Username: "alice", Email: "   "},
		{},
	}

	for _, req := range cases {
		_, err := validation.BuildUserInput(req)
		require.Error(t, err)

		verr, ok := err.(*apierrors.ValidationError)
		require.True(t, ok)
		require.Equal(t, []string{apierrors.MsgUserFieldsRequired}, verr.Keys)
	}
}
