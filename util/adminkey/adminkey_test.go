package adminkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	g := New("sekrit")

	require.True(t, g.Authorize("sekrit"))
	require.False(t, g.Authorize("wrong"))
	require.False(t, g.Authorize("sekrit "))
	require.False(t, g.Authorize(""))
}

func TestAuthorize_EmptySecret(t *testing.T) {
	g := New("")
	require.False(t, g.Authorize(""))
}
