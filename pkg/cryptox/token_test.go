package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, TokenSize256)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestGenerateToken_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		require.Len(t, code, InviteCodeLength)

		for _, c := range code {
			require.True(t, strings.ContainsRune(inviteCodeCharset, c),
				"code %q contains character outside charset", code)
		}
		seen[code] = struct{}{}
	}

	// 32^8 possible codes; 50 draws colliding would indicate broken entropy.
	require.Len(t, seen, 50)
}

func TestSecureCompare(t *testing.T) {
	require.True(t, SecureCompare("admin-key", "admin-key"))
	require.False(t, SecureCompare("admin-key", "admin-kex"))
	require.False(t, SecureCompare("admin-key", "admin-key-longer"))
	require.True(t, SecureCompare("", ""))
}
