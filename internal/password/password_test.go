package password_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohammadpnp/customer-import/internal/password"
)

var fastParams = password.Params{LogN: 10, R: 8, P: 1}

func TestHashAndVerify(t *testing.T) {
	hasher := password.NewHasher(fastParams)

	encoded, err := hasher.Hash("temppass123")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Len(t, raw, 96)
	require.Equal(t, "scrypt", string(raw[:6]))
	require.Equal(t, byte(10), raw[7])

	ok, err := hasher.Verify("temppass123", encoded)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = hasher.Verify("wrong-password", encoded)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashUsesRandomSalt(t *testing.T) {
	hasher := password.NewHasher(fastParams)

	first, err := hasher.Hash("temppass123")
	require.NoError(t, err)
	second, err := hasher.Hash("temppass123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyRejectsTamperedHeader(t *testing.T) {
	raw, err := password.Hash("temppass123", fastParams)
	require.NoError(t, err)

	raw[9] ^= 0xff
	_, err = password.Verify("temppass123", raw)
	require.Error(t, err)
}

func TestVerifyRejectsMalformedInput(t *testing.T) {
	hasher := password.NewHasher(fastParams)

	_, err := hasher.Verify("temppass123", "not base64!")
	require.Error(t, err)

	_, err = password.Verify("temppass123", []byte("scrypt"))
	require.Error(t, err)
}

func TestDefaultParams(t *testing.T) {
	require.Equal(t, password.Params{LogN: 15, R: 8, P: 1}, password.DefaultParams())
}
