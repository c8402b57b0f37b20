package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	k1, err := DeriveKey("hunter2")
	require.NoError(t, err)
	k2, err := DeriveKey("hunter2")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	other, err := DeriveKey("hunter3")
	require.NoError(t, err)
	assert.NotEqual(t, k1, other)
}

func TestSealOpenRoundTrip(t *testing.T) {
	key, err := DeriveKey("token")
	require.NoError(t, err)

	ct, err := Seal([]byte(`{"type":"PASTE"}`), key)
	require.NoError(t, err)
	assert.NotContains(t, string(ct), "PASTE")

	plain, err := Open(ct, key)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"PASTE"}`, string(plain))
}

func TestOpenRejectsWrongKey(t *testing.T) {
	key, err := DeriveKey("token")
	require.NoError(t, err)
	wrong, err := DeriveKey("other")
	require.NoError(t, err)

	ct, err := Seal([]byte("hello"), key)
	require.NoError(t, err)

	_, err = Open(ct, wrong)
	assert.Error(t, err)
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	key, err := DeriveKey("token")
	require.NoError(t, err)

	ct, err := Seal([]byte("hello"), key)
	require.NoError(t, err)
	ct[len(ct)-1] ^= 0xff

	_, err = Open(ct, key)
	assert.Error(t, err)
}

func TestOpenRejectsShortCiphertext(t *testing.T) {
	key, err := DeriveKey("token")
	require.NoError(t, err)

	_, err = Open([]byte("short"), key)
	assert.ErrorContains(t, err, "too short")
}
