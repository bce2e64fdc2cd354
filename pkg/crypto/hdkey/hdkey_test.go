package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bip32 "github.com/tyler-smith/go-bip32"

	"github.com/seedkit/seedkit/pkg/encoding/base58"
)

// Seed from the first BIP-39 test vector (entropy 0x00*16, passphrase
// "TREZOR").
const vectorSeedHex = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553" +
	"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

func vectorSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := hex.DecodeString(vectorSeedHex)
	require.NoError(t, err)
	return seed
}

func TestDeriveMasterSeedLength(t *testing.T) {
	tests := []struct {
		name    string
		seedLen int
		wantErr bool
	}{
		{"64 bytes", 64, false},
		{"empty", 0, true},
		{"16 bytes", 16, true},
		{"63 bytes", 63, true},
		{"65 bytes", 65, true},
		{"128 bytes", 128, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := DeriveMaster(make([]byte, tt.seedLen))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSeedLength)
				assert.Nil(t, km)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, km)
			}
		})
	}
}

func TestDeriveMasterSplitsHMAC(t *testing.T) {
	seed := vectorSeed(t)

	km, err := DeriveMaster(seed)
	require.NoError(t, err)

	mac := hmac.New(sha512.New, []byte("Bitcoin seed"))
	mac.Write(seed)
	want := mac.Sum(nil)

	assert.Equal(t, want[:32], km.PrivateKey[:])
	assert.Equal(t, want[32:], km.ChainCode[:])
}

func TestExtendedPrivateKeyMatchesBIP32(t *testing.T) {
	seed := vectorSeed(t)

	km, err := DeriveMaster(seed)
	require.NoError(t, err)

	ref, err := bip32.NewMasterKey(seed)
	require.NoError(t, err)

	assert.Equal(t, ref.String(), km.ExtendedPrivateKey())
	assert.Equal(t, ref.Key, km.PrivateKey[:])
	assert.Equal(t, ref.ChainCode, km.ChainCode[:])
}

func TestExtendedPrivateKeyLayout(t *testing.T) {
	km, err := DeriveMaster(vectorSeed(t))
	require.NoError(t, err)

	xprv := km.ExtendedPrivateKey()
	payload, err := base58.CheckDecode(xprv)
	require.NoError(t, err)
	require.Len(t, payload, 78)

	assert.Equal(t, []byte{0x04, 0x88, 0xAD, 0xE4}, payload[0:4], "version")
	assert.Equal(t, make([]byte, 9), payload[4:13], "depth, fingerprint, child number")
	assert.Equal(t, km.ChainCode[:], payload[13:45], "chain code")
	assert.Equal(t, byte(0x00), payload[45], "key prefix")
	assert.Equal(t, km.PrivateKey[:], payload[46:78], "private key")
}

// Known uncompressed WIF for the private key 0x...01.
func TestWIFKnownVector(t *testing.T) {
	km := new(KeyMaterial)
	km.PrivateKey[31] = 0x01

	assert.Equal(t, "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", km.WIF())
}

func TestWIFLayout(t *testing.T) {
	km, err := DeriveMaster(vectorSeed(t))
	require.NoError(t, err)

	payload, err := base58.CheckDecode(km.WIF())
	require.NoError(t, err)
	require.Len(t, payload, 33)

	assert.Equal(t, byte(0x80), payload[0], "version byte")
	assert.Equal(t, km.PrivateKey[:], payload[1:], "private key")
	// No 0x01 compression suffix: the payload is exactly version+key.
}

func TestDeriveMasterDeterministic(t *testing.T) {
	seed := vectorSeed(t)

	a, err := DeriveMaster(seed)
	require.NoError(t, err)
	b, err := DeriveMaster(seed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestZero(t *testing.T) {
	km, err := DeriveMaster(vectorSeed(t))
	require.NoError(t, err)

	km.Zero()
	assert.Equal(t, [KeyLength]byte{}, km.PrivateKey)
	assert.Equal(t, [ChainCodeLength]byte{}, km.ChainCode)
}
