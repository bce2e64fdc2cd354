package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bip32 "github.com/tyler-smith/go-bip32"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/seedkit/seedkit/internal/validation"
)

const testSeedHex = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553" +
	"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

func TestMasterCommandJSON(t *testing.T) {
	cmd := NewMasterCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{testSeedHex, "--json"})

	require.NoError(t, cmd.Execute())

	var result map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	seed, err := validation.DecodeSeedHex(testSeedHex)
	require.NoError(t, err)
	ref, err := bip32.NewMasterKey(seed)
	require.NoError(t, err)

	assert.Equal(t, ref.String(), result["xprv"])
	assert.Len(t, result["private_key"], 64)
	assert.Len(t, result["chain_code"], 64)
	assert.NotEmpty(t, result["wif"])
}

func TestMasterCommandRejectsBadSeed(t *testing.T) {
	cmd := NewMasterCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"abcd"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, validation.ErrInvalidLength)
}

func TestMnemonicCommandJSON(t *testing.T) {
	cmd := NewMnemonicCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--bits", "128", "--json", "--show-entropy"})

	require.NoError(t, cmd.Execute())

	var result struct {
		Mnemonic  string `json:"mnemonic"`
		WordCount int    `json:"word_count"`
		Entropy   string `json:"entropy"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	assert.Equal(t, 12, result.WordCount)
	assert.Len(t, result.Entropy, 32)
	assert.True(t, bip39.IsMnemonicValid(result.Mnemonic),
		"generated phrase must be a valid standard mnemonic")
}

func TestMnemonicCommandRejectsBadBits(t *testing.T) {
	cmd := NewMnemonicCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--bits", "100"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, validation.ErrInvalidLength)
}
