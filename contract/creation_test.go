package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreation(t *testing.T) {
	owner, err := ParseAddress(ownerHex)
	require.NoError(t, err)
	rawData := []byte("deploy cont")

	creation, err := NewCreation(rawData, owner)
	require.NoError(t, err)

	wantTxID := "016bc1e44ea58c60f20278a7cefc447fe1f6d388542f4153c733881c69d87bda"
	wantAddr := "26142430c7730d6bf5c7dc09f9c537dab7a85d6551"

	assert.Equal(t, wantTxID, creation.TxID)
	assert.Equal(t, owner, creation.OwnerAddress)
	assert.Equal(t, wantAddr, creation.ContractAddress.Hex())

	b, err := creation.JSON()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, wantTxID, decoded["txID"])
	assert.Equal(t, ownerHex, decoded["owner_address"])
	assert.Equal(t, wantAddr, decoded["contract_address"])
}

func TestNewCreationEmptyPayload(t *testing.T) {
	owner, err := ParseAddress(ownerHex)
	require.NoError(t, err)

	for _, rawData := range [][]byte{nil, {}} {
		creation, err := NewCreation(rawData, owner)
		assert.Nil(t, creation)
		assert.ErrorIs(t, err, ErrEmptyPayload)
	}
}
