package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"gsc-contract/abi"
	"gsc-contract/contract"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteABI(t *testing.T) {
	var out bytes.Buffer
	raw := []byte(`[{"type":"function","name":"name","inputs":[],"outputs":[{"name":"","type":"string"}],"constant":true}]`)

	require.NoError(t, writeABI(&out, raw))

	var decoded struct {
		Entries []struct {
			Name    string `json:"name"`
			Type    string `json:"type"`
			Outputs []struct {
				Type string `json:"type"`
			} `json:"outputs"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded), out.String())
	require.Len(t, decoded.Entries, 1)
	assert.Equal(t, "name", decoded.Entries[0].Name)
	assert.Equal(t, "Function", decoded.Entries[0].Type)
	assert.Equal(t, "string", decoded.Entries[0].Outputs[0].Type)
}

func TestWriteABIRejected(t *testing.T) {
	var out bytes.Buffer

	err := writeABI(&out, []byte(`[{"type":"function"}]`))
	assert.True(t, errors.Is(err, abi.ErrMissingInputs), "get %v", err)
	assert.Zero(t, out.Len())
}

func TestWriteCreation(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeCreation(&out, "0x6465706c6f7920636f6e74", "262daebb11f20b68a2035519a8553b597bb7dbbfa4"))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded), out.String())
	assert.Equal(t, "016bc1e44ea58c60f20278a7cefc447fe1f6d388542f4153c733881c69d87bda", decoded["txID"])
	assert.Equal(t, "262daebb11f20b68a2035519a8553b597bb7dbbfa4", decoded["owner_address"])
	assert.Equal(t, "26142430c7730d6bf5c7dc09f9c537dab7a85d6551", decoded["contract_address"])
}

func TestWriteCreationErrors(t *testing.T) {
	owner := "262daebb11f20b68a2035519a8553b597bb7dbbfa4"

	testCases := map[string][2]string{
		"bad hex":       {"0xzz", owner},
		"bad owner":     {"0a02", "0x26"},
		"empty payload": {"", owner},
	}

	for name, args := range testCases {
		var out bytes.Buffer
		err := writeCreation(&out, args[0], args[1])
		require.Error(t, err, name)
		assert.Zero(t, out.Len(), name)
	}

	var out bytes.Buffer
	err := writeCreation(&out, "", owner)
	assert.True(t, errors.Is(err, contract.ErrEmptyPayload), "get %v", err)
}
