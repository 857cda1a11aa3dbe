package contract

import (
	"encoding/json"
	"gsc-contract/util/log"
)

// Creation summarizes a CreateSmartContract transaction.
type Creation struct {
	TxID            string  `json:"txID"`
	OwnerAddress    Address `json:"owner_address"`
	ContractAddress Address `json:"contract_address"`
}

// NewCreation derives the contract address of a creation transaction.
// A creation transaction always carries raw data, empty input is rejected.
func NewCreation(rawData []byte, owner Address) (*Creation, error) {
	if len(rawData) == 0 {
		return nil, ErrEmptyPayload
	}

	contractAddr, err := DeriveAddress(rawData, owner[:])
	if err != nil {
		return nil, err
	}

	c := &Creation{
		TxID:            TxID(rawData),
		OwnerAddress:    owner,
		ContractAddress: contractAddr,
	}

	log.Debugf("Contract %s created by %s in tx %s", c.ContractAddress, c.OwnerAddress, c.TxID)

	return c, nil
}

// JSON returns the indented JSON form of the summary.
func (c *Creation) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "    ")
}
