package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// Genesis file format
type Genesis struct {
	ChainID    string         `json:"chain_id"`
	AppOptions bridge.Options `json:"app_options"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(bytes, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}
