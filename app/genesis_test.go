package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
)

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	good := filepath.Join(dir, "good.json")
	content := `{"chain_id": "test-chain", "app_options": {"vault": {"required_signatures": 2}}}`
	assert.Nil(t, ioutil.WriteFile(good, []byte(content), 0600))
	gen, err := LoadGenesis(good)
	assert.Nil(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	assert.Equal(t, 1, len(gen.AppOptions))

	bad := filepath.Join(dir, "bad.json")
	assert.Nil(t, ioutil.WriteFile(bad, []byte(`{"chain_id": `), 0600))
	_, err = LoadGenesis(bad)
	assert.IsErr(t, errors.ErrInput, err)

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.IsErr(t, errors.ErrInput, err)
}
