package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/aquasecurity/table"
	"github.com/iov-one/bridge/crypto"
	"github.com/spf13/cobra"
)

func newKeysCmd(conf config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the private key of a validator",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate a new private key",
			Long: `Generate a new private key.

When successful a new file with binary content containing the private key is
created. This command fails if the private key file already exists.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := generateKey(conf.keyPath())
				if err != nil {
					return err
				}
				renderKey(cmd, key)
				return nil
			},
		},
		&cobra.Command{
			Use:   "address",
			Short: "Print the public key and addresses of the private key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := loadKey(conf.keyPath())
				if err != nil {
					return err
				}
				renderKey(cmd, key)
				return nil
			},
		},
	)
	return cmd
}

func generateKey(path string) (crypto.PrivateKey, error) {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		// Never overwrite a key. It must be deleted by hand first.
		return nil, fmt.Errorf("private key file %q already exists, delete this file and try again", path)
	}

	key := crypto.GenPrivKeyEd25519()
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(key); err != nil {
		return nil, fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return nil, fmt.Errorf("cannot close private key file: %s", err)
	}
	return key, nil
}

func loadKey(path string) (crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	switch len(raw) {
	case crypto.SeedSize:
		return crypto.PrivKeyEd25519FromSeed(raw), nil
	case 2 * crypto.SeedSize:
		return crypto.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("invalid private key length: %d", len(raw))
	}
}

func renderKey(cmd *cobra.Command, key crypto.PrivateKey) {
	pub := key.PublicKey()
	addr := pub.Address()
	b32, err := addr.Bech32()
	if err != nil {
		b32 = "-"
	}

	tbl := table.New(cmd.OutOrStdout())
	tbl.SetHeaders("Public Key", "Address", "Bech32")
	tbl.AddRow(pub.String(), addr.String(), b32)
	tbl.Render()
}
