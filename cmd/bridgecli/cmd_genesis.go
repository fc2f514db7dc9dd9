package main

import (
	"encoding/binary"
	"fmt"

	"github.com/aquasecurity/table"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/app"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store/iavl"
	"github.com/spf13/cobra"
)

func newGenesisCmd(conf config) *cobra.Command {
	return &cobra.Command{
		Use:   "genesis <file>",
		Short: "Load a genesis file into an in-memory vault and print its state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := conf.logger(cmd)
			if err != nil {
				return err
			}
			gen, err := app.LoadGenesis(args[0])
			if err != nil {
				return err
			}
			a, err := app.NewApplication(iavl.MockCommitStore(), app.Config{Logger: logger})
			if err != nil {
				return err
			}
			if err := a.InitChain(gen); err != nil {
				return err
			}
			if _, err := a.Commit(); err != nil {
				return err
			}
			return renderVault(cmd, a)
		},
	}
}

func renderVault(cmd *cobra.Command, a *app.Application) error {
	get := func(path string) ([]byte, error) {
		models, err := a.Query(path, bridge.KeyQueryMod, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "query %s", path)
		}
		if len(models) != 1 {
			return nil, fmt.Errorf("query %s: want one result, got %d", path, len(models))
		}
		return models[0].Value, nil
	}

	tbl := table.New(cmd.OutOrStdout())
	tbl.SetHeaders("Chain", "Owner", "Required Signatures", "Min Lock Amount", "Total Locked", "Paused")

	owner, err := get("/vault/owner")
	if errors.ErrState.Is(err) {
		// Initialized later by an InitMsg.
		tbl.AddRow(a.ChainID(), "(not initialized)", "-", "-", "-", "-")
		tbl.Render()
		return nil
	}
	if err != nil {
		return err
	}
	required, err := get("/vault/requiredSignatures")
	if err != nil {
		return err
	}
	minimum, err := amountQuery(get, "/vault/minLockAmount")
	if err != nil {
		return err
	}
	total, err := amountQuery(get, "/vault/totalLocked")
	if err != nil {
		return err
	}
	paused, err := get("/vault/paused")
	if err != nil {
		return err
	}

	tbl.AddRow(
		a.ChainID(),
		bridge.Address(owner).String(),
		fmt.Sprintf("%d", binary.BigEndian.Uint64(required)),
		minimum.String(),
		total.String(),
		fmt.Sprintf("%t", len(paused) == 1 && paused[0] == 1),
	)
	tbl.Render()
	return nil
}

func amountQuery(get func(string) ([]byte, error), path string) (coin.Amount, error) {
	raw, err := get(path)
	if err != nil {
		return coin.Amount{}, err
	}
	return coin.AmountFromBytes(raw)
}
