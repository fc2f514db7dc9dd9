package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/aquasecurity/table"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/store"
	"github.com/iov-one/bridge/x/quorum"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// claimFlags describe the release claim a proof is over.
type claimFlags struct {
	sourceChain  string
	sourceTxHash string
	amount       string
	recipient    string
	nonce        uint64
}

func (f *claimFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.sourceChain, "source-chain", "", "Chain the assets were burned on")
	fs.StringVar(&f.sourceTxHash, "source-tx", "", "Hash of the burn transaction on the source chain")
	fs.StringVar(&f.amount, "amount", "", "Amount to release, in the smallest unit")
	fs.StringVar(&f.recipient, "recipient", "", "Address receiving the released assets")
	fs.Uint64Var(&f.nonce, "nonce", 0, "Nonce of the release")
}

func (f *claimFlags) claim() (quorum.Claim, error) {
	amount, err := coin.ParseAmount(f.amount)
	if err != nil {
		return quorum.Claim{}, fmt.Errorf("amount: %s", err)
	}
	rcpt, err := bridge.ParseAddress(f.recipient)
	if err != nil {
		return quorum.Claim{}, fmt.Errorf("recipient: %s", err)
	}
	c := quorum.Claim{
		SourceChain:  f.sourceChain,
		SourceTxHash: f.sourceTxHash,
		Amount:       amount,
		Nonce:        f.nonce,
		Recipient:    rcpt,
	}
	if err := c.Validate(); err != nil {
		return quorum.Claim{}, err
	}
	return c, nil
}

func newProofCmd(conf config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Sign and verify release proofs",
	}
	cmd.AddCommand(
		newProofDigestCmd(),
		newProofSignCmd(conf),
		newProofVerifyCmd(conf),
	)
	return cmd
}

func newProofDigestCmd() *cobra.Command {
	var flags claimFlags
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print the hex encoded message validators sign for a claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.claim()
			if err != nil {
				return err
			}
			msg, err := c.SignBytes()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(msg))
			return err
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newProofSignCmd(conf config) *cobra.Command {
	var flags claimFlags
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a claim with the private key and print the signature as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.claim()
			if err != nil {
				return err
			}
			key, err := loadKey(conf.keyPath())
			if err != nil {
				return err
			}
			sig, err := quorum.Sign(key, c)
			if err != nil {
				return err
			}
			raw, err := json.Marshal(sig)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newProofVerifyCmd(conf config) *cobra.Command {
	var (
		flags      claimFlags
		sigsPath   string
		validators []string
		required   uint32
		maxSigs    int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Count the signatures of a proof against a validator set",
		Long: `Count the signatures of a proof against a validator set.

Signatures are read from a file holding a JSON list of signatures, one for
each line produced by the sign command. The command fails unless the required
number of distinct validators signed the claim.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := conf.logger(cmd)
			if err != nil {
				return err
			}
			c, err := flags.claim()
			if err != nil {
				return err
			}
			sigs, err := readSignatures(sigsPath)
			if err != nil {
				return err
			}
			set := make(quorum.StaticValidators, 0, len(validators))
			for _, v := range validators {
				addr, err := bridge.ParseAddress(v)
				if err != nil {
					return fmt.Errorf("validator %q: %s", v, err)
				}
				set = append(set, addr)
			}

			report, err := quorum.NewVerifier(set, maxSigs).Verify(store.EmptyKVStore{}, c, sigs, required)
			if err != nil {
				return err
			}
			for _, s := range report.Skipped {
				logger.Info("signature skipped", "index", s.Index, "reason", s.Reason)
			}
			renderReport(cmd, report)
			return report.Err()
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&sigsPath, "signatures", "", "Path to the JSON file with the signatures")
	cmd.Flags().StringSliceVar(&validators, "validators", nil, "Addresses of the active validators")
	cmd.Flags().Uint32Var(&required, "required", 1, "Number of distinct signers required")
	cmd.Flags().IntVar(&maxSigs, "max-signatures", quorum.DefaultMaxSignatures, "Maximum number of signatures a proof may carry")
	return cmd
}

// readSignatures accepts both a JSON list of signatures and one JSON
// signature per line.
func readSignatures(path string) ([]quorum.ValidatorSignature, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read signatures: %s", err)
	}
	var sigs []quorum.ValidatorSignature
	if err := json.Unmarshal(raw, &sigs); err == nil {
		return sigs, nil
	}
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var sig quorum.ValidatorSignature
		if err := json.Unmarshal([]byte(line), &sig); err != nil {
			return nil, fmt.Errorf("signature in line %d: %s", i+1, err)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func renderReport(cmd *cobra.Command, r *quorum.Report) {
	tbl := table.New(cmd.OutOrStdout())
	tbl.SetHeaders("Signer", "Counted", "Reason")
	for _, s := range r.Signers {
		tbl.AddRow(s.String(), "yes", "")
	}
	for _, s := range r.Skipped {
		tbl.AddRow(fmt.Sprintf("signature %d", s.Index), "no", string(s.Reason))
	}
	tbl.SetFooters("Total", fmt.Sprintf("%d of %d", r.Count(), r.Required), "")
	tbl.Render()
}
