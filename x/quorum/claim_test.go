package quorum

import (
	"strings"
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaim() Claim {
	return Claim{
		SourceChain:  "eth",
		SourceTxHash: "0xdeadbeef",
		Amount:       coin.NewAmount(5000),
		Nonce:        0,
		Recipient:    bridgetest.NewCondition().Address(),
	}
}

func TestSignBytesIsStable(t *testing.T) {
	c := testClaim()
	a, err := c.SignBytes()
	require.NoError(t, err)
	b, err := c.SignBytes()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestSignBytesCoversEveryField(t *testing.T) {
	base := testClaim()
	want, err := base.SignBytes()
	require.NoError(t, err)

	mutations := map[string]func(c *Claim){
		"source chain": func(c *Claim) { c.SourceChain = "bsc" },
		"tx hash":      func(c *Claim) { c.SourceTxHash = "0xdeadbeee" },
		"amount":       func(c *Claim) { c.Amount = coin.NewAmount(5001) },
		"nonce":        func(c *Claim) { c.Nonce = 1 },
		"recipient":    func(c *Claim) { c.Recipient = bridgetest.NewCondition().Address() },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			got, err := c.SignBytes()
			require.NoError(t, err)
			assert.NotEqual(t, want, got)
		})
	}
}

func TestSignBytesFieldBoundaries(t *testing.T) {
	rcpt := bridgetest.NewCondition().Address()
	a := Claim{SourceChain: "ab", SourceTxHash: "c", Amount: coin.NewAmount(1), Recipient: rcpt}
	b := Claim{SourceChain: "a", SourceTxHash: "bc", Amount: coin.NewAmount(1), Recipient: rcpt}

	da, err := a.SignBytes()
	require.NoError(t, err)
	db, err := b.SignBytes()
	require.NoError(t, err)
	assert.NotEqual(t, da, db)
}

func TestClaimValidate(t *testing.T) {
	cases := map[string]struct {
		claim      Claim
		wantFields map[string]*errors.Error
	}{
		"valid": {
			claim: testClaim(),
			wantFields: map[string]*errors.Error{
				"SourceChain":  nil,
				"SourceTxHash": nil,
				"Amount":       nil,
				"Recipient":    nil,
			},
		},
		"empty": {
			claim: Claim{},
			wantFields: map[string]*errors.Error{
				"SourceChain":  errors.ErrEmpty,
				"SourceTxHash": errors.ErrEmpty,
				"Amount":       errors.ErrAmount,
				"Recipient":    errors.ErrInput,
			},
		},
		"chain too long": {
			claim: func() Claim {
				c := testClaim()
				c.SourceChain = strings.Repeat("x", 1<<16)
				return c
			}(),
			wantFields: map[string]*errors.Error{
				"SourceChain": errors.ErrInput,
				"Amount":      nil,
			},
		},
		"bad recipient": {
			claim: func() Claim {
				c := testClaim()
				c.Recipient = bridge.Address("short")
				return c
			}(),
			wantFields: map[string]*errors.Error{
				"Recipient": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.claim.Validate()
			for field, want := range tc.wantFields {
				errs := errors.FieldErrors(err, field)
				if want == nil {
					assert.Empty(t, errs, field)
					continue
				}
				require.Len(t, errs, 1, field)
				assert.True(t, want.Is(errs[0]), "%s: %s", field, errs[0])
			}
		})
	}

	_, err := Claim{}.SignBytes()
	assert.Error(t, err)
}
