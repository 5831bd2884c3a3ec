package ledger

import (
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// NewTransaction assembles a legacy transaction paid by payer and stamped with checkpoint.
func NewTransaction(payer solana.PublicKey, checkpoint model.Checkpoint, instructions ...solana.Instruction) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(instructions, checkpoint.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, fmt.Errorf("assemble transaction: %w", err)
	}
	return tx, nil
}

// PartialSign adds signatures for keys and leaves every other required signature zeroed,
// to be filled in by the wallet.
func PartialSign(tx *solana.Transaction, keys ...solana.PrivateKey) error {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) != required {
		signatures := make([]solana.Signature, required)
		copy(signatures, tx.Signatures)
		tx.Signatures = signatures
	}

	payload, err := tx.Message.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	for _, key := range keys {
		signer := key.PublicKey()
		slot := -1
		for i := 0; i < required && i < len(tx.Message.AccountKeys); i++ {
			if tx.Message.AccountKeys[i].Equals(signer) {
				slot = i
				break
			}
		}
		if slot < 0 {
			return fmt.Errorf("%s is not a required signer", signer)
		}
		signature, err := key.Sign(payload)
		if err != nil {
			return fmt.Errorf("sign with %s: %w", signer, err)
		}
		tx.Signatures[slot] = signature
	}
	return nil
}

// EncodeTransaction serializes tx, missing signatures included, as base64.
func EncodeTransaction(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
