package ledger

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

const discriminatorSize = 8

type discriminator [discriminatorSize]byte

func sighash(namespace, name string) discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var d discriminator
	copy(d[:], sum[:discriminatorSize])
	return d
}

func instructionDiscriminator(name string) discriminator {
	return sighash("global", name)
}

func accountDiscriminator(name string) discriminator {
	return sighash("account", name)
}

// encodeInstructionData prefixes the borsh encoded args with the instruction discriminator.
func encodeInstructionData(d discriminator, args any) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(d[:])
	if args == nil {
		return buf.Bytes(), nil
	}
	if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
		return nil, fmt.Errorf("encode instruction args: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeAccount checks the account discriminator and borsh decodes the remainder into v.
func decodeAccount(d discriminator, data []byte, v any) error {
	if len(data) < discriminatorSize {
		return fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:discriminatorSize], d[:]) {
		return fmt.Errorf("unexpected account discriminator %x", data[:discriminatorSize])
	}
	if err := bin.NewBorshDecoder(data[discriminatorSize:]).Decode(v); err != nil {
		return fmt.Errorf("decode account: %w", err)
	}
	return nil
}
