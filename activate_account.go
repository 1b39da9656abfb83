package tezosforge

import (
	"bytes"
	"fmt"
)

// ActivateAccount models the tezos activate_account operation type, used to
// activate the balance of a fundraiser ed25519 account using the secret
// handed out in the genesis commitment.
type ActivateAccount struct {
	PublicKeyHash ContractID
	Secret        []byte
}

func (a *ActivateAccount) String() string {
	return fmt.Sprintf("%#v", a)
}

// GetTag implements OperationContents.
func (a *ActivateAccount) GetTag() ContentsTag {
	return ContentsTagActivateAccount
}

// GetSource returns the operation's source.
func (a *ActivateAccount) GetSource() ContractID {
	return a.PublicKeyHash
}

const activateAccountSecretLen = 20

// MarshalBinary implements encoding.BinaryMarshaler.
func (a *ActivateAccount) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte(byte(a.GetTag()))

	prefix, pubKeyHashBytes, err := Base58CheckDecode(string(a.PublicKeyHash))
	if err != nil {
		return nil, fmt.Errorf("failed to write public key hash: %w", err)
	}
	if prefix != PrefixEd25519PublicKeyHash {
		return nil, newForgeErrorStr(ErrInvalidArgument, "pkh", string(a.PublicKeyHash),
			fmt.Errorf("activate_account requires an ed25519 (tz1) public key hash"))
	}
	buf.Write(pubKeyHashBytes)

	if len(a.Secret) != activateAccountSecretLen {
		return nil, newForgeErrorStr(ErrInvalidArgument, "secret", "",
			fmt.Errorf("expected %d bytes, got %d", activateAccountSecretLen, len(a.Secret)))
	}
	buf.Write(a.Secret)

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *ActivateAccount) UnmarshalBinary(data []byte) (err error) {
	defer func() {
		if err == nil {
			if r := recover(); r != nil {
				err = catchOutOfRangeExceptions(r)
			}
		}
	}()

	dataPtr := data

	tag := ContentsTag(dataPtr[0])
	if tag != ContentsTagActivateAccount {
		return newForgeErrorStr(ErrInvalidArgument, "tag", "", fmt.Errorf("invalid tag for activate_account. Expected %d, saw %d", ContentsTagActivateAccount, tag))
	}
	dataPtr = dataPtr[1:]

	pubKeyHash := dataPtr[:PubKeyHashLen]
	encoded, err := Base58CheckEncode(PrefixEd25519PublicKeyHash, pubKeyHash)
	if err != nil {
		return fmt.Errorf("failed to unmarshal public key hash: %w", err)
	}
	a.PublicKeyHash = ContractID(encoded)
	dataPtr = dataPtr[PubKeyHashLen:]

	secret := make([]byte, activateAccountSecretLen)
	copy(secret, dataPtr[:activateAccountSecretLen])
	a.Secret = secret

	return nil
}
