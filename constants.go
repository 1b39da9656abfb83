package tezosforge

// Field lengths
const (
	// PubKeyHashLen is the length in bytes of a serialized public key hash.
	PubKeyHashLen = 20
	// TaggedPubKeyHashLen is the length in bytes of a serialized, tagged
	// public key hash (one curve-tag byte plus the hash).
	TaggedPubKeyHashLen = PubKeyHashLen + 1
	// PubKeyLenEd25519 is the length in bytes of a serialized Ed25519 public key.
	PubKeyLenEd25519 = 32
	// PubKeyLenSecp256k1 is the length in bytes of a serialized Secp256k1 public key.
	PubKeyLenSecp256k1 = 33
	// PubKeyLenP256 is the length in bytes of a serialized P256 public key.
	PubKeyLenP256 = 33
	// ContractHashLen is the length in bytes of a serialized contract hash.
	ContractHashLen = 20
	// ContractIDLen is the length in bytes of a serialized, tagged contract ID.
	ContractIDLen = 22
	// BlockHashLen is the length in bytes of a serialized block hash.
	BlockHashLen = 32
	// OperationHashLen is the length in bytes of a serialized operation hash.
	OperationHashLen = 32
)
