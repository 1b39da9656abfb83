package tezosforge

// MichelsonPrimOpcodes maps every known Michelson primitive name (types,
// instructions, and constructors) to its one-byte wire opcode. This mirrors
// the protocol's michelson_v1_primitives table; the ordering is a fixed
// protocol constant, not a design choice, and is exposed as data per the
// requirement that the table be inspectable.
var MichelsonPrimOpcodes = map[string]byte{
	"parameter": 0,
	"storage":   1,
	"code":      2,
	"False":     3,
	"Elt":       4,
	"Left":      5,
	"None":      6,
	"Pair":      7,
	"Right":     8,
	"Some":      9,
	"True":      10,
	"Unit":      11,

	"PACK":             12,
	"UNPACK":           13,
	"ABS":              14,
	"ADD":              15,
	"AMOUNT":           16,
	"AND":              17,
	"BALANCE":          18,
	"CAR":              19,
	"CDR":              20,
	"CHECK_SIGNATURE":  21,
	"COMPARE":          22,
	"CONCAT":           23,
	"CONS":             24,
	"CREATE_ACCOUNT":   25,
	"CREATE_CONTRACT":  26,
	"IMPLICIT_ACCOUNT": 27,
	"DIP":              28,
	"DROP":             29,
	"DUP":              30,
	"EDIV":             31,
	"EMPTY_MAP":        32,
	"EMPTY_SET":        33,
	"EQ":               34,
	"EXEC":             35,
	"FAILWITH":         36,
	"GE":               37,
	"GET":              38,
	"GT":               39,
	"HASH_KEY":         40,
	"IF":               41,
	"IF_CONS":          42,
	"IF_LEFT":          43,
	"IF_NONE":          44,
	"INT":              45,
	"LAMBDA":           46,
	"LE":               47,
	"LEFT":             48,
	"LOOP":             49,
	"LSL":              50,
	"LSR":              51,
	"LT":               52,
	"MAP":              53,
	"MEM":              54,
	"MUL":              55,
	"NEG":              56,
	"NEQ":              57,
	"NIL":              58,
	"NONE":             59,
	"NOT":              60,
	"NOW":              61,
	"OR":               62,
	"PAIR":             63,
	"PUSH":             64,
	"RIGHT":            65,
	"SIZE":             66,
	"SOME":             67,
	"SOURCE":           68,
	"SENDER":           69,
	"SELF":             70,
	"STEPS_TO_QUOTA":   71,
	"SUB":              72,
	"SWAP":             73,
	"TRANSFER_TOKENS":  74,
	"SET_DELEGATE":     75,
	"UNIT":             76,
	"UPDATE":           77,
	"XOR":              78,
	"ITER":             79,
	"LOOP_LEFT":        80,
	"ADDRESS":          81,
	"CONTRACT":         82,
	"ISNAT":            83,
	"CAST":             84,
	"RENAME":           85,

	"bool":      86,
	"contract":  87,
	"int":       88,
	"key":       89,
	"key_hash":  90,
	"lambda":    91,
	"list":      92,
	"map":       93,
	"big_map":   94,
	"nat":       95,
	"option":    96,
	"or":        97,
	"pair":      98,
	"set":       99,
	"signature": 100,
	"string":    101,
	"bytes":     102,
	"mutez":     103,
	"timestamp": 104,
	"unit":      105,
	"operation": 106,
	"address":   107,

	"SLICE":           108,
	"DIG":              109,
	"DUG":              110,
	"EMPTY_BIG_MAP":    111,
	"APPLY":            112,
	"chain_id":         113,
	"CHAIN_ID":         114,
	"LEVEL":            115,
	"SELF_ADDRESS":     116,
	"never":            117,
	"NEVER":            118,
	"UNPAIR":           119,
	"VOTING_POWER":     120,
	"TOTAL_VOTING_POWER": 121,
	"KECCAK":           122,
	"SHA3":             123,
	"PAIRING_CHECK":    124,
	"bls12_381_g1":     125,
	"bls12_381_g2":     126,
	"bls12_381_fr":     127,
	"sapling_state":    128,
	"SAPLING_EMPTY_STATE":  130,
	"SAPLING_VERIFY_UPDATE": 131,
	"ticket":           132,
	"READ_TICKET":      134,
	"SPLIT_TICKET":     135,
	"JOIN_TICKETS":     136,
	"GET_AND_UPDATE":   137,
	"chest":            138,
	"chest_key":        139,
	"OPEN_CHEST":       140,
	"VIEW":             141,
	"view":             142,
	"constant":         143,
	"SUB_MUTEZ":        144,
	"EMIT":             148,
}

// MichelsonPrimNames is the inverse of MichelsonPrimOpcodes, built once at
// package init so decoding a prim tag back to its name is a map lookup.
var MichelsonPrimNames = invertPrimOpcodes(MichelsonPrimOpcodes)

func invertPrimOpcodes(opcodes map[string]byte) map[byte]string {
	names := make(map[byte]string, len(opcodes))
	for name, opcode := range opcodes {
		names[opcode] = name
	}
	return names
}
