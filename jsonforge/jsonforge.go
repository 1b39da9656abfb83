// Package jsonforge adapts JSON operation contents (the shape a node's RPC
// or a wallet's "forge this" request would hand over) into the typed values
// tezosforge knows how to marshal. tezosforge itself never looks at JSON;
// this is the boundary where that parsing happens.
package jsonforge

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge"
	"github.com/tidwall/gjson"
)

// Decode reads a single JSON operation content object, sniffs its "kind"
// field, and returns the typed tezosforge.OperationContents it describes.
func Decode(raw []byte) (tezosforge.OperationContents, error) {
	kind := gjson.GetBytes(raw, "kind")
	if !kind.Exists() {
		return nil, fmt.Errorf("jsonforge: missing \"kind\" field")
	}
	switch kind.String() {
	case "reveal":
		return decodeReveal(raw)
	case "transaction":
		return decodeTransaction(raw)
	case "origination":
		return decodeOrigination(raw)
	case "delegation":
		return decodeDelegation(raw)
	case "endorsement":
		return decodeEndorsement(raw)
	case "endorsement_with_slot":
		return decodeEndorsementWithSlot(raw)
	case "activate_account":
		return decodeActivateAccount(raw)
	case "failing_noop":
		return decodeFailingNoop(raw)
	case "register_global_constant":
		return decodeRegisterGlobalConstant(raw)
	case "transfer_ticket":
		return decodeTransferTicket(raw)
	case "smart_rollup_add_messages":
		return decodeSmartRollupAddMessages(raw)
	case "smart_rollup_execute_outbox_message":
		return decodeSmartRollupExecuteOutboxMessage(raw)
	default:
		return nil, fmt.Errorf("jsonforge: unrecognized operation kind %q", kind.String())
	}
}

// DecodeGroup reads a JSON operation group: a branch plus an ordered list of
// contents objects, each dispatched through Decode.
func DecodeGroup(raw []byte) (*tezosforge.Operation, error) {
	var envelope struct {
		Branch   string            `json:"branch"`
		Contents []json.RawMessage `json:"contents"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("jsonforge: failed to unmarshal operation group: %w", err)
	}
	if len(envelope.Contents) == 0 {
		return nil, fmt.Errorf("jsonforge: operation group has no contents")
	}
	op := &tezosforge.Operation{Branch: tezosforge.BranchID(envelope.Branch)}
	for i, raw := range envelope.Contents {
		content, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("jsonforge: content %d: %w", i, err)
		}
		op.Contents = append(op.Contents, content)
	}
	return op, nil
}

type jsonManagerCommon struct {
	Source       string `json:"source"`
	Fee          string `json:"fee"`
	Counter      string `json:"counter"`
	GasLimit     string `json:"gas_limit"`
	StorageLimit string `json:"storage_limit"`
}

func (m jsonManagerCommon) parse() (source tezosforge.ContractID, fee, counter, gasLimit, storageLimit *big.Int, err error) {
	source = tezosforge.ContractID(m.Source)
	if fee, err = parseBigInt("fee", m.Fee); err != nil {
		return
	}
	if counter, err = parseBigInt("counter", m.Counter); err != nil {
		return
	}
	if gasLimit, err = parseBigInt("gas_limit", m.GasLimit); err != nil {
		return
	}
	if storageLimit, err = parseBigInt("storage_limit", m.StorageLimit); err != nil {
		return
	}
	return
}

func parseBigInt(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("jsonforge: field %q: %q is not a decimal integer", field, value)
	}
	return n, nil
}

func parseHex(field, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: field %q: %w", field, err)
	}
	return b, nil
}

func decodeReveal(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		PublicKey string `json:"public_key"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	return &tezosforge.Reveal{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		PublicKey:    tezosforge.PublicKey(j.PublicKey),
	}, nil
}

func decodeTransaction(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Amount      string `json:"amount"`
		Destination string `json:"destination"`
		Parameters  *struct {
			Entrypoint string          `json:"entrypoint"`
			Value      json.RawMessage `json:"value"`
		} `json:"parameters"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	amount, err := parseBigInt("amount", j.Amount)
	if err != nil {
		return nil, err
	}
	tx := &tezosforge.Transaction{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		Amount:       amount,
		Destination:  tezosforge.ContractID(j.Destination),
	}
	if j.Parameters != nil {
		entrypoint, err := decodeEntrypoint(j.Parameters.Entrypoint)
		if err != nil {
			return nil, err
		}
		value, err := decodeMicheline(j.Parameters.Value)
		if err != nil {
			return nil, fmt.Errorf("jsonforge: parameters.value: %w", err)
		}
		params := &tezosforge.TransactionParameters{Entrypoint: entrypoint, Value: value}
		if !params.IsDefault() {
			tx.Parameters = params
		}
	}
	return tx, nil
}

func decodeEntrypoint(name string) (tezosforge.Entrypoint, error) {
	switch name {
	case "default":
		return tezosforge.EntrypointDefault, nil
	case "root":
		return tezosforge.EntrypointRoot, nil
	case "do":
		return tezosforge.EntrypointDo, nil
	case "set_delegate":
		return tezosforge.EntrypointSetDelegate, nil
	case "remove_delegate":
		return tezosforge.EntrypointRemoveDelegate, nil
	case "deposit":
		return tezosforge.EntrypointDeposit, nil
	default:
		return tezosforge.NewNamedEntrypoint(name)
	}
}

func decodeOrigination(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Balance  string  `json:"balance"`
		Delegate *string `json:"delegate"`
		Script   struct {
			Code    json.RawMessage `json:"code"`
			Storage json.RawMessage `json:"storage"`
		} `json:"script"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	balance, err := parseBigInt("balance", j.Balance)
	if err != nil {
		return nil, err
	}
	code, err := decodeMicheline(j.Script.Code)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: script.code: %w", err)
	}
	codeBytes, err := code.MarshalBinary()
	if err != nil {
		return nil, err
	}
	storage, err := decodeMicheline(j.Script.Storage)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: script.storage: %w", err)
	}
	storageBytes, err := storage.MarshalBinary()
	if err != nil {
		return nil, err
	}
	origination := &tezosforge.Origination{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		Balance:      balance,
		Script:       tezosforge.ContractScript{Code: codeBytes, Storage: storageBytes},
	}
	if j.Delegate != nil {
		delegate := tezosforge.ContractID(*j.Delegate)
		origination.Delegate = &delegate
	}
	return origination, nil
}

func decodeDelegation(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Delegate *string `json:"delegate"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	delegation := &tezosforge.Delegation{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
	}
	if j.Delegate != nil {
		delegate := tezosforge.ContractID(*j.Delegate)
		delegation.Delegate = &delegate
	}
	return delegation, nil
}

func decodeEndorsement(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		Level int32 `json:"level"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return &tezosforge.Endorsement{Level: j.Level}, nil
}

// decodeEndorsementWithSlot uses a flat field layout (branch,
// endorsement_tag, level, signature, slot) rather than mirroring a node
// RPC's nested "endorsement" envelope: nothing downstream of tezosforge
// needs the RPC's own framing, only the values that end up on the wire.
func decodeEndorsementWithSlot(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		Branch         string `json:"branch"`
		EndorsementTag string `json:"endorsement_tag"`
		Level          int32  `json:"level"`
		Signature      string `json:"signature"`
		Slot           int16  `json:"slot"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	endorsementTag, err := parseBigInt("endorsement_tag", j.EndorsementTag)
	if err != nil {
		return nil, err
	}
	return &tezosforge.EndorsementWithSlot{
		InlineBranch:   tezosforge.BranchID(j.Branch),
		EndorsementTag: endorsementTag,
		Level:          j.Level,
		Signature:      j.Signature,
		Slot:           j.Slot,
	}, nil
}

func decodeActivateAccount(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		Pkh    string `json:"pkh"`
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	secret, err := parseHex("secret", j.Secret)
	if err != nil {
		return nil, err
	}
	return &tezosforge.ActivateAccount{
		PublicKeyHash: tezosforge.ContractID(j.Pkh),
		Secret:        secret,
	}, nil
}

func decodeFailingNoop(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		Arbitrary string `json:"arbitrary"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return &tezosforge.FailingNoop{Arbitrary: j.Arbitrary}, nil
}

func decodeRegisterGlobalConstant(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	value, err := decodeMicheline(j.Value)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: value: %w", err)
	}
	return &tezosforge.RegisterGlobalConstant{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		Value:        value,
	}, nil
}

func decodeTransferTicket(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		TicketContents json.RawMessage `json:"ticket_contents"`
		TicketTy       json.RawMessage `json:"ticket_ty"`
		TicketTicketer string          `json:"ticket_ticketer"`
		TicketAmount   string          `json:"ticket_amount"`
		Destination    string          `json:"destination"`
		Entrypoint     string          `json:"entrypoint"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	contents, err := decodeMicheline(j.TicketContents)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: ticket_contents: %w", err)
	}
	ty, err := decodeMicheline(j.TicketTy)
	if err != nil {
		return nil, fmt.Errorf("jsonforge: ticket_ty: %w", err)
	}
	amount, err := parseBigInt("ticket_amount", j.TicketAmount)
	if err != nil {
		return nil, err
	}
	return &tezosforge.TransferTicket{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		Contents:     contents,
		Ty:           ty,
		Ticketer:     tezosforge.ContractID(j.TicketTicketer),
		Amount:       amount,
		Destination:  tezosforge.ContractID(j.Destination),
		Entrypoint:   j.Entrypoint,
	}, nil
}

func decodeSmartRollupAddMessages(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Message []string `json:"message"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	messages := make([][]byte, len(j.Message))
	for i, m := range j.Message {
		b, err := parseHex(fmt.Sprintf("message[%d]", i), m)
		if err != nil {
			return nil, err
		}
		messages[i] = b
	}
	return &tezosforge.SmartRollupAddMessages{
		Source:       source,
		Fee:          fee,
		Counter:      counter,
		GasLimit:     gasLimit,
		StorageLimit: storageLimit,
		Messages:     messages,
	}, nil
}

func decodeSmartRollupExecuteOutboxMessage(raw []byte) (tezosforge.OperationContents, error) {
	var j struct {
		jsonManagerCommon
		Rollup             string `json:"rollup"`
		CementedCommitment string `json:"cemented_commitment"`
		OutputProof        string `json:"output_proof"`
	}
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	source, fee, counter, gasLimit, storageLimit, err := j.parse()
	if err != nil {
		return nil, err
	}
	outputProof, err := parseHex("output_proof", j.OutputProof)
	if err != nil {
		return nil, err
	}
	return &tezosforge.SmartRollupExecuteOutboxMessage{
		Source:             source,
		Fee:                fee,
		Counter:            counter,
		GasLimit:           gasLimit,
		StorageLimit:       storageLimit,
		Rollup:             tezosforge.ContractID(j.Rollup),
		CementedCommitment: j.CementedCommitment,
		OutputProof:        outputProof,
	}, nil
}

// jsonMichelineNode mirrors the handful of shapes a Micheline expression
// takes in its JSON form: {"int":...}, {"string":...}, {"bytes":...},
// {"prim":...,"args":[...],"annots":[...]}, or a bare JSON array for a
// sequence.
type jsonMichelineNode struct {
	Int    *string           `json:"int"`
	String *string           `json:"string"`
	Bytes  *string           `json:"bytes"`
	Prim   *string           `json:"prim"`
	Args   []json.RawMessage `json:"args"`
	Annots []string          `json:"annots"`
}

func decodeMicheline(raw json.RawMessage) (tezosforge.MichelineNode, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("jsonforge: empty micheline expression")
	}
	trimmed := raw
	for len(trimmed) > 0 && (trimmed[0] == ' ' || trimmed[0] == '\t' || trimmed[0] == '\n' || trimmed[0] == '\r') {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, err
		}
		seq := make(tezosforge.MichelineSeq, 0, len(elements))
		for _, element := range elements {
			node, err := decodeMicheline(element)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		}
		return &seq, nil
	}

	var n jsonMichelineNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	switch {
	case n.Int != nil:
		value, ok := new(big.Int).SetString(*n.Int, 10)
		if !ok {
			return nil, fmt.Errorf("jsonforge: %q is not a decimal integer", *n.Int)
		}
		return (*tezosforge.MichelineInt)(value), nil
	case n.String != nil:
		s := tezosforge.MichelineString(*n.String)
		return &s, nil
	case n.Bytes != nil:
		b, err := parseHex("bytes", *n.Bytes)
		if err != nil {
			return nil, err
		}
		bs := tezosforge.MichelineBytes(b)
		return &bs, nil
	case n.Prim != nil:
		prim := &tezosforge.MichelinePrim{Prim: *n.Prim, Annots: n.Annots}
		for _, arg := range n.Args {
			node, err := decodeMicheline(arg)
			if err != nil {
				return nil, err
			}
			prim.Args = append(prim.Args, node)
		}
		return prim, nil
	default:
		return nil, fmt.Errorf("jsonforge: unrecognized micheline node shape")
	}
}
