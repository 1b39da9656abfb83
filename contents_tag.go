package tezosforge

// ContentsTag captures the tag byte that identifies an operation's kind,
// drawn from a fixed protocol table.
type ContentsTag byte

// ContentsTag values. These are protocol constants, not design choices.
const (
	ContentsTagEndorsement                     ContentsTag = 0x00
	ContentsTagActivateAccount                 ContentsTag = 0x04
	ContentsTagFailingNoop                     ContentsTag = 0x11
	ContentsTagEndorsementWithSlot             ContentsTag = 0x4a
	ContentsTagReveal                          ContentsTag = 0x6b
	ContentsTagTransaction                     ContentsTag = 0x6c
	ContentsTagOrigination                     ContentsTag = 0x6d
	ContentsTagDelegation                      ContentsTag = 0x6e
	ContentsTagRegisterGlobalConstant          ContentsTag = 0x6f
	ContentsTagTransferTicket                  ContentsTag = 0x9e
	ContentsTagSmartRollupAddMessages          ContentsTag = 0xc9
	ContentsTagSmartRollupExecuteOutboxMessage ContentsTag = 0xce
)

// ContentsTagNames maps every known ContentsTag to the kind name used in
// JSON operation contents, so the dispatch table can be inspected or
// dumped instead of only living inside a switch statement.
var ContentsTagNames = map[ContentsTag]string{
	ContentsTagEndorsement:                     "endorsement",
	ContentsTagActivateAccount:                 "activate_account",
	ContentsTagFailingNoop:                     "failing_noop",
	ContentsTagEndorsementWithSlot:             "endorsement_with_slot",
	ContentsTagReveal:                          "reveal",
	ContentsTagTransaction:                     "transaction",
	ContentsTagOrigination:                     "origination",
	ContentsTagDelegation:                      "delegation",
	ContentsTagRegisterGlobalConstant:          "register_global_constant",
	ContentsTagTransferTicket:                  "transfer_ticket",
	ContentsTagSmartRollupAddMessages:          "smart_rollup_add_messages",
	ContentsTagSmartRollupExecuteOutboxMessage: "smart_rollup_execute_outbox_message",
}
