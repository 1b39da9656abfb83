package main

import (
	"encoding/json"
	"fmt"

	"github.com/anchorageoss/tezosforge"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Args:  cobra.NoArgs,
	Short: "Dump the operation-kind, entrypoint, and Michelson opcode tables as JSON",
	RunE:  runTables,
}

var reservedEntrypoints = map[string]tezosforge.EntrypointTag{
	"default":         tezosforge.EntrypointDefault.Tag(),
	"root":            tezosforge.EntrypointRoot.Tag(),
	"do":              tezosforge.EntrypointDo.Tag(),
	"set_delegate":    tezosforge.EntrypointSetDelegate.Tag(),
	"remove_delegate": tezosforge.EntrypointRemoveDelegate.Tag(),
	"deposit":         tezosforge.EntrypointDeposit.Tag(),
}

func runTables(cmd *cobra.Command, args []string) error {
	tables := struct {
		ContentsTags        map[string]byte `json:"contents_tags"`
		ReservedEntrypoints map[string]byte `json:"reserved_entrypoints"`
		MichelsonOpcodes    map[string]byte `json:"michelson_opcodes"`
	}{
		ContentsTags:        make(map[string]byte, len(tezosforge.ContentsTagNames)),
		ReservedEntrypoints: make(map[string]byte, len(reservedEntrypoints)),
		MichelsonOpcodes:    tezosforge.MichelsonPrimOpcodes,
	}
	for tag, name := range tezosforge.ContentsTagNames {
		tables.ContentsTags[name] = byte(tag)
	}
	for name, tag := range reservedEntrypoints {
		tables.ReservedEntrypoints[name] = byte(tag)
	}

	encoded, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
