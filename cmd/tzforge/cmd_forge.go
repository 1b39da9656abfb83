package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/anchorageoss/tezosforge"
	"github.com/anchorageoss/tezosforge/jsonforge"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge an operation or operation group from a JSON file",
}

var forgeGroupCmd = &cobra.Command{
	Use:   "group <file.json>",
	Args:  cobra.ExactArgs(1),
	Short: "Forge a full operation group (branch + contents) to hex",
	RunE:  runForgeGroup,
}

var forgeOpCmd = &cobra.Command{
	Use:   "op <file.json>",
	Args:  cobra.ExactArgs(1),
	Short: "Forge a single operation content to hex",
	RunE:  runForgeOp,
}

func init() {
	forgeCmd.AddCommand(forgeGroupCmd)
	forgeCmd.AddCommand(forgeOpCmd)
}

func runForgeGroup(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	operation, err := jsonforge.DecodeGroup(raw)
	if err != nil {
		return err
	}
	log.Debug().Str("branch", string(operation.Branch)).Int("contents", len(operation.Contents)).Msg("decoded operation group")
	encoded, err := operation.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to forge operation group: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(encoded))
	return nil
}

func runForgeOp(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	content, err := jsonforge.Decode(raw)
	if err != nil {
		return err
	}
	log.Debug().Str("kind", tezosforge.ContentsTagNames[content.GetTag()]).Msg("decoded operation content")
	encoded, err := content.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to forge operation content: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(encoded))
	return nil
}
