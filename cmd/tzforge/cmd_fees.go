package main

import (
	"fmt"
	"math/big"

	"github.com/anchorageoss/tezosforge"
	"github.com/spf13/cobra"
)

var feesCmd = &cobra.Command{
	Use:   "fees <kind>",
	Args:  cobra.ExactArgs(1),
	Short: "Print the baseline minimum fee for an operation kind",
	Long: `fees reports the fee a baker will accept for an operation of the given
kind, computed from the gas and size baselines tezosforge ships for each kind.
Pass --size-bytes to price an operation of a different serialized size. Kind
is one of: reveal, origination, delegation, transaction,
transaction-from-originated.`,
	RunE: runFees,
}

var feesSizeBytes int64

func init() {
	feesCmd.Flags().Int64Var(&feesSizeBytes, "size-bytes", 0,
		"serialized operation size in bytes (defaults to the kind's known minimum, where one exists)")
}

type feeBaseline struct {
	gasLimit        int64
	storageBurn     int64
	minSizeBytes    int64
	canonicalMinFee int64
}

var feeBaselines = map[string]feeBaseline{
	"reveal": {
		gasLimit:    tezosforge.RevealGasLimit,
		storageBurn: tezosforge.RevealStorageBurn,
	},
	"origination": {
		gasLimit:        tezosforge.OriginationGasLimit,
		storageBurn:     tezosforge.OriginationStorageBurn,
		minSizeBytes:    tezosforge.MinimumOriginationSizeBytes,
		canonicalMinFee: tezosforge.OriginationMinimumFee,
	},
	"delegation": {
		gasLimit:    tezosforge.DelegationGasLimit,
		storageBurn: tezosforge.DelegationStorageBurn,
	},
	"transaction": {
		gasLimit: tezosforge.MinimumTransactionGasLimit,
	},
	"transaction-from-originated": {
		gasLimit:        tezosforge.MinimumOriginatedAccountTransferGasLimit,
		storageBurn:     tezosforge.NewAccountCreationBurn,
		minSizeBytes:    tezosforge.MinimumOriginatedAccountTransferSizeBytes,
		canonicalMinFee: tezosforge.OriginatedAccountTransferMinimumFee,
	},
}

func runFees(cmd *cobra.Command, args []string) error {
	baseline, ok := feeBaselines[args[0]]
	if !ok {
		return fmt.Errorf("unknown kind %q, expected one of reveal, origination, delegation, transaction, transaction-from-originated", args[0])
	}
	size := feesSizeBytes
	if size == 0 {
		size = baseline.minSizeBytes
	}
	minFee := tezosforge.ComputeMinimumFee(big.NewInt(baseline.gasLimit), big.NewInt(size))
	fmt.Fprintf(cmd.OutOrStdout(), "minimum fee: %s mutez\n", minFee.String())
	if baseline.storageBurn > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "storage burn: %d mutez\n", baseline.storageBurn)
	}
	if baseline.canonicalMinFee > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "canonical minimum fee: %d mutez\n", baseline.canonicalMinFee)
	}
	return nil
}
