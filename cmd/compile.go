package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zklattice/rlwe-gadgets/circuits"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "compile a statement circuit and save its constraint system, keys and solidity contract",
	RunE:  compile,
}

func compile(cmd *cobra.Command, args []string) error {
	params, err := circuitParams()
	if err != nil {
		return fmt.Errorf("invalid circuit configuration: %w", err)
	}

	return circuits.CompileStatement(fCircuit, params, fSystem, fBaseDir)
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
