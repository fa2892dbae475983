package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

var (
	fBaseDir string
	fCircuit string
	fSystem  string

	fRingModulus      uint64
	fNoiseBound       uint64
	fDegree           int
	fDivisorDegree    int
	fPlaintextModulus uint64
	fRangeBits        int
)

var rootCmd = &cobra.Command{
	Use:   "rlwe-gadgets",
	Short: "helper to prove RLWE polynomial statements in gnark",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// circuitParams builds the public circuit configuration from the flags.
func circuitParams() (ringq.Params, error) {
	return ringq.NewParams(fRingModulus, fNoiseBound, fDegree, fDivisorDegree, fPlaintextModulus, fRangeBits)
}

func init() {
	defaults := ringq.DefaultParams()

	rootCmd.PersistentFlags().StringVar(&fBaseDir, "dir", "", "base directory for circuit build artifacts")
	rootCmd.MarkPersistentFlagRequired("dir")
	rootCmd.PersistentFlags().StringVar(&fCircuit, "circuit", "", "statement circuit (e.g. poly-mul, noise-bound)")
	rootCmd.MarkPersistentFlagRequired("circuit")
	rootCmd.PersistentFlags().StringVar(&fSystem, "system", "groth16", "proof system (groth16 or plonk)")

	rootCmd.PersistentFlags().Uint64Var(&fRingModulus, "ring-modulus", defaults.Q, "coefficient modulus q of the ring")
	rootCmd.PersistentFlags().Uint64Var(&fNoiseBound, "noise-bound", defaults.B, "bound b of the noise distribution [-b, b]")
	rootCmd.PersistentFlags().IntVar(&fDegree, "degree", defaults.N, "degree n of the polynomials")
	rootCmd.PersistentFlags().IntVar(&fDivisorDegree, "divisor-degree", defaults.M, "degree m of the cyclotomic divisor x^m + 1")
	rootCmd.PersistentFlags().Uint64Var(&fPlaintextModulus, "plaintext-modulus", defaults.T, "scalar modulus t of the reduction circuit")
	rootCmd.PersistentFlags().IntVar(&fRangeBits, "range-bits", defaults.MaxBits, "bit width declared to the range checker")
}
