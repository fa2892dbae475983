package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	plonk_bn254 "github.com/consensys/gnark/backend/plonk/bn254"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/zklattice/rlwe-gadgets/circuits"
	"github.com/zklattice/rlwe-gadgets/types"
)

var fInput string

// proveCmd represents the proof command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "runs a proof generation in gnark and writes the public inputs and proof to a json file",
	RunE:  prove,
}

func prove(cmd *cobra.Command, args []string) error {
	params, err := circuitParams()
	if err != nil {
		return fmt.Errorf("invalid circuit configuration: %w", err)
	}

	input := types.ReadCircuitInput(fInput)
	assignment, err := circuits.NewAssignment(fCircuit, params, input)
	if err != nil {
		return fmt.Errorf("failed to build assignment: %w", err)
	}

	path := fBaseDir + "/build"

	start := time.Now()
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return fmt.Errorf("failed to generate witness: %w", err)
	}
	log.Info().Msg("Successfully generated witness, time: " + time.Since(start).String())

	publicWitness, err := w.Public()
	if err != nil {
		return fmt.Errorf("failed to extract public witness: %w", err)
	}

	switch fSystem {
	case "plonk":
		cs, pk, err := circuits.LoadPlonkProverData(path)
		if err != nil {
			return err
		}

		log.Info().Msg("Creating proof")
		start = time.Now()
		proof, err := plonk.Prove(cs, pk, w)
		if err != nil {
			return fmt.Errorf("failed to create proof: %w", err)
		}
		log.Info().Msg("Successfully created proof, time: " + time.Since(start).String())

		serializedProof := proof.(*plonk_bn254.Proof).MarshalSolidity()
		log.Printf("Proof len: %d", len(serializedProof))
		return writeProofFile(struct {
			PublicInputs []string      `json:"inputs"`
			Proof        hexutil.Bytes `json:"proof"`
		}{
			PublicInputs: publicInputStrings(publicWitness),
			Proof:        serializedProof,
		})
	case "groth16":
		cs, pk, err := circuits.LoadGroth16ProverData(path)
		if err != nil {
			return err
		}

		log.Info().Msg("Creating proof")
		start = time.Now()
		proof, err := groth16.Prove(cs, pk, w)
		if err != nil {
			return fmt.Errorf("failed to create proof: %w", err)
		}
		log.Info().Msg("Successfully created proof, time: " + time.Since(start).String())

		return writeProofFile(struct {
			PublicInputs []string `json:"inputs"`
			Proof        []string `json:"proof"`
		}{
			PublicInputs: publicInputStrings(publicWitness),
			Proof:        groth16ProofStrings(proof),
		})
	default:
		return fmt.Errorf("unknown proof system %q, expected groth16 or plonk", fSystem)
	}
}

const fpSize = 4 * 8

func groth16ProofStrings(proof groth16.Proof) []string {
	buf := new(bytes.Buffer)
	proof.WriteRawTo(buf)
	proofBytes := buf.Bytes()

	proofs := make([]string, 8)
	for i := 0; i < 8; i++ {
		proofs[i] = new(big.Int).SetBytes(proofBytes[i*fpSize : (i+1)*fpSize]).String()
	}
	return proofs
}

func publicInputStrings(publicWitness witness.Witness) []string {
	vector, ok := publicWitness.Vector().(fr_bn254.Vector)
	if !ok {
		panic("expected a bn254 witness vector")
	}
	inputs := make([]string, len(vector))
	for i := range vector {
		inputs[i] = vector[i].String()
	}
	return inputs
}

func writeProofFile(payload interface{}) error {
	jsonProofWithWitness, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal proof with witness: %w", err)
	}
	proofFile, err := os.Create("proof_with_witness.json")
	if err != nil {
		return fmt.Errorf("failed to create proof_with_witness file: %w", err)
	}
	defer proofFile.Close()
	if _, err = proofFile.Write(jsonProofWithWitness); err != nil {
		return fmt.Errorf("failed to write proof_with_witness file: %w", err)
	}
	log.Info().Msg("Successfully saved proof_with_witness")
	return nil
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringVar(&fInput, "input", "", "json file with the raw circuit input")
	proveCmd.MarkFlagRequired("input")
}
