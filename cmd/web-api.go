package cmd

import (
	"fmt"
	"net/http"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/zklattice/rlwe-gadgets/circuits"
	"github.com/zklattice/rlwe-gadgets/ringq"
	"github.com/zklattice/rlwe-gadgets/types"
)

// webApiCmd serves groth16 proof generation for one compiled statement
// circuit over HTTP.
var webApiCmd = &cobra.Command{
	Use:   "web-api",
	Short: "runs a web server generating and verifying proofs for one compiled statement circuit",
	RunE:  runApi,
}

func healthCheck(c *gin.Context) {
	response := gin.H{
		"status":  "ok",
		"message": "Health check passed",
	}

	c.JSON(http.StatusOK, response)
}

type ProofRequest struct {
	ID    string `json:"id"`
	Input []byte `json:"input"`
}

func generateProof(params ringq.Params, cs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		var proofReq ProofRequest

		if err := c.ShouldBindJSON(&proofReq); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input, err := types.ReadCircuitInputFromRequest(proofReq.Input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		assignment, err := circuits.NewAssignment(fCircuit, params, input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to build assignment: %v", err)})
			return
		}

		w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to generate witness: %v", err)})
			return
		}

		proof, err := groth16.Prove(cs, pk, w)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to generate proof: %v", err)})
			return
		}

		publicWitness, err := w.Public()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to extract public witness: %v", err)})
			return
		}
		if err := groth16.Verify(proof, vk, publicWitness); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to verify proof: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"inputs": publicInputStrings(publicWitness),
			"proof":  groth16ProofStrings(proof),
		})
	}
}

func runApi(cmd *cobra.Command, args []string) error {
	params, err := circuitParams()
	if err != nil {
		return fmt.Errorf("invalid circuit configuration: %w", err)
	}

	path := fBaseDir + "/build"
	vk, err := circuits.LoadGroth16VerifierKey(path)
	if err != nil {
		return err
	}
	cs, pk, err := circuits.LoadGroth16ProverData(path)
	if err != nil {
		return err
	}

	router := gin.Default()
	router.GET("/health", healthCheck)
	router.POST("/proof", generateProof(params, cs, pk, vk))
	return router.Run("0.0.0.0:8010")
}

func init() {
	rootCmd.AddCommand(webApiCmd)
}
