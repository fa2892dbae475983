package circuits

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// CompileStatement compiles the named statement circuit for the given proof
// system ("groth16" or "plonk"), runs the setup, and saves the constraint
// system, keys and Solidity verifier under path/build.
func CompileStatement(name string, p ringq.Params, system string, path string) error {
	log := logger.Logger()

	circuit, err := NewCircuit(name, p)
	if err != nil {
		return err
	}

	var builder frontend.NewBuilder
	switch system {
	case "plonk":
		builder = scs.NewBuilder
	case "groth16":
		builder = r1cs.NewBuilder
	default:
		return fmt.Errorf("unknown proof system %q, expected groth16 or plonk", system)
	}

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), builder, circuit)
	if err != nil {
		return fmt.Errorf("failed to compile circuit: %w", err)
	}

	log.Info().Msg("Running circuit setup")
	start := time.Now()
	buildPath := path + "/build"
	switch system {
	case "plonk":
		srs, err := test.NewKZGSRS(cs)
		if err != nil {
			return err
		}
		pk, vk, err := plonk.Setup(cs, srs)
		if err != nil {
			return err
		}
		if err := SavePlonkCircuitData(buildPath, cs, pk, vk); err != nil {
			return err
		}
	case "groth16":
		pk, vk, err := groth16.Setup(cs)
		if err != nil {
			return err
		}
		if err := SaveGroth16CircuitData(buildPath, cs, pk, vk); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	log.Info().Msg("Successfully ran circuit setup, time: " + elapsed.String())

	return nil
}

func SavePlonkCircuitData(path string, cs constraint.ConstraintSystem, pk plonk.ProvingKey, vk plonk.VerifyingKey) error {
	log := logger.Logger()
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	log.Info().Msg("Saving circuit constraints to " + path + "/cs.bin")
	csFile, err := os.Create(path + "/cs.bin")
	if err != nil {
		return fmt.Errorf("failed to create cs file: %w", err)
	}
	start := time.Now()
	cs.WriteTo(csFile)
	csFile.Close()
	log.Debug().Msg("Successfully saved circuit constraints, time: " + time.Since(start).String())

	log.Info().Msg("Saving proving key to " + path + "/pk.bin")
	pkFile, err := os.Create(path + "/pk.bin")
	if err != nil {
		return fmt.Errorf("failed to create pk file: %w", err)
	}
	start = time.Now()
	pk.WriteRawTo(pkFile)
	pkFile.Close()
	log.Debug().Msg("Successfully saved proving key, time: " + time.Since(start).String())

	log.Info().Msg("Saving verifying key to " + path + "/vk.bin")
	vkFile, err := os.Create(path + "/vk.bin")
	if err != nil {
		return fmt.Errorf("failed to create vk file: %w", err)
	}
	start = time.Now()
	vk.WriteRawTo(vkFile)
	vkFile.Close()
	log.Info().Msg("Successfully saved verifying key, time: " + time.Since(start).String())

	start = time.Now()
	err = ExportPlonkVerifierSolidity(path, vk)
	log.Info().Msg("Successfully saved solidity file, time: " + time.Since(start).String())
	if err != nil {
		return fmt.Errorf("failed to create solidity file: %w", err)
	}
	return nil
}

func SaveGroth16CircuitData(path string, cs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey) error {
	log := logger.Logger()
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	log.Info().Msg("Saving circuit constraints to " + path + "/cs.bin")
	csFile, err := os.Create(path + "/cs.bin")
	if err != nil {
		return fmt.Errorf("failed to create cs file: %w", err)
	}
	start := time.Now()
	cs.WriteTo(csFile)
	csFile.Close()
	log.Debug().Msg("Successfully saved circuit constraints, time: " + time.Since(start).String())

	log.Info().Msg("Saving proving key to " + path + "/pk.bin")
	pkFile, err := os.Create(path + "/pk.bin")
	if err != nil {
		return fmt.Errorf("failed to create pk file: %w", err)
	}
	start = time.Now()
	pk.WriteRawTo(pkFile)
	pkFile.Close()
	log.Debug().Msg("Successfully saved proving key, time: " + time.Since(start).String())

	log.Info().Msg("Saving verifying key to " + path + "/vk.bin")
	vkFile, err := os.Create(path + "/vk.bin")
	if err != nil {
		return fmt.Errorf("failed to create vk file: %w", err)
	}
	start = time.Now()
	vk.WriteRawTo(vkFile)
	vkFile.Close()
	log.Info().Msg("Successfully saved verifying key, time: " + time.Since(start).String())

	start = time.Now()
	err = ExportGrothVerifierSolidity(path, vk)
	log.Info().Msg("Successfully saved solidity file, time: " + time.Since(start).String())
	if err != nil {
		return fmt.Errorf("failed to create solidity file: %w", err)
	}
	return nil
}

func ExportPlonkVerifierSolidity(path string, vk plonk.VerifyingKey) error {
	log := logger.Logger()
	buf := new(bytes.Buffer)
	if err := vk.ExportSolidity(buf); err != nil {
		log.Err(err).Msg("failed to export verifying key to solidity")
		return err
	}

	contractFile, err := os.Create(path + "/PlonkVerifier.sol")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(contractFile)
	if _, err = w.Write(buf.Bytes()); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}

	return contractFile.Close()
}

func ExportGrothVerifierSolidity(path string, vk groth16.VerifyingKey) error {
	log := logger.Logger()
	buf := new(bytes.Buffer)
	if err := vk.ExportSolidity(buf); err != nil {
		log.Err(err).Msg("failed to export verifying key to solidity")
		return err
	}

	contractFile, err := os.Create(path + "/GrothVerifier.sol")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(contractFile)
	if _, err = w.Write(buf.Bytes()); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}

	return contractFile.Close()
}

func LoadPlonkVerifierKey(path string) (plonk.VerifyingKey, error) {
	log := logger.Logger()
	vkFile, err := os.Open(path + "/vk.bin")
	if err != nil {
		return nil, fmt.Errorf("failed to open vk file: %w", err)
	}
	vk := plonk.NewVerifyingKey(ecc.BN254)
	start := time.Now()
	_, err = vk.ReadFrom(vkFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read vk file: %w", err)
	}
	vkFile.Close()
	log.Debug().Msg("Successfully loaded verifying key, time: " + time.Since(start).String())

	return vk, nil
}

func LoadPlonkProverData(path string) (constraint.ConstraintSystem, plonk.ProvingKey, error) {
	log := logger.Logger()
	csFile, err := os.Open(path + "/cs.bin")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cs file: %w", err)
	}
	cs := plonk.NewCS(ecc.BN254)
	start := time.Now()
	_, err = cs.ReadFrom(bufio.NewReader(csFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read cs file: %w", err)
	}
	csFile.Close()
	log.Debug().Msg("Successfully loaded constraint system, time: " + time.Since(start).String())

	pkFile, err := os.Open(path + "/pk.bin")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pk file: %w", err)
	}
	pk := plonk.NewProvingKey(ecc.BN254)
	start = time.Now()
	_, err = pk.ReadFrom(bufio.NewReader(pkFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read pk file: %w", err)
	}
	pkFile.Close()
	log.Debug().Msg("Successfully loaded proving key, time: " + time.Since(start).String())

	return cs, pk, nil
}

func LoadGroth16VerifierKey(path string) (groth16.VerifyingKey, error) {
	log := logger.Logger()
	vkFile, err := os.Open(path + "/vk.bin")
	if err != nil {
		return nil, fmt.Errorf("failed to open vk file: %w", err)
	}
	vk := groth16.NewVerifyingKey(ecc.BN254)
	start := time.Now()
	_, err = vk.ReadFrom(vkFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read vk file: %w", err)
	}
	vkFile.Close()
	log.Debug().Msg("Successfully loaded verifying key, time: " + time.Since(start).String())

	return vk, nil
}

func LoadGroth16ProverData(path string) (constraint.ConstraintSystem, groth16.ProvingKey, error) {
	log := logger.Logger()
	csFile, err := os.Open(path + "/cs.bin")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cs file: %w", err)
	}
	cs := groth16.NewCS(ecc.BN254)
	start := time.Now()
	_, err = cs.ReadFrom(bufio.NewReader(csFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read cs file: %w", err)
	}
	csFile.Close()
	log.Debug().Msg("Successfully loaded constraint system, time: " + time.Since(start).String())

	pkFile, err := os.Open(path + "/pk.bin")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pk file: %w", err)
	}
	pk := groth16.NewProvingKey(ecc.BN254)
	start = time.Now()
	_, err = pk.ReadFrom(bufio.NewReader(pkFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read pk file: %w", err)
	}
	pkFile.Close()
	log.Debug().Msg("Successfully loaded proving key, time: " + time.Since(start).String())

	return cs, pk, nil
}
