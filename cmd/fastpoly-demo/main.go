// Command fastpoly-demo reproduces the four API-usage patterns of the
// original FastPoly demo: file-driven reduction, building polynomials from
// scratch, the gate-shortcut functions, and PAC proof generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"fastpoly"
)

func main() {
	specPath := flag.String("spec", "testdata/fulladder_example.txt", "polynomial spec file for the file-driven example")
	polysPath := flag.String("polys", "example.polys", "output path for the PAC polys file")
	proofPath := flag.String("proof", "example.proof", "output path for the PAC proof file")
	flag.Parse()

	if err := exampleFileDriven(*specPath); err != nil {
		log.Printf("Example 1 (file-driven) skipped: %v", err)
	}
	exampleFromScratch()
	exampleGateShortcuts()
	if err := exampleProofGeneration(*polysPath, *proofPath); err != nil {
		log.Fatalf("Example 4 (proof generation) failed: %v", err)
	}
}

// exampleFileDriven is API Example 1: reading a specification and its
// substitutions from an external file.
func exampleFileDriven(path string) error {
	spec, subs, err := fastpoly.ReadSpecFile(path)
	if err != nil {
		return err
	}
	if err := fastpoly.ReduceFile(spec, subs); err != nil {
		return err
	}
	fmt.Println("Result1:", spec)
	return nil
}

// exampleFromScratch is API Example 2: building gate polynomials from
// scratch and substituting them in via ReplaceVarByPoly.
func exampleFromScratch() {
	x8poly := fastpoly.NewPolynomial(7)
	x8poly.AddMonomial(fastpoly.NewMonomialSingle(5))
	x8poly.AddMonomial(fastpoly.NewMonomialSingle(6))
	x8poly.AddMonomial(fastpoly.NewMonomialPair(5, 6, big.NewInt(-1)))

	x7poly := fastpoly.NewPolynomial(5)
	x7poly.AddMonomial(fastpoly.NewMonomialSingle(3))
	x7poly.AddMonomial(fastpoly.NewMonomialSingle(4))
	x7poly.AddMonomial(fastpoly.NewMonomialPair(3, 4, big.NewInt(-2)))

	x6poly := fastpoly.NewPolynomial(5)
	x6poly.AddMonomial(fastpoly.NewMonomialPair(3, 4, big.NewInt(1)))

	x5poly := fastpoly.NewPolynomial(3)
	x5poly.AddMonomial(fastpoly.NewMonomialPair(1, 2, big.NewInt(1)))

	x4poly := fastpoly.NewPolynomial(3)
	x4poly.AddMonomial(fastpoly.NewMonomialSingle(1))
	x4poly.AddMonomial(fastpoly.NewMonomialSingle(2))
	x4poly.AddMonomial(fastpoly.NewMonomialPair(1, 2, big.NewInt(-2)))

	spec2 := fastpoly.NewPolynomial(9)
	spec2.AddMonomial(fastpoly.NewMonomialSingleCoef(8, big.NewInt(2)))
	spec2.AddMonomial(fastpoly.NewMonomialSingle(7))

	spec2.ReplaceVarByPoly(8, x8poly)
	spec2.ReplaceVarByPoly(7, x7poly)
	spec2.ReplaceVarByPoly(6, x6poly)
	spec2.ReplaceVarByPoly(5, x5poly)
	spec2.ReplaceVarByPoly(4, x4poly)
	fmt.Println("Result2:", spec2)
}

// exampleGateShortcuts is API Example 3: the same full-adder circuit built
// with the gate-shortcut convenience functions.
func exampleGateShortcuts() {
	spec3 := fastpoly.NewPolynomial(9)
	spec3.AddMonomial(fastpoly.NewMonomialSingleCoef(8, big.NewInt(2)))
	spec3.AddMonomial(fastpoly.NewMonomialSingle(7))

	spec3.ReplaceOR(8, 5, 6)
	spec3.ReplaceXOR(7, 3, 4)
	spec3.ReplaceAND(6, 3, 4)
	spec3.ReplaceAND(5, 1, 2)
	spec3.ReplaceXOR(4, 1, 2)
	fmt.Println("Result3:", spec3)
}

// exampleProofGeneration is API Example 4: the same circuit, this time with
// PAC proof generation enabled, followed by a replay of the generated
// proof files to confirm they reproduce the same final polynomial.
func exampleProofGeneration(polysPath, proofPath string) error {
	spec4 := fastpoly.NewPolynomial(9)
	spec4.AddMonomial(fastpoly.NewMonomialSingleCoef(8, big.NewInt(2)))
	spec4.AddMonomial(fastpoly.NewMonomialSingle(7))

	session, err := fastpoly.NewProofSession(polysPath, proofPath)
	if err != nil {
		return err
	}
	defer session.Close()
	if err := session.WriteStartingPoly(spec4); err != nil {
		return err
	}
	spec4.AttachProofSession(session)

	if err := spec4.ReplaceORWithQuotients(8, 5, 6); err != nil {
		return err
	}
	if err := spec4.ReplaceXORWithQuotients(7, 3, 4); err != nil {
		return err
	}
	if err := spec4.ReplaceANDWithQuotients(6, 3, 4); err != nil {
		return err
	}
	if err := spec4.ReplaceANDWithQuotients(5, 1, 2); err != nil {
		return err
	}
	if err := spec4.ReplaceXORWithQuotients(4, 1, 2); err != nil {
		return err
	}
	fmt.Println("Result4:", spec4)

	replayed, err := fastpoly.ReplayPACProof(polysPath, proofPath)
	if err != nil {
		return fmt.Errorf("replaying PAC proof: %w", err)
	}
	fmt.Println("Replayed:", replayed)

	if os.Getenv("FASTPOLY_DEMO_KEEP_PROOF") == "" {
		os.Remove(polysPath)
		os.Remove(proofPath)
	}
	return nil
}
