package matrix_test

import (
	"fmt"
	"math/rand"

	"github.com/urooj88/OmegawattFramework-HPC/matrix"
)

// ExampleMul multiplies a seeded random matrix by the identity and shows
// the product is unchanged.
func ExampleMul() {
	// 1) Build a 2×2 matrix with a pinned seed (reproducible values).
	a, _ := matrix.NewSquare(2)
	_ = matrix.Randomize(a, rand.New(rand.NewSource(1)))

	// 2) Multiply by I₂: the neutral element of the product.
	id, _ := matrix.Identity(2)
	c, _ := matrix.Mul(a, id)

	// 3) A×I leaves A unchanged, cell for cell.
	av, _ := a.At(0, 0)
	cv, _ := c.At(0, 0)
	fmt.Println("A[0][0] == (A×I)[0][0]:", av == cv)

	// Output:
	// A[0][0] == (A×I)[0][0]: true
}
