package gradient_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/noisefield/gradient"
)

// ExampleSampler_Sample samples inside and outside the domain.
func ExampleSampler_Sample() {
	s, err := gradient.New(4, 4, gradient.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := s.Sample(2, 3) // lattice corner
	fmt.Println(v == 0)

	_, err = s.Sample(4, 0)
	fmt.Println(errors.Is(err, gradient.ErrOutOfDomain))
	fmt.Println(err)
	// Output:
	// true
	// true
	// Sample(4,0) outside [0,4)x[0,4): gradient: sample point out of domain
}
