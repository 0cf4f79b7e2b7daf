package rational_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numkit/nums"
	"github.com/katalvlaran/numkit/rational"
)

// Example demonstrates exact fraction arithmetic end to end.
func Example() {
	third, _ := rational.New(1, 3)
	sixth, _ := rational.New(1, 6)

	sum, _ := third.Add(sixth)
	fmt.Println(sum) // exactly one half, no float drift

	product, _ := sum.Mul(sum)
	fmt.Println(product)

	// Output:
	// 1/2
	// 1/4
}

// ExampleFromFloat64 recovers π's classic convergents under a denominator bound.
func ExampleFromFloat64() {
	coarse, _ := rational.FromFloat64(3.141592653589793, 10)
	fine, _ := rational.FromFloat64(3.141592653589793, 400)
	fmt.Println(coarse, fine)

	// Output:
	// 22/7 355/113
}

// ExampleParse shows the accepted grammars.
func ExampleParse() {
	a, _ := rational.Parse("-6/8")
	b, _ := rational.Parse("0.125")
	_, err := rational.Parse("six eighths")
	fmt.Println(a, b, errors.Is(err, rational.ErrParse))

	// Output:
	// -3/4 1/8 true
}

// ExampleRational_Add surfaces overflow instead of wrapping.
func ExampleRational_Add() {
	big, _ := rational.New(1<<62, 1)
	_, err := big.Add(big)
	fmt.Println(errors.Is(err, nums.ErrOverflow))

	// Output:
	// true
}
