package table_test

import (
	"errors"
	"fmt"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/table"
)

func ExampleMake() {
	prog, err := bf.ParseString("a and b")
	if err != nil {
		fmt.Printf("Could not parse program: %v", err)
		return
	}
	text, err := table.Make(prog)
	if err != nil {
		fmt.Printf("Could not make table: %v", err)
		return
	}
	fmt.Println(text)
	// Output:
	// |-------+-------+-------|
	// | a     | b     | F     |
	// |-------+-------+-------|
	// | false | false | false |
	// | false | true  | false |
	// | true  | false | false |
	// | true  | true  | true  |
	// |-------+-------+-------|
}

func ExampleGenerate_unsupported() {
	prog, err := bf.ParseString("a; 1 + 1")
	if err != nil {
		fmt.Printf("Could not parse program: %v", err)
		return
	}
	_, err = table.Generate(prog)
	fmt.Println(errors.Is(err, table.ErrUnsupportedResult))
	fmt.Println(err)
	// Output:
	// true
	// unsupported result type: program evaluated to number 2, expected bool
}

func ExampleVariables() {
	prog, _ := bf.ParseString("c or b\nx = a; x")
	fmt.Println(table.Variables(prog))
	// Output: [a b c x]
}
