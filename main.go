package main

import (
	"github.com/zklattice/rlwe-gadgets/cmd"
)

func main() {
	cmd.Execute()
}
