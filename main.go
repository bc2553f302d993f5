package main

import (
	"github.com/mibohl/cloning-calculator/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
