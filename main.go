package main

import (
	"github.com/pablin202/kvstore/cmd"
)

func main() {
	cmd.Execute()
}
