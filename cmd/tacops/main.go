package main

import (
	"github.com/bosjol/tactical-ops/internal/cli"
)

func main() {
	cli.Execute()
}
