package main

import (
	"github.com/aryasetya/storefront/cmd"
)

func main() {
	cmd.Start()
}
