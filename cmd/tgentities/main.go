package main

import (
	"log"

	"github.com/riverfjs/tgentities/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
