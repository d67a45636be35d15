package main

import (
	"log"

	"github.com/spigell/jobscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
