package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"aidquiz/cmd"
)

func main() {
	// A .env next to the binary can set AIDQUIZ_* variables; absence is
	// the normal case.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
