package main

import (
	"os"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/

// main starts the charta demo CLI. See root.go for the command structure.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
