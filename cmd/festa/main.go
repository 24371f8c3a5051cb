// Command festa is a terminal client for Festa Perfeita: sign in, manage
// the guest list, shopping list and budget, generate party templates and
// talk to the planning assistant.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
