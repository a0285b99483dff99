package main

import "fleet-ledger/cmd"

func main() {
	cmd.Execute()
}
