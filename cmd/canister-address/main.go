package main

import "github.com/ethbridge-poc/canister-address/internal/cmd"

func main() {
	cmd.Execute()
}
