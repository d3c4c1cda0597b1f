package main

import "github.com/bhr/crm-console/cmd"

func main() {
	cmd.Execute()
}
