package main

import (
	"fmt"
	"os"

	"dguaman/sri-facturas/cmd/clasificar"
	"dguaman/sri-facturas/cmd/importar"
	moracmd "dguaman/sri-facturas/cmd/mora"
	"dguaman/sri-facturas/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importar.Cmd)
	root.Cmd.AddCommand(moracmd.Cmd)
	root.Cmd.AddCommand(clasificar.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
