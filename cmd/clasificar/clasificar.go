// Package clasificar handles the single-issuer classification command
package clasificar

import (
	"fmt"

	"dguaman/sri-facturas/cmd/root"
	"dguaman/sri-facturas/internal/classifier"

	"github.com/spf13/cobra"
)

var (
	issuer string

	// Cmd represents the clasificar command
	Cmd = &cobra.Command{
		Use:   "clasificar",
		Short: "Clasifica un emisor en una categoría de gasto",
		Run:   clasificarFunc,
	}
)

func init() {
	Cmd.Flags().StringVarP(&issuer, "nombre", "n", "", "Razón social del emisor")
}

func clasificarFunc(cmd *cobra.Command, args []string) {
	if issuer == "" {
		root.Log.Fatal("An issuer name is required (--nombre)")
	}
	fmt.Println(classifier.Classify(issuer))
}
