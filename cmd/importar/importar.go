// Package importar handles the batch invoice import command
package importar

import (
	"context"

	"dguaman/sri-facturas/cmd/root"
	"dguaman/sri-facturas/internal/export"
	"dguaman/sri-facturas/internal/gmailsource"
	"dguaman/sri-facturas/internal/importer"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
)

var (
	user  string
	query string

	// Cmd represents the importar command
	Cmd = &cobra.Command{
		Use:   "importar",
		Short: "Importa facturas electrónicas desde Gmail",
		Long: `Busca correos con facturas electrónicas adjuntas, extrae y clasifica
los comprobantes XML y escribe los registros deduplicados a un archivo CSV.`,
		Run: importarFunc,
	}
)

func init() {
	Cmd.Flags().StringVar(&user, "user", "", "Gmail user id (default from config)")
	Cmd.Flags().StringVar(&query, "query", "", "Gmail search query (default from config)")
}

func importarFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	cfg := root.Cfg

	if user == "" {
		user = cfg.Import.User
	}
	if query == "" {
		query = cfg.Import.Query
	}
	if root.Output == "" {
		root.Log.Fatal("An output CSV file is required (--output)")
	}

	httpClient, err := google.DefaultClient(ctx, gmail.GmailReadonlyScope)
	if err != nil {
		root.Log.Fatalf("Error obtaining Google credentials: %v", err)
	}

	source, err := gmailsource.New(ctx, httpClient, user, query, cfg.Import.MaxResults)
	if err != nil {
		root.Log.Fatalf("Error creating Gmail source: %v", err)
	}

	result, err := importer.New(source, cfg.Import.SourceTag).Run(ctx, reportProgress)
	if err != nil {
		root.Log.Fatalf("Import failed: %v", err)
	}

	if err := export.WriteRecordsToCSV(result.Records, root.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}

	root.Log.Infof("%s: %d registros escritos en %s (errores: %d)",
		result.Message, result.Total, root.Output, result.Errors)
}

// reportProgress logs each progress event as it arrives.
func reportProgress(p importer.Progress) {
	if p.Step == importer.StepProcessing {
		root.Log.Infof("[%d/%d] %s", p.Current, p.Total, p.Message)
		return
	}
	root.Log.Info(p.Message)
}
