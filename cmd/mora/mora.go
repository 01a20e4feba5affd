// Package mora handles the late-payment penalty calculation command
package mora

import (
	"fmt"
	"time"

	"dguaman/sri-facturas/cmd/root"
	"dguaman/sri-facturas/internal/models"
	engine "dguaman/sri-facturas/internal/mora"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	obligationType string
	dueDate        string
	calcDate       string
	taxDue         float64
	periodSales    float64
	grossIncome    float64
	notified       bool

	// Cmd represents the mora command
	Cmd = &cobra.Command{
		Use:   "mora",
		Short: "Calcula multas e intereses de una obligación vencida",
		Long: `Calcula la multa y el interés por mora de una obligación tributaria
vencida, según su tipo y las tasas configuradas.`,
		Run: moraFunc,
	}
)

func init() {
	Cmd.Flags().StringVar(&obligationType, "tipo", string(models.ObligationVATMonthly),
		"Tipo de obligación: iva_mensual, iva_semestral, renta, renta_simplificada, multa_administrativa")
	Cmd.Flags().StringVar(&dueDate, "vencimiento", "", "Fecha de vencimiento (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&calcDate, "fecha", "", "Fecha de cálculo (YYYY-MM-DD, por defecto hoy)")
	Cmd.Flags().Float64Var(&taxDue, "impuesto", 0, "Impuesto causado")
	Cmd.Flags().Float64Var(&periodSales, "ventas", 0, "Ventas del período (IVA)")
	Cmd.Flags().Float64Var(&grossIncome, "ingresos", 0, "Ingresos brutos anuales (renta)")
	Cmd.Flags().BoolVar(&notified, "notificado", false, "La autoridad ya notificó la obligación")
}

func moraFunc(cmd *cobra.Command, args []string) {
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		root.Log.Fatalf("Invalid due date %q: %v", dueDate, err)
	}

	fact := models.ObligationFact{
		Type:        models.ObligationType(obligationType),
		DueDate:     due,
		TaxDue:      decimal.NewFromFloat(taxDue),
		PeriodSales: decimal.NewFromFloat(periodSales),
		GrossIncome: decimal.NewFromFloat(grossIncome),
		Notified:    notified,
	}
	if calcDate != "" {
		calc, err := time.Parse("2006-01-02", calcDate)
		if err != nil {
			root.Log.Fatalf("Invalid calculation date %q: %v", calcDate, err)
		}
		fact.CalculationDate = calc
	}

	rates := root.Cfg.Mora.ApplyTo(engine.DefaultRates())
	result := engine.Calculate(fact, rates)

	fmt.Printf("Días de atraso:   %d\n", result.DaysLate)
	fmt.Printf("Meses de atraso:  %d\n", result.MonthsLate)
	if result.Undetermined {
		fmt.Println("Multa:            no determinable")
	} else {
		fmt.Printf("Multa:            %s\n", result.Fine.StringFixed(2))
	}
	fmt.Printf("Interés:          %s\n", result.Interest.StringFixed(2))
	fmt.Printf("Total penalidad:  %s\n", result.TotalPenalty.StringFixed(2))
	fmt.Printf("Total a pagar:    %s\n", result.TotalPayable.StringFixed(2))
	fmt.Printf("  %s\n", result.FineDetail)
	fmt.Printf("  %s\n", result.InterestDetail)

	if result.DaysLate > 0 {
		next := engine.NextSurchargeDate(time.Now(), result.DaysLate)
		fmt.Printf("El recargo mensual aumenta el %s\n", next.Format("2006-01-02"))
	}
}
