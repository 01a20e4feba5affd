package srixml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dguaman/sri-facturas/internal/models"
	"dguaman/sri-facturas/internal/parsererror"
)

const sampleInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<factura id="comprobante" version="1.1.0">
	<infoTributaria>
		<razonSocial>FARMACIAS FYBECA S.A.</razonSocial>
		<ruc>1790012345001</ruc>
		<codDoc>01</codDoc>
		<estab>001</estab>
		<ptoEmi>002</ptoEmi>
		<secuencial>000001234</secuencial>
	</infoTributaria>
	<infoFactura>
		<fechaEmision>15/01/2025</fechaEmision>
		<razonSocialComprador>JUAN PEREZ</razonSocialComprador>
		<identificacionComprador>0912345678001</identificacionComprador>
		<totalSinImpuestos>100.00</totalSinImpuestos>
		<importeTotal>112.00</importeTotal>
	</infoFactura>
	<detalles>
		<detalle>
			<descripcion>Paracetamol 500mg</descripcion>
			<impuestos><impuesto><tarifa>12</tarifa></impuesto></impuestos>
		</detalle>
		<detalle>
			<descripcion>Vendas elasticas</descripcion>
			<impuestos><impuesto><tarifa>0</tarifa></impuesto></impuestos>
		</detalle>
	</detalles>
</factura>`

func TestParsePurchase_AcrossEnvelopes(t *testing.T) {
	payloads := map[string]string{
		"raw":            sampleInvoice,
		"cdata":          "<autorizacion><comprobante><![CDATA[" + sampleInvoice + "]]></comprobante></autorizacion>",
		"entity escaped": "<comprobante>" + escapeEntities(sampleInvoice) + "</comprobante>",
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			rec, err := ParsePurchase(payload)
			require.NoError(t, err)

			assert.Equal(t, "1790012345001", rec.RUC)
			assert.Equal(t, "FARMACIAS FYBECA S.A.", rec.Issuer)
			assert.Equal(t, "2025-01-15", rec.IssueDate)
			assert.Equal(t, "100.00", rec.Subtotal.StringFixed(2))
			assert.Equal(t, "112.00", rec.Total.StringFixed(2))
			assert.Equal(t, "12", rec.VATRate.String())
			assert.Equal(t, models.CategoryHealth, rec.Category)
			assert.Equal(t, 1, rec.Receipts)
			assert.NotEmpty(t, rec.ID)
		})
	}
}

func TestParsePurchase_DocumentTypeGate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name:    "credit note is rejected",
			doc:     "<factura><codDoc>04</codDoc><ruc>1790012345001</ruc><totalSinImpuestos>10</totalSinImpuestos></factura>",
			wantErr: true,
		},
		{
			name:    "retention is rejected",
			doc:     "<factura><codDoc>07</codDoc><ruc>1790012345001</ruc><totalSinImpuestos>10</totalSinImpuestos></factura>",
			wantErr: true,
		},
		{
			name:    "absent code is accepted",
			doc:     "<factura><ruc>1790012345001</ruc><razonSocial>ACME</razonSocial><totalSinImpuestos>10</totalSinImpuestos></factura>",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePurchase(tt.doc)
			if tt.wantErr {
				var wrongType *parsererror.WrongDocumentTypeError
				require.ErrorAs(t, err, &wrongType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePurchase_ValidityGate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing ruc",
			doc:  "<factura><razonSocial>ACME</razonSocial><totalSinImpuestos>10</totalSinImpuestos></factura>",
		},
		{
			name: "zero subtotal",
			doc:  "<factura><ruc>1790012345001</ruc><totalSinImpuestos>0.00</totalSinImpuestos></factura>",
		},
		{
			name: "unparseable subtotal",
			doc:  "<factura><ruc>1790012345001</ruc><totalSinImpuestos>n/a</totalSinImpuestos></factura>",
		},
		{
			name: "empty payload",
			doc:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePurchase(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestParsePurchase_FallbackChains(t *testing.T) {
	doc := `<comprobanteRetencion>
		<rucEmisor>0990123456001</rucEmisor>
		<razonSocialEmisor>COMERCIAL LOS ANDES</razonSocialEmisor>
		<totalSinImpuestos>55.40</totalSinImpuestos>
	</comprobanteRetencion>`

	rec, err := ParsePurchase(doc)
	require.NoError(t, err)
	assert.Equal(t, "0990123456001", rec.RUC)
	assert.Equal(t, "COMERCIAL LOS ANDES", rec.Issuer)
}

func TestParsePurchase_TotalFallsBackToSubtotal(t *testing.T) {
	doc := "<factura><ruc>1790012345001</ruc><razonSocial>ACME</razonSocial><totalSinImpuestos>80.00</totalSinImpuestos></factura>"

	rec, err := ParsePurchase(doc)
	require.NoError(t, err)
	assert.Equal(t, "80.00", rec.Total.StringFixed(2))
}

func TestParseSales(t *testing.T) {
	rec, err := ParseSales(sampleInvoice)
	require.NoError(t, err)

	assert.Equal(t, "001-002-000001234", rec.DocumentNumber)
	assert.Equal(t, "JUAN PEREZ", rec.BuyerName)
	assert.Equal(t, "0912345678001", rec.BuyerRUC)
	assert.Equal(t, "Paracetamol 500mg, Vendas elasticas", rec.Description)
	assert.Equal(t, "112.00", rec.Total.StringFixed(2))
	assert.Empty(t, rec.Category)
}

func TestParseSales_GrossesUpMissingTotal(t *testing.T) {
	doc := `<factura>
		<ruc>1790012345001</ruc>
		<razonSocial>ACME</razonSocial>
		<totalSinImpuestos>100.00</totalSinImpuestos>
		<detalles><detalle><impuestos><impuesto><tarifa>15</tarifa></impuesto></impuestos></detalle></detalles>
	</factura>`

	rec, err := ParseSales(doc)
	require.NoError(t, err)
	assert.Equal(t, "115.00", rec.Total.StringFixed(2))
}

func TestParseSales_DocumentNumberAllOrNothing(t *testing.T) {
	doc := `<factura>
		<ruc>1790012345001</ruc>
		<estab>001</estab>
		<secuencial>000000001</secuencial>
		<totalSinImpuestos>10.00</totalSinImpuestos>
	</factura>`

	rec, err := ParseSales(doc)
	require.NoError(t, err)
	assert.Empty(t, rec.DocumentNumber)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "slash date", input: "15/01/2025", expected: "2025-01-15"},
		{name: "unpadded slash date", input: "5/1/2025", expected: "2025-01-05"},
		{name: "already normalized", input: "2025-01-15", expected: "2025-01-15"},
		{name: "malformed slash date", input: "15/01", expected: "15/01"},
		{name: "non-numeric fields", input: "dd/mm/yyyy", expected: "dd/mm/yyyy"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}

func TestMaxVATRate(t *testing.T) {
	doc := `<detalles>
		<tarifa>0</tarifa>
		<tarifa>15</tarifa>
		<tarifa>12</tarifa>
	</detalles>`

	assert.Equal(t, "15", maxVATRate(doc).String())
	assert.True(t, maxVATRate("<detalles/>").IsZero())
}
