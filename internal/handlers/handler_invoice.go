package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Folio.FolioNumber}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
td.amount, th.amount { text-align: right; }
tr.voided td { text-decoration: line-through; color: #999; }
.totals td { font-weight: bold; }
.paid-stamp { color: #1a7f37; font-size: 1.4em; font-weight: bold; border: 3px solid #1a7f37; display: inline-block; padding: 4px 16px; transform: rotate(-4deg); }
</style>
</head>
<body>
<h1>Invoice {{.Folio.FolioNumber}}</h1>
<p>Folio: {{.Folio.FolioID}}<br>
Guest: {{.Folio.GuestID}}<br>
Status: {{.Folio.Status}}<br>
Generated: {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>

<h2>Charges</h2>
<table>
<tr><th>Date</th><th>Description</th><th class="amount">Qty</th><th class="amount">Unit</th><th class="amount">Amount</th><th class="amount">Tax</th></tr>
{{range .Folio.Items}}
<tr{{if .Voided}} class="voided"{{end}}>
<td>{{.ServiceDate.Format "2006-01-02"}}</td>
<td>{{.Description}}{{if .Voided}} (voided){{end}}</td>
<td class="amount">{{.Quantity}}</td>
<td class="amount">{{.UnitPrice.StringFixed 2}}</td>
<td class="amount">{{.TotalPrice.StringFixed 2}}</td>
<td class="amount">{{.TaxAmount.StringFixed 2}}</td>
</tr>
{{end}}
</table>

<h2>Payments</h2>
<table>
<tr><th>Method</th><th>Reference</th><th class="amount">Amount</th></tr>
{{range .Folio.Payments}}
<tr{{if .Voided}} class="voided"{{end}}>
<td>{{.Method}}{{if .Voided}} (voided){{end}}</td>
<td>{{.ReferenceNumber}}</td>
<td class="amount">{{.Amount.StringFixed 2}}</td>
</tr>
{{end}}
</table>

<h2>Summary</h2>
<table>
<tr><td>Subtotal</td><td class="amount">{{.Folio.Subtotal.StringFixed 2}}</td></tr>
<tr><td>Tax</td><td class="amount">{{.Folio.TaxAmount.StringFixed 2}}</td></tr>
<tr><td>Service charge</td><td class="amount">{{.Folio.ServiceCharge.StringFixed 2}}</td></tr>
<tr class="totals"><td>Total</td><td class="amount">{{.Folio.TotalAmount.StringFixed 2}}</td></tr>
<tr><td>Paid</td><td class="amount">{{.Folio.PaidAmount.StringFixed 2}}</td></tr>
<tr class="totals"><td>Balance due</td><td class="amount">{{.Folio.Balance.StringFixed 2}}</td></tr>
</table>

{{if .PaidInFull}}<p><span class="paid-stamp">PAID IN FULL</span></p>{{end}}
</body>
</html>
`))

type invoiceView struct {
	Folio       dto.FolioResponse
	GeneratedAt time.Time
	PaidInFull  bool
}

// getInvoice godoc
// @Summary Render a folio invoice
// @Description Renders the folio as a printable HTML invoice
// @Tags folios
// @Produce html
// @Param id path string true "Folio ID"
// @Success 200 {string} string "HTML invoice"
// @Failure 404 {object} map[string]string "Folio not found"
// @Security BearerAuth
// @Router /folios/{id}/invoice [get]
func (h *folioHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	folio, err := h.folioService.GetFolio(c.Request.Context(), tc, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve folio")
		return
	}

	view := invoiceView{
		Folio:       dto.ToFolioResponse(folio),
		GeneratedAt: time.Now(),
		PaidInFull:  folio.Balance.LessThanOrEqual(decimal.Zero),
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := invoiceTemplate.Execute(c.Writer, view); err != nil {
		logger.Error("Failed to render invoice", "error", err.Error())
	}
}
