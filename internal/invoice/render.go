package invoice

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

// Fixed bank-transfer details printed on every invoice.
const (
	BankName      = "Standard Bank"
	AccountName   = "St John Vianney"
	AccountNumber = "011801174"
	BranchCode    = "001245"
)

type PlayerRow struct {
	Name                string
	TshirtSize          string
	DietaryRequirements string
	GalaDinner          string
}

type Data struct {
	InvoiceNumber      string
	Date               string
	CustomerName       string
	CustomerEmail      string
	CustomerAddress    string
	PackageName        string
	PackageDescription string
	Players            []PlayerRow
	Total              string

	BankName      string
	AccountName   string
	AccountNumber string
	BranchCode    string
	Reference     string
}

// FormatAmount renders a currency amount with the fixed Rand prefix and
// exactly two fraction digits: 1234.5 becomes R1234.50.
func FormatAmount(d decimal.Decimal) string {
	return "R" + d.StringFixed(2)
}

// BuildData flattens a registration, its (possibly missing) package and
// its players into the template model. Dietary requirements default to
// "None specified"; the gala-dinner flag renders as Yes/No.
func BuildData(reg *models.Registration, players []models.Player) Data {
	d := Data{
		InvoiceNumber:   reg.InvoiceNumber,
		Date:            reg.CreatedAt.In(time.Local).Format("02 January 2006"),
		CustomerName:    reg.ContactFullName(),
		CustomerEmail:   reg.ContactEmail,
		CustomerAddress: reg.CompanyAddress,
		Total:           FormatAmount(reg.TotalAmount),
		BankName:        BankName,
		AccountName:     AccountName,
		AccountNumber:   AccountNumber,
		BranchCode:      BranchCode,
		Reference:       reg.ContactFullName(),
	}

	if reg.Package != nil {
		d.PackageName = reg.Package.Name
		d.PackageDescription = reg.Package.Description
	}

	for _, p := range players {
		row := PlayerRow{
			Name:                p.PlayerName,
			TshirtSize:          p.TshirtSize,
			DietaryRequirements: p.DietaryRequirements,
			GalaDinner:          "No",
		}
		if row.DietaryRequirements == "" {
			row.DietaryRequirements = "None specified"
		}
		if p.AttendingGalaDinner {
			row.GalaDinner = "Yes"
		}
		d.Players = append(d.Players, row)
	}

	return d
}

// Render produces the HTML invoice document sent by email and shown
// on-screen after registration.
func Render(data Data) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 20px; color: #333; }
      .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #4CAF50; padding-bottom: 20px; }
      .section { margin-bottom: 20px; }
      .payment-details { margin-top: 30px; padding: 15px; background: #f8f9fa; border: 1px solid #dee2e6; border-radius: 5px; }
      .total { font-size: 18px; font-weight: bold; margin-top: 20px; text-align: right; color: #4CAF50; }
      table { width: 100%; border-collapse: collapse; margin: 10px 0; }
      th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
      th { background-color: #f8f9fa; font-weight: bold; }
      .highlight { color: #4CAF50; font-weight: bold; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1 style="color: #4CAF50; margin: 0;">St John's Church Golf Day</h1>
      <h2 style="margin: 10px 0;">Invoice</h2>
    </div>

    <div class="section">
      <p><strong>Invoice Number:</strong> <span class="highlight">{{.InvoiceNumber}}</span></p>
      <p><strong>Date:</strong> {{.Date}}</p>
    </div>

    <div class="section">
      <h3 style="color: #4CAF50;">Customer Details:</h3>
      <p><strong>Name:</strong> {{.CustomerName}}</p>
      <p><strong>Email:</strong> {{.CustomerEmail}}</p>
      <p><strong>Address:</strong> {{.CustomerAddress}}</p>
    </div>

    <div class="section">
      <h3 style="color: #4CAF50;">Package Details:</h3>
      <table>
        <thead>
          <tr>
            <th>Description</th>
            <th style="text-align: right;">Amount</th>
          </tr>
        </thead>
        <tbody>
          <tr>
            <td>
              <strong>{{.PackageName}}</strong><br>
              <small style="color: #666;">{{.PackageDescription}}</small>
            </td>
            <td style="text-align: right;"><strong>{{.Total}}</strong></td>
          </tr>
        </tbody>
      </table>
    </div>
{{if .Players}}
    <div class="section">
      <h3 style="color: #4CAF50;">Player Details:</h3>
      <table>
        <thead>
          <tr>
            <th>Player Name</th>
            <th>T-Shirt Size</th>
            <th>Dietary Requirements</th>
            <th>Gala Dinner</th>
          </tr>
        </thead>
        <tbody>
{{range .Players}}          <tr>
            <td>{{.Name}}</td>
            <td>{{.TshirtSize}}</td>
            <td>{{.DietaryRequirements}}</td>
            <td>{{.GalaDinner}}</td>
          </tr>
{{end}}        </tbody>
      </table>
    </div>
{{end}}
    <div class="total">
      <strong>Total Amount: {{.Total}}</strong>
    </div>

    <div class="payment-details">
      <h3 style="color: #4CAF50; margin-top: 0;">Payment Details:</h3>
      <table style="margin: 0;">
        <tr><td><strong>Bank:</strong></td><td>{{.BankName}}</td></tr>
        <tr><td><strong>Account Name:</strong></td><td>{{.AccountName}}</td></tr>
        <tr><td><strong>Account Number:</strong></td><td>{{.AccountNumber}}</td></tr>
        <tr><td><strong>Branch Code:</strong></td><td>{{.BranchCode}}</td></tr>
        <tr><td><strong>Reference:</strong></td><td class="highlight">{{.Reference}}</td></tr>
      </table>
      <p style="margin-top: 15px; font-style: italic; color: #666;">
        <strong>Important:</strong> Please use your name as the payment reference when making the payment.
      </p>
    </div>

    <div style="margin-top: 30px; text-align: center; color: #666; font-size: 12px;">
      <p>Thank you for registering for St John's Church Golf Day!</p>
      <p>If you have any questions, please contact us.</p>
    </div>
  </body>
</html>
`))
