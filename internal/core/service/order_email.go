package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// equipmentType is the order category whose items carry a free-text
// description instead of a unit.
const equipmentType = "Informatique"

// orderMailTmpl is the notification document sent to the operations
// mailbox. Layout and wording follow the portal's established mail format.
var orderMailTmpl = template.Must(template.New("order").Parse(`<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
  <div style="background-color: #f0f0f0; padding: 20px; text-align: center;">
    <h1 style="margin: 0; color: #333;">Nouvelle Commande de {{.Type}}</h1>
  </div>
  <div style="padding: 20px;">
    <p><strong>De:</strong> {{.Requester}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <h2 style="margin-top: 30px; border-bottom: 1px solid #ddd; padding-bottom: 10px;">Articles commandés</h2>
    <table border="1" cellpadding="8" style="border-collapse: collapse; width: 100%;">
      <tr>
        <th style="text-align: left;">Article</th>
        <th style="text-align: center;">Quantité</th>
        {{if .Equipment}}<th style="text-align: left;">Description</th>{{else}}<th style="text-align: left;">Unité</th>{{end}}
      </tr>
      {{range .Items}}<tr>
        <td>{{.Name}}</td>
        <td style="text-align: center;">{{.Quantity}}</td>
        {{if $.Equipment}}<td>{{.Description}}</td>{{else}}<td>{{.Unit}}</td>{{end}}
      </tr>
      {{end}}
    </table>
    {{if .Notes}}
    <h2 style="margin-top: 30px; border-bottom: 1px solid #ddd; padding-bottom: 10px;">Notes</h2>
    <p>{{.Notes}}</p>
    {{end}}
    <p style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 0.9em; color: #777;">
      Ce message a été généré automatiquement par le portail de commandes internes de {{.Company}}.
    </p>
  </div>
</div>`))

type orderMailItem struct {
	Name        string
	Quantity    int
	Unit        string
	Description string
}

type orderMailData struct {
	Type      string
	Requester string
	Date      string
	Equipment bool
	Items     []orderMailItem
	Notes     template.HTML
	Company   string
}

// renderOrderMail produces the HTML body for an order notification.
func renderOrderMail(order *domain.Order, companyName string) (string, error) {
	items := make([]orderMailItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = orderMailItem{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Description: it.Description,
		}
		if items[i].Description == "" {
			items[i].Description = "-"
		}
	}

	data := orderMailData{
		Type:      order.Type,
		Requester: order.Requester,
		Date:      order.Date.Format("02.01.2006 15:04"),
		Equipment: order.Type == equipmentType,
		Items:     items,
		Notes:     notesHTML(order.Notes),
		Company:   companyName,
	}

	var b strings.Builder
	if err := orderMailTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render order mail: %w", err)
	}
	return b.String(), nil
}

// notesHTML escapes the free-text notes and converts newlines to <br>.
func notesHTML(notes string) template.HTML {
	if notes == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(notes)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
