package mail

import (
	"embed"
	"fmt"
	"strings"

	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/Growth-8020/free-scripts/internal/entity"
)

//go:embed templates/*.gohtml templates/*.gotxt
var templatesFS embed.FS

const (
	accountSummaryHTML = "templates/account_summary.gohtml"
	accountSummaryText = "templates/account_summary.gotxt"
)

var (
	summaryHTMLTmpl = htmltemplate.Must(htmltemplate.ParseFS(templatesFS, accountSummaryHTML))
	summaryTextTmpl = texttemplate.Must(texttemplate.ParseFS(templatesFS, accountSummaryText))
)

// RenderAccountSummary renders the period-over-period summary email in both
// representations.
func RenderAccountSummary(data entity.AccountSummary) (html string, text string, err error) {
	var hb strings.Builder
	if err := summaryHTMLTmpl.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("error executing html summary template: %w", err)
	}
	var tb strings.Builder
	if err := summaryTextTmpl.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("error executing text summary template: %w", err)
	}
	return hb.String(), tb.String(), nil
}
