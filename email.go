package folio

import (
	"fmt"
	"time"

	"github.com/tsawler/folio/model"
)

const emailBodyTemplate = `Dear User,

Your report "%s" has been generated and is attached to this email.

Report Details:
- Generated on: %s
- Title: %s

Please find the report attached to this email.

Best regards,
Tableau Data Reporter`

// EmailContent builds the plain-text email artifact that accompanies a
// rendered report. It is pure string formatting with no dependency on the
// rendering pipeline.
func EmailContent(reportTitle string, includeHeader bool, now time.Time) model.EmailContent {
	return model.EmailContent{
		Subject:       "Report: " + reportTitle,
		Body:          fmt.Sprintf(emailBodyTemplate, reportTitle, now.Format("2006-01-02 15:04:05"), reportTitle),
		IncludeHeader: includeHeader,
	}
}
