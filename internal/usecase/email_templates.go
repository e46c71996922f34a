package usecase

import (
	"fmt"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"
)

// One fixed HTML/text template per notification type. Estimates get an
// approval request, invoices a payment request.

func buildApprovalEmail(rec entities.ApprovalRecord, baseURL string) interfaces.EmailMessage {
	link := fmt.Sprintf("%s/v1/public/approvals/%s", baseURL, rec.Token)

	if rec.DocumentKind == entities.DocumentKindInvoice {
		return interfaces.EmailMessage{
			To:      rec.ContactEmail,
			Subject: fmt.Sprintf("Payment requested for invoice %s", rec.DocumentNumber),
			HTMLBody: fmt.Sprintf(
				`<p>Hi %s,</p>`+
					`<p>Invoice <strong>%s</strong> for %s is ready for your review and payment.</p>`+
					`<p><a href="%s">Review and pay</a></p>`+
					`<p>Total due: $%.2f</p>`,
				rec.ContactName, rec.DocumentNumber, eventLine(rec), link, rec.DocumentTotal),
			TextBody: fmt.Sprintf(
				"Hi %s,\n\nInvoice %s for %s is ready for your review and payment.\n\nReview and pay: %s\n\nTotal due: $%.2f\n",
				rec.ContactName, rec.DocumentNumber, eventLine(rec), link, rec.DocumentTotal),
		}
	}

	return interfaces.EmailMessage{
		To:      rec.ContactEmail,
		Subject: fmt.Sprintf("Estimate %s is ready for your approval", rec.DocumentNumber),
		HTMLBody: fmt.Sprintf(
			`<p>Hi %s,</p>`+
				`<p>Estimate <strong>%s</strong> for %s is ready for your approval.</p>`+
				`<p><a href="%s">Review and respond</a></p>`+
				`<p>Total: $%.2f</p>`,
			rec.ContactName, rec.DocumentNumber, eventLine(rec), link, rec.DocumentTotal),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nEstimate %s for %s is ready for your approval.\n\nReview and respond: %s\n\nTotal: $%.2f\n",
			rec.ContactName, rec.DocumentNumber, eventLine(rec), link, rec.DocumentTotal),
	}
}

func eventLine(rec entities.ApprovalRecord) string {
	switch {
	case rec.EventVenue != "" && rec.EventDate != "":
		return fmt.Sprintf("your event at %s on %s", rec.EventVenue, rec.EventDate)
	case rec.EventVenue != "":
		return "your event at " + rec.EventVenue
	case rec.EventDate != "":
		return "your event on " + rec.EventDate
	}
	return "your event"
}
