package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
)

// LeadNotifier emails the sales inbox when a new lead is stored.
// It plugs into the intake flow as a best-effort sink.
type LeadNotifier struct {
	sender    EmailSender
	recipient string
}

// NewLeadNotifier returns nil when there is no sender or recipient.
func NewLeadNotifier(sender EmailSender, recipient string) *LeadNotifier {
	recipient = strings.TrimSpace(recipient)
	if sender == nil || recipient == "" {
		return nil
	}
	return &LeadNotifier{sender: sender, recipient: recipient}
}

func (n *LeadNotifier) Name() string { return "sendgrid" }

// Write sends one notification for the stored lead.
func (n *LeadNotifier) Write(ctx context.Context, lead *leads.Lead) error {
	if lead == nil {
		return errors.New("notify: lead required")
	}
	if err := n.sender.Send(ctx, buildLeadEmail(n.recipient, lead)); err != nil {
		return fmt.Errorf("notify: lead %s: %w", lead.ID, err)
	}
	return nil
}

func buildLeadEmail(to string, lead *leads.Lead) EmailMessage {
	business := valueOr(lead.BusinessName, "not provided")
	phone := valueOr(lead.ContactNumber, "not provided")

	var text strings.Builder
	fmt.Fprintf(&text, "A new demo request was submitted.\n\n")
	fmt.Fprintf(&text, "Name: %s\n", lead.Name)
	fmt.Fprintf(&text, "Email: %s\n", lead.Email)
	fmt.Fprintf(&text, "Business: %s\n", business)
	fmt.Fprintf(&text, "Phone: %s\n", phone)
	fmt.Fprintf(&text, "Lead ID: %s\n", lead.ID)

	var body strings.Builder
	body.WriteString("<p>A new demo request was submitted.</p><ul>")
	for _, row := range [][2]string{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Business", business},
		{"Phone", phone},
		{"Lead ID", lead.ID},
	} {
		fmt.Fprintf(&body, "<li><strong>%s:</strong> %s</li>", row[0], html.EscapeString(row[1]))
	}
	body.WriteString("</ul>")

	return EmailMessage{
		To:      to,
		Subject: "New demo request: " + lead.Name,
		Body:    text.String(),
		HTML:    body.String(),
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}
