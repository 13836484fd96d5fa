package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/davetechinnovation/contact-backend/internal/contact"
)

const divider = "------------------------------------"

// ownerBody renders the full-metadata notification the site owner receives.
func ownerBody(sub contact.Submission, enr contact.Enrichment, now time.Time) string {
	mobile := sub.Mobile
	if mobile == "" {
		mobile = "N/A"
	}

	var b strings.Builder
	b.WriteString("You just received a new message:\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", mobile)
	fmt.Fprintf(&b, "Message: %s\n", sub.Message)
	b.WriteString("\n")
	fmt.Fprintf(&b, "IP Address: %s\n", enr.IP)
	fmt.Fprintf(&b, "Device: %s\n", enr.Device)
	fmt.Fprintf(&b, "Location: %s, %s, %s\n", enr.City, enr.Region, enr.Country)
	fmt.Fprintf(&b, "Postal Code: %s\n", enr.Postal)
	fmt.Fprintf(&b, "ISP: %s\n", enr.Org)
	fmt.Fprintf(&b, "Company: %s\n", enr.Company)
	fmt.Fprintf(&b, "Coordinates: Latitude %s, Longitude %s\n", enr.Latitude, enr.Longitude)
	fmt.Fprintf(&b, "Timezone: %s\n", enr.Timezone)
	fmt.Fprintf(&b, "ASN: %s\n", enr.ASN)
	fmt.Fprintf(&b, "Date: %s\n", now.UTC().Format(time.RFC3339))
	b.WriteString(divider + "\n")
	return b.String()
}

// ackBody renders the acknowledgment sent back to the form submitter.
func ackBody(sub contact.Submission, cfg NotifyConfig, contactAddr string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", sub.Name)
	fmt.Fprintf(&b, "Thank you for reaching out to us. We have received your message and will respond to you within %s.\n\n", cfg.ReplyWindow)
	b.WriteString("Here is a copy of your message:\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Message: %s\n", sub.Message)
	b.WriteString(divider + "\n\n")
	fmt.Fprintf(&b, "If you have any urgent concerns, feel free to contact us directly at %s.\n\n", contactAddr)
	b.WriteString("Best regards,\n")
	b.WriteString(cfg.TeamName + "\n")
	return b.String()
}
