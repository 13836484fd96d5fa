// Package contact implements the contact-form submission pipeline:
// validate the fields, enrich the request with location and device
// metadata, then email the site owner and the sender.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/davetechinnovation/contact-backend/internal/geo"
)

var (
	// ErrMissingFields means name, email, or message was empty.
	ErrMissingFields = errors.New("name, email, and message are required")
	// ErrEnrichment means the IP lookup failed. Enrichment is mandatory:
	// the submission fails rather than going out without metadata. That
	// couples submissions to a third-party lookup with no fallback; a
	// best-effort enrichment would be the more forgiving contract.
	ErrEnrichment = errors.New("ip enrichment failed")
	// ErrNotify means one of the two outbound emails failed to send.
	ErrNotify = errors.New("notification email failed")
)

// Enricher resolves an IP address into location data.
type Enricher interface {
	Lookup(ctx context.Context, ip string) (*geo.Info, error)
}

// Notifier sends the two outbound emails. Owner goes first; the sender
// acknowledgment is only attempted once the owner notification succeeded.
type Notifier interface {
	NotifyOwner(ctx context.Context, sub Submission, enr Enrichment) error
	NotifySender(ctx context.Context, sub Submission) error
}

// Service runs the submission pipeline over injected collaborators.
type Service struct {
	enricher Enricher
	notifier Notifier
}

func NewService(enricher Enricher, notifier Notifier) *Service {
	return &Service{enricher: enricher, notifier: notifier}
}

// Submit validates, enriches, and dispatches one contact-form submission.
// The whole pipeline is synchronous; the caller waits for both emails.
func (s *Service) Submit(ctx context.Context, sub Submission, meta RequestMeta) error {
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return ErrMissingFields
	}

	log.Printf("contact: submission from %s (ip %s)", sub.Email, meta.IP)

	info, err := s.enricher.Lookup(ctx, meta.IP)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnrichment, err)
	}

	enr := buildEnrichment(meta, info)

	if err := s.notifier.NotifyOwner(ctx, sub, enr); err != nil {
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}
	if err := s.notifier.NotifySender(ctx, sub); err != nil {
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}

	log.Printf("contact: emails sent for %s", sub.Email)
	return nil
}

// buildEnrichment flattens the provider response plus the parsed device
// description into the shape the notifier templates expect.
func buildEnrichment(meta RequestMeta, info *geo.Info) Enrichment {
	enr := Enrichment{
		IP:        info.IP,
		Device:    DeviceDescription(meta.UserAgent),
		City:      info.City,
		Region:    info.Region,
		Country:   info.Country,
		Postal:    info.Postal,
		Org:       info.Org,
		Company:   "N/A",
		ASN:       "N/A",
		Timezone:  info.Timezone,
		Latitude:  "N/A",
		Longitude: "N/A",
	}
	if enr.IP == "" {
		enr.IP = meta.IP
	}
	if info.Company != nil && info.Company.Name != "" {
		enr.Company = info.Company.Name
	}
	if info.ASN != nil && info.ASN.ASN != "" {
		enr.ASN = info.ASN.ASN
	}
	if lat, lng, ok := strings.Cut(info.Loc, ","); ok {
		enr.Latitude = lat
		enr.Longitude = lng
	}
	return enr
}
