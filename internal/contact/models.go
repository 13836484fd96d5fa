package contact

// Submission holds the contact form fields. Mobile is optional and passed
// through to the owner notification untouched.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Mobile  string `json:"mobile"`
}

// RequestMeta carries the network/header attributes the enricher works
// from.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Enrichment is the derived metadata attached to a submission before the
// notifier composes the owner email. Optional provider fields come through
// as "N/A" so the email template never renders an empty slot.
type Enrichment struct {
	IP        string
	Device    string
	City      string
	Region    string
	Country   string
	Postal    string
	Org       string
	Company   string
	ASN       string
	Latitude  string
	Longitude string
	Timezone  string
}
