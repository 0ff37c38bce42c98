package callback

import "strings"

// StatusPageBuilder builds customer-facing order status URLs. The order
// secret in the path is the capability that authorizes viewing; the order
// code alone is not enough.
type StatusPageBuilder struct {
	publicBaseURL string
}

func NewStatusPageBuilder(publicBaseURL string) *StatusPageBuilder {
	return &StatusPageBuilder{
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (b *StatusPageBuilder) OrderURL(organizerSlug, orderCode, orderSecret string, paid bool) string {
	url := b.publicBaseURL + "/" + organizerSlug + "/order/" + orderCode + "/" + orderSecret + "/"
	if paid {
		url += "?paid=yes"
	}
	return url
}
