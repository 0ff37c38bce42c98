package vismapay

// Request/response bodies for the Visma Pay pbwapi. Field names and casing
// must match the gateway exactly, otherwise the authcode is rejected.

type paymentMethodSpec struct {
	Type      string `json:"type"`
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
	Lang      string `json:"lang,omitempty"`
}

type tokenRequest struct {
	Version       string            `json:"version"`
	APIKey        string            `json:"api_key"`
	OrderNumber   string            `json:"order_number"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Email         string            `json:"email"`
	PaymentMethod paymentMethodSpec `json:"payment_method"`
	Authcode      string            `json:"authcode"`
}

type tokenResponse struct {
	Result int      `json:"result"`
	Token  string   `json:"token"`
	Type   string   `json:"type"`
	Errors []string `json:"errors"`
	URL    string   `json:"url"`
}

type methodsRequest struct {
	Version  string `json:"version"`
	APIKey   string `json:"api_key"`
	Currency string `json:"currency"`
	Authcode string `json:"authcode"`
}

// PaymentMethod is a single payment option enabled for the merchant.
type PaymentMethod struct {
	Name          string `json:"name"`
	SelectedValue string `json:"selected_value"`
	Group         string `json:"group"`
	MinAmount     int64  `json:"min_amount"`
	MaxAmount     int64  `json:"max_amount"`
	Currency      []string `json:"currency"`
	ImgURL        string `json:"img"`
}

// PaymentMethodsResponse is the gateway's answer to a merchant_payment_methods call.
type PaymentMethodsResponse struct {
	Result         int             `json:"result"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Errors         []string        `json:"errors"`
}
