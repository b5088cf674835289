// Package paynow implémente le protocole d'intégration HTTP de Paynow
// (passerelle de paiement zimbabwéenne) : initiation de transaction hébergée,
// interrogation du poll URL et vérification du hash des notifications.
package paynow

import (
	"crypto/sha512"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const initiateTransactionURL = "https://www.paynow.co.zw/interface/initiatetransaction"

// Gateway est l'interface consommée par les handlers. *Client l'implémente ;
// les tests branchent un faux.
type Gateway interface {
	Send(p *Payment) (*InitResponse, error)
	PollTransaction(pollURL string) (*StatusResponse, error)
	VerifyWebhook(values url.Values) bool
}

type Client struct {
	IntegrationID  string
	IntegrationKey string
	ResultURL      string
	ReturnURL      string

	// InitiateURL permet de pointer vers un serveur de test.
	InitiateURL string
	HTTP        *http.Client
}

func NewClient(integrationID, integrationKey string) *Client {
	return &Client{
		IntegrationID:  integrationID,
		IntegrationKey: integrationKey,
		InitiateURL:    initiateTransactionURL,
		// Paynow répond vite ; 30s couvre largement les mauvais jours
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
}

type paymentItem struct {
	name   string
	amount float64
}

// Payment est un panier en cours d'initiation, même surface que le SDK node.
// ReturnURL/ResultURL, si renseignés, priment sur ceux du client (ils sont
// construits par requête à partir de l'hôte appelant).
type Payment struct {
	Reference string
	AuthEmail string
	ReturnURL string
	ResultURL string
	items     []paymentItem
}

func (c *Client) CreatePayment(reference, authEmail string) *Payment {
	return &Payment{Reference: reference, AuthEmail: authEmail}
}

// Add ajoute une ligne ; amount est le montant total de la ligne.
func (p *Payment) Add(name string, amount float64) {
	p.items = append(p.items, paymentItem{name: name, amount: amount})
}

func (p *Payment) Total() float64 {
	total := 0.0
	for _, it := range p.items {
		total += it.amount
	}
	return total
}

func (p *Payment) info() string {
	names := make([]string, len(p.items))
	for i, it := range p.items {
		names[i] = it.name
	}
	return strings.Join(names, ", ")
}

// InitResponse est la réponse d'initiatetransaction.
type InitResponse struct {
	Success     bool
	RedirectURL string
	PollURL     string
	Error       string
}

// StatusResponse est l'état d'une transaction vue depuis le poll URL.
type StatusResponse struct {
	Reference       string
	PaynowReference string
	Amount          string
	Status          string
	PollURL         string
}

// Paid indique que Paynow a confirmé le règlement. "Awaiting Delivery" signifie
// payé mais non marqué livré côté marchand.
func (s *StatusResponse) Paid() bool {
	return strings.EqualFold(s.Status, "Paid") || strings.EqualFold(s.Status, "Awaiting Delivery")
}

// hash calcule le SHA512 Paynow : concaténation des valeurs dans l'ordre
// d'envoi, suivie de la clé d'intégration, en hexadécimal majuscule.
func (c *Client) hash(values []string) string {
	h := sha512.New()
	for _, v := range values {
		io.WriteString(h, v)
	}
	io.WriteString(h, c.IntegrationKey)
	return strings.ToUpper(fmt.Sprintf("%x", h.Sum(nil)))
}

// Send initie une transaction hébergée. Une erreur retournée est un échec
// transport/protocole ; un refus logique arrive via InitResponse.Success=false.
func (c *Client) Send(p *Payment) (*InitResponse, error) {
	returnURL := p.ReturnURL
	if returnURL == "" {
		returnURL = c.ReturnURL
	}
	resultURL := p.ResultURL
	if resultURL == "" {
		resultURL = c.ResultURL
	}

	// L'ordre des champs compte : le hash couvre les valeurs dans cet ordre.
	fields := [][2]string{
		{"id", c.IntegrationID},
		{"reference", p.Reference},
		{"amount", fmt.Sprintf("%.2f", p.Total())},
		{"additionalinfo", p.info()},
		{"returnurl", returnURL},
		{"resulturl", resultURL},
		{"authemail", p.AuthEmail},
		{"status", "Message"},
	}

	values := make([]string, len(fields))
	var body strings.Builder
	for i, f := range fields {
		values[i] = f[1]
		if i > 0 {
			body.WriteByte('&')
		}
		body.WriteString(url.QueryEscape(f[0]))
		body.WriteByte('=')
		body.WriteString(url.QueryEscape(f[1]))
	}
	body.WriteString("&hash=" + url.QueryEscape(c.hash(values)))

	resp, err := c.HTTP.Post(c.InitiateURL, "application/x-www-form-urlencoded", strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	parsed, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("réponse Paynow illisible: %w", err)
	}

	status := parsed.Get("status")
	if !strings.EqualFold(status, "Ok") {
		errMsg := parsed.Get("error")
		if errMsg == "" {
			errMsg = "transaction refusée par Paynow (status=" + status + ")"
		}
		return &InitResponse{Success: false, Error: errMsg}, nil
	}

	return &InitResponse{
		Success:     true,
		RedirectURL: parsed.Get("browserurl"),
		PollURL:     parsed.Get("pollurl"),
	}, nil
}

// PollTransaction interroge le poll URL et renvoie le statut courant.
func (c *Client) PollTransaction(pollURL string) (*StatusResponse, error) {
	resp, err := c.HTTP.Post(pollURL, "application/x-www-form-urlencoded", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	parsed, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("réponse poll Paynow illisible: %w", err)
	}

	return &StatusResponse{
		Reference:       parsed.Get("reference"),
		PaynowReference: parsed.Get("paynowreference"),
		Amount:          parsed.Get("amount"),
		Status:          parsed.Get("status"),
		PollURL:         parsed.Get("pollurl"),
	}, nil
}

// Champs d'une notification de statut, dans l'ordre où Paynow les envoie.
var webhookHashFields = []string{"reference", "paynowreference", "amount", "status", "pollurl"}

// VerifyWebhook vérifie le hash d'une notification entrante. Renvoie false si
// le hash est absent ou ne correspond pas.
func (c *Client) VerifyWebhook(values url.Values) bool {
	received := values.Get("hash")
	if received == "" {
		return false
	}
	fieldValues := make([]string, len(webhookHashFields))
	for i, f := range webhookHashFields {
		fieldValues[i] = values.Get(f)
	}
	return strings.EqualFold(c.hash(fieldValues), received)
}
