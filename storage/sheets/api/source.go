package sheetsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
)

const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Source reads ranges from the remote values API:
// GET {BaseURL}/{spreadsheetID}/values/{range}?key={apiKey} -> {"values": [[...]]}
type Source struct {
	baseURL       string
	spreadsheetID string
	apiKey        string
	client        *rest.Client
}

var _ sheet.Source = (*Source)(nil) // interface compliance check

func New(conf core.SheetsConfig) (*Source, error) {
	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(conf.SpreadsheetID, "spreadsheet id"),
		vala.StringNotEmpty(conf.APIKey, "api key"),
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "sheetsapi")
	}

	baseURL := conf.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Source{
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: conf.SpreadsheetID,
		apiKey:        conf.APIKey,
		client:        &rest.Client{HTTPClient: &http.Client{Timeout: timeout}},
	}, nil
}

type valuesResponse struct {
	Values sheet.Grid `json:"values"`
}

// Values fetches one range. Any non-2xx status is a sheet.TransportError; it is never retried.
func (src *Source) Values(ctx context.Context, rng string) (sheet.Grid, error) {
	req := rest.Request{
		Method:      rest.Get,
		BaseURL:     src.baseURL + "/" + url.PathEscape(src.spreadsheetID) + "/values/" + url.PathEscape(rng),
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: map[string]string{"key": src.apiKey},
	}
	resp, err := src.client.SendWithContext(ctx, req)
	if err != nil {
		return nil, sheet.NewTransportError(rng, 0, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, sheet.NewTransportError(rng, resp.StatusCode, nil)
	}

	var body valuesResponse
	if err = json.Unmarshal([]byte(resp.Body), &body); err != nil {
		return nil, sheet.NewTransportError(rng, 0, errors.Wrap(err, "decoding values"))
	}
	return body.Values, nil
}
