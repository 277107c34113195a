package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTemplateNotFound is returned when the quote template record is missing
// or carries no file reference.
var ErrTemplateNotFound = errors.New("template not found or invalid")

// FetchError reports a non-success HTTP status while downloading a template
// asset.
type FetchError struct {
	URL    string
	Status string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Status)
}

// TemplateMeta is the template_data payload stored on a quote_templates
// record.
type TemplateMeta struct {
	FileURL        string `json:"fileUrl"`
	PreservedPages []int  `json:"preservedPages"`
	BackgroundURL  string `json:"backgroundUrl"`
}

// QuoteTemplate is a loaded template ready for composition.
type QuoteTemplate struct {
	PDF            []byte
	PreservedPages []int
	Background     []byte
}

// LoadQuoteTemplate downloads the template PDF and, when configured, the
// background image. Preserved pages default to [1] when unspecified. The
// background is best-effort: a failed background fetch does not fail the
// load, the quote is simply generated without a stamp.
func LoadQuoteTemplate(client *http.Client, meta TemplateMeta) (*QuoteTemplate, error) {
	if meta.FileURL == "" {
		return nil, ErrTemplateNotFound
	}

	pdfBytes, err := fetchAsset(client, meta.FileURL)
	if err != nil {
		return nil, err
	}

	tpl := &QuoteTemplate{
		PDF:            pdfBytes,
		PreservedPages: meta.PreservedPages,
	}
	if len(tpl.PreservedPages) == 0 {
		tpl.PreservedPages = []int{1}
	}

	if meta.BackgroundURL != "" {
		if bg, err := fetchAsset(client, meta.BackgroundURL); err == nil {
			tpl.Background = bg
		}
	}

	return tpl, nil
}

func fetchAsset(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return data, nil
}
