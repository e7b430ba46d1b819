package confluence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// searchResponse mirrors the relevant fields of the search endpoint
// response (/wiki/rest/api/search).
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content struct {
			ID string `json:"id"`
		} `json:"content"`
		ResultGlobalContainer struct {
			Title string `json:"title"`
		} `json:"resultGlobalContainer"`
		FriendlyLastModified string `json:"friendlyLastModified"`
	} `json:"results"`
}

// pageResponse mirrors the relevant fields of the v2 pages endpoint
// response (/wiki/api/v2/pages/<id>).
type pageResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  struct {
		ExportView struct {
			Value string `json:"value"`
		} `json:"export_view"`
	} `json:"body"`
	Links struct {
		WebUI string `json:"webui"`
	} `json:"_links"`
}

// Search result titles carry highlight markers around matched terms.
var highlightMarkers = strings.NewReplacer("@@@hl@@@", "", "@@@endhl@@@", "")

func decodeSearchResponse(data []byte) ([]domain.SearchResult, error) {
	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, domain.SearchResult{
			Title:        highlightMarkers.Replace(r.Title),
			SpaceTitle:   r.ResultGlobalContainer.Title,
			LastModified: r.FriendlyLastModified,
			PageID:       r.Content.ID,
		})
	}
	return results, nil
}

func decodePageResponse(data []byte) (*domain.Page, error) {
	var parsed pageResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode page response: %w", err)
	}

	return &domain.Page{
		ID:       parsed.ID,
		Title:    parsed.Title,
		HTMLBody: parsed.Body.ExportView.Value,
		WebLink:  parsed.Links.WebUI,
	}, nil
}
