package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		href       string
		want       LinkClassification
	}{
		{
			name:       "resource id present yields internal",
			resourceID: "98765",
			href:       "/wiki/spaces/DOC/pages/98765/Target",
			want:       LinkClassification{Class: LinkInternal, PageID: "98765"},
		},
		{
			name:       "fragment href yields anchor",
			resourceID: "",
			href:       "#heading-overview",
			want:       LinkClassification{Class: LinkAnchor},
		},
		{
			name:       "fragment wins over resource id",
			resourceID: "98765",
			href:       "#heading-overview",
			want:       LinkClassification{Class: LinkAnchor},
		},
		{
			name:       "plain href yields external with literal target",
			resourceID: "",
			href:       "https://example.com/somewhere",
			want:       LinkClassification{Class: LinkExternal, Target: "https://example.com/somewhere"},
		},
		{
			name:       "empty href and no resource id is still external",
			resourceID: "",
			href:       "",
			want:       LinkClassification{Class: LinkExternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLink(tt.resourceID, tt.href)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkClassString(t *testing.T) {
	assert.Equal(t, "internal", LinkInternal.String())
	assert.Equal(t, "external", LinkExternal.String())
	assert.Equal(t, "anchor", LinkAnchor.String())
	assert.Equal(t, "unknown", LinkClass(99).String())
}
