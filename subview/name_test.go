package subview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		name    string
		full    string
		pkgPath string
		bare    string
	}{
		{"stdlib", "strconv.Atoi", "strconv", "Atoi"},
		{"single-element module", "subview-generator/report.IndexFromDocument", "subview-generator/report", "IndexFromDocument"},
		{"dotted module path", "github.com/acme/docview/report.IndexFromDocument", "github.com/acme/docview/report", "IndexFromDocument"},
		{"external test package", "subview-generator/subview_test.infallible", "subview-generator/subview_test", "infallible"},
		{"generic instantiation", "github.com/acme/docview/report.ReceivedFromEnvelope[...]", "github.com/acme/docview/report", "ReceivedFromEnvelope[...]"},
		{"no package", "main", "", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgPath, bare := splitFuncName(tt.full)
			assert.Equal(t, tt.pkgPath, pkgPath)
			assert.Equal(t, tt.bare, bare)
		})
	}
}
