package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/model"
)

func testCatalog(ids ...string) *catalog.Catalog {
	standards := make([]model.StandardItem, len(ids))
	for i, id := range ids {
		standards[i] = model.StandardItem{ID: id, Name: "std " + id}
	}
	return catalog.New(standards, nil, nil)
}

func TestParseResponse_DropsUnknownAndMalformed(t *testing.T) {
	cat := testCatalog("QC-001")

	results := ParseResponse("QC-001: fits residential\nNOPE\nQC-999: unknown", cat)

	require.Len(t, results, 1)
	assert.Equal(t, "QC-001", results[0].StandardID)
	assert.Equal(t, model.SourceAI, results[0].Source)
	assert.Equal(t, "fits residential", results[0].Reason)
}

func TestParseResponse_Empty(t *testing.T) {
	assert.Empty(t, ParseResponse("", testCatalog("QC-001")))
}

func TestParseResponse_SkipsDuplicateIDs(t *testing.T) {
	cat := testCatalog("QC-001")

	results := ParseResponse("QC-001: first\nQC-001: second", cat)

	require.Len(t, results, 1)
	assert.Equal(t, "first", results[0].Reason)
}

func TestParseResponse_WhitespaceAroundColon(t *testing.T) {
	cat := testCatalog("QC-001")

	results := ParseResponse("  QC-001 :  spaced out reason", cat)

	require.Len(t, results, 1)
	assert.Equal(t, "spaced out reason", results[0].Reason)
}

func TestParseResponse_LowercaseIDRejected(t *testing.T) {
	cat := testCatalog("QC-001")

	assert.Empty(t, ParseResponse("qc-001: lowercase ids are not emitted", cat))
}
