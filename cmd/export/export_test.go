package export_test

import (
	"testing"

	"spendreport/cmd/export"

	"github.com/stretchr/testify/assert"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "normalized JSON export")
	assert.Contains(t, export.Cmd.Long, "date-stamped JSON")
	assert.NotNil(t, export.Cmd.Run)
}
