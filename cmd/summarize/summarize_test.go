package summarize_test

import (
	"testing"

	"spendreport/cmd/summarize"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summarize", summarize.Cmd.Use)
	assert.Contains(t, summarize.Cmd.Short, "print spending summaries")
	assert.Contains(t, summarize.Cmd.Long, "statement CSV")
	assert.NotNil(t, summarize.Cmd.Run)
}

func TestSummarizeCommand_Flags(t *testing.T) {
	categoryFlag := summarize.Cmd.Flags().Lookup("category")
	assert.NotNil(t, categoryFlag)
	assert.Equal(t, "c", categoryFlag.Shorthand)

	weeklyFlag := summarize.Cmd.Flags().Lookup("weekly")
	assert.NotNil(t, weeklyFlag)
	assert.Equal(t, "w", weeklyFlag.Shorthand)
	assert.Equal(t, "false", weeklyFlag.DefValue)

	monthlyFlag := summarize.Cmd.Flags().Lookup("monthly")
	assert.NotNil(t, monthlyFlag)
	assert.Equal(t, "m", monthlyFlag.Shorthand)

	noExportFlag := summarize.Cmd.Flags().Lookup("no-export")
	assert.NotNil(t, noExportFlag)
	assert.Equal(t, "false", noExportFlag.DefValue)
}
