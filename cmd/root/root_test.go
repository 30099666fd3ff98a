package root_test

import (
	"testing"

	"spendreport/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "spendreport", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Summarize")
	assert.Contains(t, root.Cmd.Long, "spending summaries")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	root.Init()

	dataDirFlag := root.Cmd.PersistentFlags().Lookup("data-dir")
	assert.NotNil(t, dataDirFlag)
	assert.Equal(t, "d", dataDirFlag.Shorthand)

	exportDirFlag := root.Cmd.PersistentFlags().Lookup("export-dir")
	assert.NotNil(t, exportDirFlag)
	assert.Equal(t, "e", exportDirFlag.Shorthand)
}
