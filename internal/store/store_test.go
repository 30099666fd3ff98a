package store

import (
	"os"
	"path/filepath"
	"testing"

	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesMissingFileFallsBackToDefaults(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml"), &logging.MockLogger{})

	rules, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRules(), rules)
}

func TestLoadRulesPreservesOrder(t *testing.T) {
	content := `categories:
  - name: Coffee
    keywords: ["STARBUCKS"]
  - name: Eating Out
    keywords: ["STARBUCKS", "DINER"]
  - name: Miscellaneous
`
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewRuleStore(path, &logging.MockLogger{})
	rules, err := s.LoadRules()
	require.NoError(t, err)

	require.Len(t, rules, 3)
	assert.Equal(t, "Coffee", rules[0].Name)
	assert.Equal(t, "Eating Out", rules[1].Name)
	assert.Equal(t, models.CategoryMiscellaneous, rules[2].Name)
}

func TestLoadRulesBareListFormat(t *testing.T) {
	content := `- name: Groceries
  keywords: ["ALDI"]
`
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewRuleStore(path, &logging.MockLogger{})
	rules, err := s.LoadRules()
	require.NoError(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, "Groceries", rules[0].Name)
	assert.Equal(t, models.CategoryMiscellaneous, rules[1].Name, "fallback appended")
}

func TestLoadRulesEmptyFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	s := NewRuleStore(path, &logging.MockLogger{})
	rules, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRules(), rules)
}

func TestSaveRulesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewRuleStore(path, &logging.MockLogger{})

	in := models.RuleSet{
		{Name: "Phone", Keywords: []string{"VERIZON"}},
		{Name: models.CategoryMiscellaneous},
	}
	require.NoError(t, s.SaveRules(in))

	out, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
