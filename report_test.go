package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	data, err := CreateReport("Jane Candidate", 82, "Strong match.\nGood backend depth.", []string{"Kubernetes", "Terraform"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output must be a PDF byte stream")
}

func TestCreateReportNoMissingSkills(t *testing.T) {
	data, err := CreateReport("Candidate", 55, "Average fit.", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestCreateReportLongAnalysisPaginates(t *testing.T) {
	paragraph := strings.Repeat("A reasonably long feedback sentence that wraps across the page width. ", 20)
	analysis := strings.Repeat(paragraph+"\n", 40)

	data, err := CreateReport("Candidate", 40, analysis, []string{"Go"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	// Several pages of content render strictly more bytes than a one-pager.
	short, err := CreateReport("Candidate", 40, "brief", []string{"Go"})
	require.NoError(t, err)
	assert.Greater(t, len(data), len(short))
}
