package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarsense-dev/solarsense/internal/models"
)

func TestBuilder_Write(t *testing.T) {
	builder := NewBuilder(t.TempDir())

	reports := []models.DailyReport{
		{Irradiance: 812.4, Date: "2026-02-01", Electricity: 9.14},
		{Irradiance: 640.1, Date: "2026-02-02", Electricity: 7.2},
	}

	path, err := builder.Write(reports, "roof-east.csv", "Summer Campaign")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("Summer Campaign", "roof-east.csv"), strings.TrimPrefix(path, builder.baseDir+string(filepath.Separator)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Irradiance,Electricity,Date", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "812.4")
	assert.Contains(t, lines[1], "2026-02-01")
}

func TestBuilder_Write_CreatesFolder(t *testing.T) {
	base := t.TempDir()
	builder := NewBuilder(base)

	_, err := builder.Write(nil, "empty.csv", "new-folder")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(base, "new-folder"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBuilder_Write_EmptyReportsStillHasHeader(t *testing.T) {
	builder := NewBuilder(t.TempDir())

	path, err := builder.Write(nil, "empty.csv", "p")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Irradiance,Electricity,Date", strings.TrimSpace(string(raw)))
}
