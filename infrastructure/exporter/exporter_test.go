package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/deriving"
	"github.com/vfg2006/engagement-insights/internal/usecases/reporting"
	"github.com/xuri/excelize/v2"
)

func newPost(row int, date string, impressions, likes int64) domain.Post {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.Post{
		Row:           row,
		Date:          d,
		Impressions:   domain.NewCount(impressions),
		Likes:         domain.NewCount(likes),
		Comments:      domain.NewCount(2),
		Shares:        domain.NewCount(1),
		Saves:         domain.NewCount(7),
		ProfileVisits: domain.NewCount(likes / 3),
		Follows:       domain.NewCount(likes / 20),
		FromHome:      domain.NewCount(impressions / 2),
		FromHashtags:  domain.NewCount(impressions / 4),
		FromExplore:   domain.NewCount(impressions / 5),
		FromOther:     domain.NewCount(10),
		Caption:       "Post, com vírgula",
		Hashtags:      "#go #data",
	}
}

func dataset() domain.Dataset {
	ds, _ := deriving.Derive(domain.Dataset{Source: "posts.csv", Posts: []domain.Post{
		newPost(0, "2024-01-01", 100, 10),
		newPost(1, "2024-01-02", 0, 0),
		newPost(2, "2024-01-03", 400, 60),
		newPost(3, "2024-01-04", 250, 30),
	}})
	return ds
}

func TestWriteProcessedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "processed.csv")
	ds := dataset()
	ds.Posts[3].Follows = domain.Count{}

	require.NoError(t, WriteProcessedCSV(path, ds))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	header := records[0]
	require.Len(t, header, 21)
	assert.Equal(t, "Date", header[0])
	assert.Equal(t, "Profile Visits", header[10])
	assert.Equal(t, "Caption", header[12])
	assert.Equal(t, "Engagement_Rate", header[14])
	assert.Equal(t, "Share_Rate", header[18])
	assert.Equal(t, "Day_of_Week", header[19])
	assert.Equal(t, "Month", header[20])

	first := records[1]
	assert.Equal(t, "2024-01-01", first[0])
	assert.Equal(t, "100", first[1])
	assert.Equal(t, "Post, com vírgula", first[12])
	assert.Equal(t, "20", first[14])
	assert.Equal(t, "10", first[15])
	assert.Equal(t, "Monday", first[19])
	assert.Equal(t, "January", first[20])

	// Taxas indefinidas ficam vazias
	assert.Equal(t, "0", records[2][1])
	assert.Equal(t, "", records[2][14])

	// Contador ausente fica vazio
	assert.Equal(t, "", records[4][11])
}

func TestWriteDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visualizations", "dashboard.xlsx")
	panels := reporting.BuildPanels(dataset(), domain.PanelOptions{HistogramBins: 5, TopN: 3})

	require.NoError(t, WriteDashboard(path, panels))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DashboardSheet, DataSheet}, f.GetSheetList())

	value, err := f.GetCellValue(DataSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", value)

	value, err = f.GetCellValue(DataSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", value)

	value, err = f.GetCellValue(DataSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Likes", value)

	value, err = f.GetCellValue(DataSheet, "J3")
	require.NoError(t, err)
	assert.Equal(t, "From Hashtags", value)

	value, err = f.GetCellValue(DataSheet, "W2")
	require.NoError(t, err)
	assert.Equal(t, "400", value)

	value, err = f.GetCellValue(DashboardSheet, "T33")
	require.NoError(t, err)
	assert.Equal(t, "Impressions", value)

	value, err = f.GetCellValue(DashboardSheet, "S35")
	require.NoError(t, err)
	assert.Equal(t, "Likes", value)

	value, err = f.GetCellValue(DashboardSheet, "T34")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestWriteDashboard_SemDados(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	panels := reporting.BuildPanels(domain.Dataset{}, domain.PanelOptions{HistogramBins: 30, TopN: 10})

	require.NoError(t, WriteDashboard(path, panels))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(DataSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Impressions", value)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nested", "report.md")

	require.NoError(t, WriteReport(path, "# Relatório\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Relatório\n", string(content))
}
