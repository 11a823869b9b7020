package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"lensx/internal/models"
)

// WriteTable draws t as a bordered text table.
func WriteTable(w io.Writer, t *models.Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"#"}, t.Columns...))
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(true)
	table.SetColWidth(60)

	for _, row := range t.Rows {
		table.Append([]string{strconv.Itoa(row.Index), row.Msg, row.Prediction})
	}
	table.Render()
}

// WriteCSV writes t with a header line, index first.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Index"}, t.Columns...)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write([]string{strconv.Itoa(row.Index), row.Msg, row.Prediction}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTasks lists task descriptors as a table.
func WriteTasks(w io.Writer, tasks []models.Task, artifacts map[models.TaskID]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Task", "Title", "Kind", "Artifact"})
	table.SetBorder(true)

	for _, task := range tasks {
		table.Append([]string{string(task.ID), task.Title, task.Kind.String(), artifacts[task.ID]})
	}
	table.Render()
}
