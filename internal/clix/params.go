package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"lensx/internal/models"
)

// Output formats of batch commands.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// ParseTask resolves the task named by the first positional argument.
func ParseTask(args []string) (models.TaskID, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing task, expected one of %s", TaskNames())
	}
	return models.ParseTaskID(args[0])
}

// TaskNames lists the accepted task names for help and error text.
func TaskNames() string {
	names := make([]string, len(models.TaskOrder))
	for i, id := range models.TaskOrder {
		names[i] = string(id)
	}
	return strings.Join(names, "|")
}

// ParseFormat reads the --format flag. An unset flag means a table.
func ParseFormat(flags *pflag.FlagSet) (string, error) {
	format, _ := flags.GetString("format")
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		return FormatTable, nil
	case FormatTable, FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected %s or %s", format, FormatTable, FormatCSV)
	}
}
