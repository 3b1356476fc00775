package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/i474232898/vcweather/internal/records"
	"github.com/i474232898/vcweather/internal/weather"
)

var (
	fetchUnitGroup string
	fetchInclude   string
	fetchElements  []string
	fetchDay       string
	fetchHour      string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <location> [from] [to]",
	Short: "Fetch a timeline document and print it as JSON",
	Long: `Fetches the timeline document for a location and prints it as JSON.
Without dates the 15 day forecast is requested. Use --day to print a single
day and --hour together with --day to print a single hour. Days and hours are
addressed by datetime ("2024-01-31", "13:00:00") or by position (0, -1).`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchUnitGroup, "unit-group", "u", "", "unit group: us, metric, uk or base")
	fetchCmd.Flags().StringVar(&fetchInclude, "include", "", "sections to include, e.g. days,hours")
	fetchCmd.Flags().StringSliceVarP(&fetchElements, "elements", "e", nil, "elements to request and print")
	fetchCmd.Flags().StringVar(&fetchDay, "day", "", "print only this day")
	fetchCmd.Flags().StringVar(&fetchHour, "hour", "", "print only this hour of --day")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetchHour != "" && fetchDay == "" {
		return fmt.Errorf("--hour requires --day")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	q := weather.Query{
		Location:  args[0],
		UnitGroup: weather.UnitGroup(fetchUnitGroup),
		Include:   fetchInclude,
		Elements:  requestElements(),
	}
	if len(args) > 1 {
		q.From = args[1]
	}
	if len(args) > 2 {
		q.To = args[2]
	}
	q = cfg.Defaults(q)

	w := weather.NewWeather(newSource(cfg), newLogger(cmd))
	if _, err := w.FetchWeatherData(cmd.Context(), q); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	out, err := selectOutput(w)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// requestElements returns the elements sent upstream. The datetime key is
// added when a single day or hour must be located by it.
func requestElements() []string {
	if len(fetchElements) == 0 {
		return nil
	}
	elems := slices.Clone(fetchElements)
	if fetchDay != "" && !slices.Contains(elems, records.KeyField) {
		elems = append(elems, records.KeyField)
	}
	return elems
}

func selectOutput(w *weather.Weather) (any, error) {
	if fetchDay == "" {
		return w.Data(), nil
	}

	day := records.ParseLocator(fetchDay)
	if fetchHour == "" {
		rec, err := w.DataOnDay(day, fetchElements...)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("day %s not found", day)
		}
		return rec, nil
	}

	hour := records.ParseLocator(fetchHour)
	rec, err := w.DataAtDatetime(day, hour, fetchElements...)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("hour %s of day %s not found", hour, day)
	}
	return rec, nil
}
