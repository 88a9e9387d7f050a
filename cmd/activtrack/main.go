package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rezmoss/activtrack/internal/core"
	"github.com/rezmoss/activtrack/internal/storage"
	"github.com/rezmoss/activtrack/internal/ui"
)

func main() {
	addFlag := flag.String("add", "", "record an activity with the given name (use with -date/-hour/-minute/-duration)")
	dateFlag := flag.String("date", "", "activity date as YYYY-MM-DD (default today)")
	hourFlag := flag.Int("hour", 0, "activity start hour, 24-hour format")
	minuteFlag := flag.Int("minute", 0, "activity start minute")
	durationFlag := flag.Int("duration", 0, "activity duration in minutes")
	goalFlag := flag.String("goal", "", "set a weekly goal in format name=hours (e.g., Reading=5)")
	reportFlag := flag.String("report", "", "print a report: today|week|progress|goals")
	dashboardFlag := flag.Bool("dashboard", false, "show interactive dashboard")
	file := flag.String("file", storage.DefaultActivityFile, "path to activity JSON store")
	goalFile := flag.String("goalfile", storage.DefaultGoalFile, "path to goal JSON store")

	flag.Parse()

	store := storage.New(*file, *goalFile)

	switch {
	case *addFlag != "":
		if err := addActivity(store, *addFlag, *dateFlag, *hourFlag, *minuteFlag, *durationFlag); err != nil {
			fmt.Fprintln(os.Stderr, "add activity:", err)
			os.Exit(1)
		}
	case *goalFlag != "":
		if err := setGoal(store, *goalFlag); err != nil {
			fmt.Fprintln(os.Stderr, "set goal:", err)
			os.Exit(1)
		}
	case *reportFlag != "":
		out, err := ui.Report(*reportFlag, store.LoadActivities(), store.LoadGoals(), time.Now())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(out)
	case *dashboardFlag:
		p := tea.NewProgram(ui.NewDashboard(store), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
	}
}

func addActivity(store *storage.Store, name, date string, hour, minute, duration int) error {
	day := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date (use YYYY-MM-DD): %w", err)
		}
		day = parsed
	}
	record, err := core.NewRecord(name, day, hour, minute, duration)
	if err != nil {
		return err
	}
	records := store.LoadActivities()
	records = append(records, record)
	if err := store.SaveActivities(records); err != nil {
		return err
	}
	fmt.Printf("Activity added: %s, %s for %d mins\n",
		record.Activity, record.StartTime.Format("2006-01-02 15:04"), duration)
	return nil
}

func setGoal(store *storage.Store, arg string) error {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid goal format, use name=hours")
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || hours <= 0 {
		return fmt.Errorf("weekly goal must be a positive number of hours")
	}
	goals := store.LoadGoals()
	goals.SetHours(name, hours)
	if err := store.SaveGoals(goals); err != nil {
		return err
	}
	fmt.Printf("Goal for %s: %d hours per week\n", name, hours)
	return nil
}
