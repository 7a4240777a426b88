package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/daynames"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

func slotsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print selectable dates and time slots of a specialty",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawSpecialty, _ := cmd.Flags().GetString("specialty")
			rawDate, _ := cmd.Flags().GetString("date")
			days, _ := cmd.Flags().GetInt("days")
			noDB, _ := cmd.Flags().GetBool("no-db")

			specialtyID, err := uuid.Parse(rawSpecialty)
			if err != nil {
				return fmt.Errorf("invalid --specialty %q: %w", rawSpecialty, err)
			}
			if days < 1 || days > domain.MaxSelectableDaysRange {
				return fmt.Errorf("--days must be between 1 and %d", domain.MaxSelectableDaysRange)
			}

			return runSlots(cmd, *configPath, specialtyID, rawDate, days, noDB)
		},
	}
	cmd.Flags().String("specialty", "", "Specialty ID")
	cmd.Flags().String("date", "", "Date to print slots for (YYYY-MM-DD, default today)")
	cmd.Flags().Int("days", 14, "Number of days to check for selectability")
	cmd.Flags().Bool("no-db", false, "Ignore stored slot configs and use the default interval")
	_ = cmd.MarkFlagRequired("specialty")
	return cmd
}

func runSlots(cmd *cobra.Command, configPath string, specialtyID uuid.UUID, rawDate string, days int, noDB bool) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	dayNames, err := daynames.New(a.cfg.Availability.Locale)
	if err != nil {
		return fmt.Errorf("failed to initialize day names: %w", err)
	}

	var configs availability.SlotConfigSource
	if !noDB {
		db, err := a.openDB()
		if err != nil {
			a.log.Warn("Slot configs unavailable, using default interval %d: %v", a.cfg.Availability.DefaultIntervalMinutes, err)
		} else {
			configs = a.newSlotConfigService(db)
		}
	}

	resolver := a.resolverFactory(a.newCatalogClient(), configs)()
	defer resolver.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.ScheduleCatalog.TimeoutDuration()+5*time.Second)
	defer cancel()

	snapshot, err := resolver.Load(ctx, specialtyID)
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	date := resolver.Date(resolver.Now())
	if rawDate != "" {
		parsed, err := types.ParseDate(rawDate, a.location)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", rawDate, err)
		}
		date = parsed.Time
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Specialty %s, interval %d min\n\n", specialtyID, snapshot.IntervalMinutes())

	selectable := resolver.SelectableDatePredicate(specialtyID)
	fmt.Fprintln(out, "Selectable dates:")
	for i := 0; i < days; i++ {
		d := date.AddDate(0, 0, i)
		if selectable(d) {
			fmt.Fprintf(out, "  %s %s\n", d.Format(domain.DateFormat), dayNames.DayName(d))
		}
	}

	slots, err := resolver.TimeSlots(ctx, specialtyID, date)
	if err != nil {
		return fmt.Errorf("failed to compute slots: %w", err)
	}

	fmt.Fprintf(out, "\nSlots on %s (%s):\n", date.Format(domain.DateFormat), dayNames.DayName(date))
	if len(slots) == 0 {
		fmt.Fprintln(out, "  none")
		return nil
	}
	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slot.String()
	}
	fmt.Fprintf(out, "  %s\n", strings.Join(labels, " "))
	return nil
}
