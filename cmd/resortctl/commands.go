package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/repository"
	"resort-backend/services"
)

// getStore connects with the same DB_* environment the server uses.
func getStore() (*repository.GormStore, error) {
	if err := config.ConnectDatabase(); err != nil {
		return nil, fmt.Errorf("database connect failed: %w", err)
	}
	return repository.NewGormStore(config.DB), nil
}

func parseRoomID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid room id %q", raw)
	}
	return uint(id), nil
}

func printRooms(w io.Writer, rooms []models.Room) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROOM\tCATEGORY\tPRICE/DAY\tSTATUS")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", r.ID, r.RoomNumber, r.Category, r.PricePerDay, r.Status)
	}
	return tw.Flush()
}

func printStays(w io.Writer, stays []models.Stay) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGUEST\tROOMS\tCHECK-IN\tDAYS\tBASE\tTOTAL\tSTATUS")
	for _, s := range stays {
		fmt.Fprintf(tw, "%d\t%s\t%v\t%s\t%d\t%.2f\t%.2f\t%s\n",
			s.ID, s.GuestName, s.RoomIDs(), s.CheckInAt.Format("2006-01-02 15:04"),
			s.BookedDays, s.BaseAmount, s.TotalCharge, s.Status)
	}
	return tw.Flush()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and provision the room inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := getStore(); err != nil {
			return err
		}
		settings := config.LoadSettings()
		if err := config.SeedDatabase(cmd.Context(), settings.RoomCount); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
		return nil
	},
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		store, err := getStore()
		if err != nil {
			return err
		}
		rooms, err := services.NewRoomService(store).ListRooms(cmd.Context(), models.RoomStatus(status))
		if err != nil {
			return err
		}
		return printRooms(cmd.OutOrStdout(), rooms)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [roomID]",
	Short: "Confirm housekeeping is done and free the room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRoomID(args[0])
		if err != nil {
			return err
		}
		store, err := getStore()
		if err != nil {
			return err
		}
		room, err := services.NewRoomService(store).MarkCleaned(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", room.RoomNumber, room.Status)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [roomID] [free|maintenance|housekeeping]",
	Short: "Manually change a room's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseRoomID(args[0])
		if err != nil {
			return err
		}
		store, err := getStore()
		if err != nil {
			return err
		}
		room, err := services.NewRoomService(store).SetStatus(cmd.Context(), id, models.RoomStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", room.RoomNumber, room.Status)
		return nil
	},
}

var staysCmd = &cobra.Command{
	Use:   "stays",
	Short: "List active stays, or checked-out ones with --history",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetBool("history")
		store, err := getStore()
		if err != nil {
			return err
		}
		svc := services.NewStayService(store)
		var stays []models.Stay
		if history {
			stays, err = svc.ListHistory(cmd.Context())
		} else {
			stays, err = svc.ListActive(cmd.Context())
		}
		if err != nil {
			return err
		}
		return printStays(cmd.OutOrStdout(), stays)
	},
}

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Summarise recorded checkout revenue",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		store, err := getStore()
		if err != nil {
			return err
		}
		sum, err := services.NewAccountService(store).Revenue(cmd.Context(), search)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\nTotal:   %.2f\nAverage: %.2f\n", sum.Count, sum.Total, sum.Average)
		return nil
	},
}

func init() {
	roomsCmd.Flags().String("status", "", "filter by status (free, occupied, maintenance, housekeeping)")
	staysCmd.Flags().Bool("history", false, "list checked-out stays")
	revenueCmd.Flags().String("search", "", "filter by guest name or id")
}
