// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// bookings.go holds the `bookings` command group. Tenants request and
// cancel bookings; house owners approve or reject them.

package cli

import (
	"fmt"
	"strconv"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/db"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

func printBooking(b model.Booking) {
	house := fmt.Sprintf("house #%d", b.HouseID)
	if b.House != nil {
		house = b.House.Address
	}
	fmt.Printf("#%d  %s  %s → %s  [%s]\n",
		b.BookingNumber, house, b.FromDate, b.ToDate, i18n.T("bookings.status."+b.Status.String()))
	if b.Tenant != nil {
		fmt.Printf("    %s\n", i18n.T("bookings.by", b.Tenant.DisplayName()))
	}
	if b.Message != "" {
		fmt.Printf("    %s\n", b.Message)
	}
}

func newBookingsCmd() *cobra.Command {
	bookingsCmd := &cobra.Command{
		Use:   "bookings",
		Short: "Request, review and decide bookings",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List bookings for the current role",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			var (
				bookings []model.Booking
				err      error
			)
			if sessions.Role() == model.RoleHouseOwner {
				bookings, err = apiClient.ListOwnerBookings(cmd.Context())
			} else {
				bookings, err = apiClient.ListBookings(cmd.Context())
			}
			if err != nil {
				log.Fatalf("%s", i18n.T("bookings.error_list", err))
			}
			if len(bookings) == 0 {
				fmt.Println(i18n.T("bookings.none"))
				return
			}
			for _, b := range bookings {
				printBooking(b)
			}
		},
	}

	getCmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Show one booking",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			b, err := apiClient.GetBooking(cmd.Context(), parseID(args[0]))
			if err != nil {
				log.Fatalf("%s", i18n.T("bookings.error_get", err))
			}
			printBooking(*b)
		},
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Request a booking (tenant)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			req := api.BookingRequest{}
			req.HouseID, _ = cmd.Flags().GetInt("house")
			req.FromDate, _ = cmd.Flags().GetString("from")
			req.ToDate, _ = cmd.Flags().GetString("to")
			req.Message, _ = cmd.Flags().GetString("message")
			if req.HouseID == 0 || req.FromDate == "" || req.ToDate == "" {
				log.Fatalf("%s", i18n.T("bookings.error_missing_fields"))
			}

			b, err := apiClient.CreateBooking(cmd.Context(), req)
			if err != nil {
				log.Fatalf("%s", i18n.T("bookings.error_create", err))
			}
			_ = db.LogAction(string(sessions.Role()), "BOOKING_CREATE", strconv.Itoa(req.HouseID))
			fmt.Println(i18n.T("bookings.created"))
			printBooking(*b)
		},
	}
	addCmd.Flags().Int("house", 0, "House id to book")
	addCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	addCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	addCmd.Flags().String("message", "", "Message to the house owner")

	statusCmd := &cobra.Command{
		Use:     "status <id> <pending|approved|rejected>",
		Short:   "Approve or reject a booking (house owner)",
		Args:    cobra.ExactArgs(2),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			var status model.BookingStatus
			switch args[1] {
			case "pending":
				status = model.BookingPending
			case "approved":
				status = model.BookingApproved
			case "rejected":
				status = model.BookingRejected
			default:
				log.Fatalf("%s", i18n.T("bookings.error_bad_status", args[1]))
			}

			b, err := apiClient.UpdateBookingStatus(cmd.Context(), id, status)
			if err != nil {
				log.Fatalf("%s", i18n.T("bookings.error_status", err))
			}
			_ = db.LogAction(string(sessions.Role()), "BOOKING_STATUS", fmt.Sprintf("%d=%s", id, status))
			fmt.Println(i18n.T("bookings.status_updated", id, i18n.T("bookings.status."+b.Status.String())))
		},
	}

	cancelCmd := &cobra.Command{
		Use:     "cancel <id>",
		Short:   "Cancel a booking (tenant)",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			if err := apiClient.DeleteBooking(cmd.Context(), id); err != nil {
				log.Fatalf("%s", i18n.T("bookings.error_cancel", err))
			}
			_ = db.LogAction(string(sessions.Role()), "BOOKING_CANCEL", strconv.Itoa(id))
			fmt.Println(i18n.T("bookings.cancelled", id))
		},
	}

	bookingsCmd.AddCommand(listCmd, getCmd, addCmd, statusCmd, cancelCmd)
	return bookingsCmd
}
