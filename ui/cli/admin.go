// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// admin.go holds the `admin` command group: system-wide listings and the
// administrator's moderation actions.

package cli

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/db"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

func newAdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "System-wide views and moderation (administrator)",
	}

	overviewCmd := &cobra.Command{
		Use:     "overview",
		Short:   "Show counts across all aggregates",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			houses, err := apiClient.AdminHouses(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			bookings, err := apiClient.AdminBookings(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			payments, err := apiClient.AdminPayments(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			feedback, err := apiClient.AdminFeedback(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			tenants, err := apiClient.AdminTenants(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			owners, err := apiClient.AdminHouseOwners(ctx)
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}

			pending := 0
			for _, b := range bookings {
				if b.Status == model.BookingPending {
					pending++
				}
			}

			fmt.Printf("%-12s %d\n", i18n.T("admin.houses"), len(houses))
			fmt.Printf("%-12s %d\n", i18n.T("admin.bookings"), len(bookings))
			fmt.Printf("%-12s %d\n", i18n.T("admin.payments"), len(payments))
			fmt.Printf("%-12s %d\n", i18n.T("admin.feedback"), len(feedback))
			fmt.Printf("%-12s %d\n", i18n.T("admin.tenants"), len(tenants))
			fmt.Printf("%-12s %d\n", i18n.T("admin.owners"), len(owners))
			if pending > 0 {
				fmt.Println(i18n.T("admin.pending", pending))
			}
		},
	}

	tenantsCmd := &cobra.Command{
		Use:     "tenants",
		Short:   "List all tenant accounts",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			tenants, err := apiClient.AdminTenants(cmd.Context())
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			for _, t := range tenants {
				fmt.Printf("#%d  %s  %s\n", t.ID, t.DisplayName(), t.EmailAddress)
			}
		},
	}

	ownersCmd := &cobra.Command{
		Use:     "owners",
		Short:   "List all house-owner accounts",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			owners, err := apiClient.AdminHouseOwners(cmd.Context())
			if err != nil {
				log.Fatalf("%s", i18n.T("admin.error_fetch", err))
			}
			for _, o := range owners {
				fmt.Printf("#%d  %s  %s\n", o.ID, o.DisplayName(), o.EmailAddress)
			}
		},
	}

	deleteHouseCmd := &cobra.Command{
		Use:     "delete-house <id>",
		Short:   "Remove any house listing",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			if err := apiClient.AdminDeleteHouse(cmd.Context(), id); err != nil {
				log.Fatalf("%s", i18n.T("admin.error_delete_house", err))
			}
			_ = db.LogAction(string(sessions.Role()), "ADMIN_HOUSE_DELETE", args[0])
			fmt.Println(i18n.T("houses.deleted", id))
		},
	}

	adminCmd.AddCommand(overviewCmd, tenantsCmd, ownersCmd, deleteHouseCmd)
	return adminCmd
}
