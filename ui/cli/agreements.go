// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// agreements.go holds the `agreements` command group. Agreements are issued
// by administrators once a booking is approved; owners see the agreements
// covering their houses.

package cli

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

func printAgreement(a model.Agreement) {
	fmt.Printf("#%d  booking #%d  house #%d  %s\n", a.ID, a.BookingNo, a.HouseID, a.UserEmail)
	if a.House != nil {
		fmt.Printf("    %s — %s\n", a.House.Address, a.House.Location())
	}
	if a.HouseOwner != nil {
		fmt.Printf("    %s\n", i18n.T("agreements.owner", a.HouseOwner.DisplayName()))
	}
	if a.Remember != "" {
		fmt.Printf("    %s\n", a.Remember)
	}
}

func newAgreementsCmd() *cobra.Command {
	agreementsCmd := &cobra.Command{
		Use:   "agreements",
		Short: "Review and issue rental agreements",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List agreements for the current role",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			var (
				agreements []model.Agreement
				err        error
			)
			if sessions.Role() == model.RoleHouseOwner {
				agreements, err = apiClient.ListOwnerAgreements(cmd.Context())
			} else {
				agreements, err = apiClient.ListAgreements(cmd.Context())
			}
			if err != nil {
				log.Fatalf("%s", i18n.T("agreements.error_list", err))
			}
			if len(agreements) == 0 {
				fmt.Println(i18n.T("agreements.none"))
				return
			}
			for _, a := range agreements {
				printAgreement(a)
			}
		},
	}

	getCmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Show one agreement",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := apiClient.GetAgreement(cmd.Context(), parseID(args[0]))
			if err != nil {
				log.Fatalf("%s", i18n.T("agreements.error_get", err))
			}
			printAgreement(*a)
		},
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Issue an agreement (administrator)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			req := api.AgreementRequest{}
			req.BookingNo, _ = cmd.Flags().GetInt("booking")
			req.HouseID, _ = cmd.Flags().GetInt("house")
			req.HouseOwnerID, _ = cmd.Flags().GetInt("owner")
			req.UserEmail, _ = cmd.Flags().GetString("email")
			req.Remember, _ = cmd.Flags().GetString("remember")
			if req.BookingNo == 0 || req.HouseID == 0 || req.UserEmail == "" {
				log.Fatalf("%s", i18n.T("agreements.error_missing_fields"))
			}

			a, err := apiClient.CreateAgreement(cmd.Context(), req)
			if err != nil {
				log.Fatalf("%s", i18n.T("agreements.error_create", err))
			}
			fmt.Println(i18n.T("agreements.created"))
			printAgreement(*a)
		},
	}
	addCmd.Flags().Int("booking", 0, "Booking number the agreement covers")
	addCmd.Flags().Int("house", 0, "House id")
	addCmd.Flags().Int("owner", 0, "House owner id")
	addCmd.Flags().String("email", "", "Tenant email address")
	addCmd.Flags().String("remember", "", "Free-form note on the agreement")

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove an agreement (administrator)",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			if err := apiClient.DeleteAgreement(cmd.Context(), id); err != nil {
				log.Fatalf("%s", i18n.T("agreements.error_delete", err))
			}
			fmt.Println(i18n.T("agreements.deleted", id))
		},
	}

	agreementsCmd.AddCommand(listCmd, getCmd, addCmd, deleteCmd)
	return agreementsCmd
}
