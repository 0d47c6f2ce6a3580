// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// payments.go holds the `payments` command group: the tenant's payment
// history, the owner's received payments, and recording a new payment.

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

func printPayment(p model.Payment) {
	fmt.Printf("#%d  %s  house #%d  %s\n", p.ID, p.DatePayment, p.HouseID, p.UserEmail)
	if p.Details != "" {
		fmt.Printf("    %s\n", p.Details)
	}
}

func newPaymentsCmd() *cobra.Command {
	paymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Record and review rent payments",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List payments for the current role",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			var (
				payments []model.Payment
				err      error
			)
			if sessions.Role() == model.RoleHouseOwner {
				payments, err = apiClient.ListOwnerPayments(cmd.Context())
			} else {
				payments, err = apiClient.ListTenantPayments(cmd.Context())
			}
			if err != nil {
				log.Fatalf("%s", i18n.T("payments.error_list", err))
			}
			if len(payments) == 0 {
				fmt.Println(i18n.T("payments.none"))
				return
			}
			for _, p := range payments {
				printPayment(p)
			}
		},
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a rent payment (tenant)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			req := api.PaymentRequest{}
			req.HouseID, _ = cmd.Flags().GetInt("house")
			req.DatePayment, _ = cmd.Flags().GetString("date")
			req.Details, _ = cmd.Flags().GetString("details")
			if req.HouseID == 0 || req.DatePayment == "" {
				log.Fatalf("%s", i18n.T("payments.error_missing_fields"))
			}

			p, err := apiClient.CreatePayment(cmd.Context(), req)
			if err != nil {
				log.Fatalf("%s", i18n.T("payments.error_create", err))
			}
			_ = db.LogAction(string(sessions.Role()), "PAYMENT_CREATE", strconv.Itoa(req.HouseID))
			fmt.Println(i18n.T("payments.created"))
			printPayment(*p)
		},
	}
	addCmd.Flags().Int("house", 0, "House id the payment is for")
	addCmd.Flags().String("date", "", "Payment date (YYYY-MM-DD)")
	addCmd.Flags().String("details", "", "Free-form payment details")

	paymentsCmd.AddCommand(listCmd, addCmd)
	return paymentsCmd
}
