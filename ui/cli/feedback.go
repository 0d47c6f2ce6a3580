// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// feedback.go holds the `feedback` command group: tenants leave reviews,
// house owners read the reviews on their houses.

package cli

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

func printFeedback(f model.Feedback) {
	header := fmt.Sprintf("#%d", f.ID)
	if f.HouseAddress != "" {
		header += "  " + f.HouseAddress
	}
	if f.Rating > 0 {
		header += fmt.Sprintf("  (%d/5)", f.Rating)
	}
	fmt.Println(header)
	fmt.Printf("    %s\n", f.Message)
	if f.TenantFullName != "" {
		fmt.Printf("    — %s\n", f.TenantFullName)
	}
}

func newFeedbackCmd() *cobra.Command {
	feedbackCmd := &cobra.Command{
		Use:   "feedback",
		Short: "Leave and read house reviews",
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Leave feedback for a house (tenant)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			req := api.FeedbackRequest{}
			req.HouseID, _ = cmd.Flags().GetInt("house")
			req.Message, _ = cmd.Flags().GetString("message")
			req.Rating, _ = cmd.Flags().GetInt("rating")
			if req.HouseID == 0 || req.Message == "" {
				log.Fatalf("%s", i18n.T("feedback.error_missing_fields"))
			}

			f, err := apiClient.CreateFeedback(cmd.Context(), req)
			if err != nil {
				log.Fatalf("%s", i18n.T("feedback.error_create", err))
			}
			fmt.Println(i18n.T("feedback.created"))
			printFeedback(*f)
		},
	}
	addCmd.Flags().Int("house", 0, "House id the feedback is about")
	addCmd.Flags().String("message", "", "Review text")
	addCmd.Flags().Int("rating", 0, "Rating 1-5")

	getCmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Show one feedback entry",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			f, err := apiClient.GetFeedback(cmd.Context(), parseID(args[0]))
			if err != nil {
				log.Fatalf("%s", i18n.T("feedback.error_get", err))
			}
			printFeedback(*f)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List feedback on your houses (house owner)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			feedback, err := apiClient.ListOwnerFeedback(cmd.Context())
			if err != nil {
				log.Fatalf("%s", i18n.T("feedback.error_list", err))
			}
			if len(feedback) == 0 {
				fmt.Println(i18n.T("feedback.none"))
				return
			}
			for _, f := range feedback {
				printFeedback(f)
			}
		},
	}

	feedbackCmd.AddCommand(addCmd, getCmd, listCmd)
	return feedbackCmd
}
