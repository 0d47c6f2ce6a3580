// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// houses.go holds the `houses` command group: browsing the public listing
// and, for house owners, managing their own listings.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/db"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		log.Fatalf("%s", i18n.T("cli.error_bad_id", arg))
	}
	return id
}

func printHouse(h model.House) {
	fmt.Printf("#%d  %s — %s\n", h.ID, h.Address, h.Location())
	fmt.Printf("    %s, %d %s, %.2f\n", h.HouseType, h.Rooms, i18n.T("houses.rooms"), h.Price)
	if h.Descriptions != "" {
		fmt.Printf("    %s\n", h.Descriptions)
	}
	if h.HouseOwner != nil {
		fmt.Printf("    %s\n", i18n.T("houses.owned_by", h.HouseOwner.DisplayName()))
	}
	if h.ImageURL != "" {
		fmt.Printf("    %s\n", h.ImageURL)
	}
}

// houseFormFromFlags builds the multipart form shared by add and update.
func houseFormFromFlags(cmd *cobra.Command) api.HouseForm {
	form := api.HouseForm{}
	form.Address, _ = cmd.Flags().GetString("address")
	form.City, _ = cmd.Flags().GetString("city")
	form.District, _ = cmd.Flags().GetString("district")
	form.State, _ = cmd.Flags().GetString("state")
	form.HouseType, _ = cmd.Flags().GetString("type")
	form.Price, _ = cmd.Flags().GetFloat64("price")
	form.Rooms, _ = cmd.Flags().GetInt("rooms")
	form.Descriptions, _ = cmd.Flags().GetString("description")
	form.Furnitures, _ = cmd.Flags().GetString("furnitures")
	form.Variation, _ = cmd.Flags().GetString("variation")

	if imagePath, _ := cmd.Flags().GetString("image"); imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			log.Fatalf("%s", i18n.T("houses.error_open_image", err))
		}
		// Closed by process exit; the request reads it exactly once.
		form.Image = f
		form.ImageName = filepath.Base(imagePath)
	}
	return form
}

func addHouseFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("city", "", "City")
	cmd.Flags().String("district", "", "District")
	cmd.Flags().String("state", "", "State")
	cmd.Flags().String("type", "", "House type (e.g., apartment)")
	cmd.Flags().Float64("price", 0, "Monthly rent")
	cmd.Flags().Int("rooms", 0, "Number of rooms")
	cmd.Flags().String("description", "", "Free-form description")
	cmd.Flags().String("furnitures", "", "Furniture description")
	cmd.Flags().String("variation", "", "Listing variation")
	cmd.Flags().String("image", "", "Path to a listing photo to upload")
}

func newHousesCmd() *cobra.Command {
	housesCmd := &cobra.Command{
		Use:   "houses",
		Short: "Browse and manage house listings",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List houses, optionally filtered",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			filters := api.HouseFilters{}
			filters.City, _ = cmd.Flags().GetString("city")
			filters.District, _ = cmd.Flags().GetString("district")
			filters.State, _ = cmd.Flags().GetString("state")
			filters.HouseType, _ = cmd.Flags().GetString("type")
			filters.Rooms, _ = cmd.Flags().GetString("rooms")
			filters.MaxPrice, _ = cmd.Flags().GetString("max-price")

			houses, err := apiClient.ListHouses(cmd.Context(), filters)
			if err != nil {
				log.Fatalf("%s", i18n.T("houses.error_list", err))
			}
			if len(houses) == 0 {
				fmt.Println(i18n.T("houses.none"))
				return
			}
			for _, h := range houses {
				printHouse(h)
			}
		},
	}
	listCmd.Flags().String("city", "", "Filter by city")
	listCmd.Flags().String("district", "", "Filter by district")
	listCmd.Flags().String("state", "", "Filter by state")
	listCmd.Flags().String("type", "", "Filter by house type")
	listCmd.Flags().String("rooms", "", "Filter by room count")
	listCmd.Flags().String("max-price", "", "Filter by maximum price")

	getCmd := &cobra.Command{
		Use:     "get <id>",
		Short:   "Show one house",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			h, err := apiClient.GetHouse(cmd.Context(), parseID(args[0]))
			if err != nil {
				log.Fatalf("%s", i18n.T("houses.error_get", err))
			}
			printHouse(*h)
		},
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "List a new house (house owner)",
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			form := houseFormFromFlags(cmd)
			h, err := apiClient.CreateHouse(cmd.Context(), form)
			if err != nil {
				log.Fatalf("%s", i18n.T("houses.error_create", err))
			}
			_ = db.LogAction(string(sessions.Role()), "HOUSE_CREATE", h.Address)
			fmt.Println(i18n.T("houses.created"))
			printHouse(*h)
		},
	}
	addHouseFormFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update a listing (house owner)",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			form := houseFormFromFlags(cmd)
			h, err := apiClient.UpdateHouse(cmd.Context(), id, form)
			if err != nil {
				log.Fatalf("%s", i18n.T("houses.error_update", err))
			}
			_ = db.LogAction(string(sessions.Role()), "HOUSE_UPDATE", strconv.Itoa(id))
			fmt.Println(i18n.T("houses.updated"))
			printHouse(*h)
		},
	}
	addHouseFormFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a listing (house owner)",
		Args:    cobra.ExactArgs(1),
		PreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			if err := apiClient.DeleteHouse(cmd.Context(), id); err != nil {
				log.Fatalf("%s", i18n.T("houses.error_delete", err))
			}
			_ = db.LogAction(string(sessions.Role()), "HOUSE_DELETE", strconv.Itoa(id))
			fmt.Println(i18n.T("houses.deleted", id))
		},
	}

	housesCmd.AddCommand(listCmd, getCmd, addCmd, updateCmd, deleteCmd)
	return housesCmd
}
