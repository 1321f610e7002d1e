// Profile command group: show, update, prefs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

var (
	flagProfileName    string
	flagProfilePhone   string
	flagProfileAddress string

	flagPrefNewsletter  bool
	flagPrefPromotions  bool
	flagPrefNewReleases bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the logged-in account's profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, ok, err := auth.NewService(store).CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotLoggedIn
		}

		if flagJSON {
			user.Password = ""
			return printJSON(user)
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.Phone != "" {
			fmt.Println("  phone:  ", user.Phone)
		}
		if user.Address != "" {
			fmt.Println("  address:", user.Address)
		}
		fmt.Printf("  newsletter=%t promotions=%t new-releases=%t\n",
			user.Newsletter, user.Promotions, user.NewReleases)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name, phone, or address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		authSvc := auth.NewService(store)
		current, ok, err := authSvc.CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotLoggedIn
		}

		// Fields start from the stored profile; only flags the user
		// actually passed overwrite them.
		update := account.ProfileUpdate{
			Name:    current.Name,
			Phone:   current.Phone,
			Address: current.Address,
		}
		if cmd.Flags().Changed("name") {
			update.Name = flagProfileName
		}
		if cmd.Flags().Changed("phone") {
			update.Phone = flagProfilePhone
		}
		if cmd.Flags().Changed("address") {
			update.Address = flagProfileAddress
		}

		user, err := account.NewService(store, authSvc).UpdateProfile(update)
		if err != nil {
			return err
		}
		fmt.Printf("Profile updated for %s\n", user.Email)
		return nil
	},
}

var profilePrefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Set notification preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		authSvc := auth.NewService(store)
		current, ok, err := authSvc.CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotLoggedIn
		}

		// Unset flags keep the stored preference instead of clearing it.
		prefs := account.Preferences{
			Newsletter:  current.Newsletter,
			Promotions:  current.Promotions,
			NewReleases: current.NewReleases,
		}
		if cmd.Flags().Changed("newsletter") {
			prefs.Newsletter = flagPrefNewsletter
		}
		if cmd.Flags().Changed("promotions") {
			prefs.Promotions = flagPrefPromotions
		}
		if cmd.Flags().Changed("new-releases") {
			prefs.NewReleases = flagPrefNewReleases
		}

		user, err := account.NewService(store, authSvc).UpdatePreferences(prefs)
		if err != nil {
			return err
		}
		fmt.Printf("Preferences updated: newsletter=%t promotions=%t new-releases=%t\n",
			user.Newsletter, user.Promotions, user.NewReleases)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&flagProfileName, "name", "", "display name")
	profileUpdateCmd.Flags().StringVar(&flagProfilePhone, "phone", "", "phone number")
	profileUpdateCmd.Flags().StringVar(&flagProfileAddress, "address", "", "postal address")

	profilePrefsCmd.Flags().BoolVar(&flagPrefNewsletter, "newsletter", false, "receive the newsletter")
	profilePrefsCmd.Flags().BoolVar(&flagPrefPromotions, "promotions", false, "receive promotions")
	profilePrefsCmd.Flags().BoolVar(&flagPrefNewReleases, "new-releases", false, "receive new release notices")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePrefsCmd)
}
