package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stockpilot/app/profile"
	"stockpilot/config"
)

var profileSetFlags struct {
	name       string
	email      string
	phone      string
	role       string
	department string
	bio        string
	location   string
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&profileSetFlags.name, "name", "", "display name")
	f.StringVar(&profileSetFlags.email, "email", "", "email address")
	f.StringVar(&profileSetFlags.phone, "phone", "", "phone number")
	f.StringVar(&profileSetFlags.role, "role", "", "role title")
	f.StringVar(&profileSetFlags.department, "department", "", "department")
	f.StringVar(&profileSetFlags.bio, "bio", "", "short bio")
	f.StringVar(&profileSetFlags.location, "location", "", "location")
}

// stockpilot profile
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the saved user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		p := profile.FromConfig().Current(cmd.Context())

		fmt.Printf("%s — %s\n", p.Name, p.Role)
		fmt.Printf("Department: %s\n", p.Department)
		fmt.Printf("Email:      %s\n", p.Email)
		fmt.Printf("Phone:      %s\n", p.Phone)
		fmt.Printf("Location:   %s\n", p.Location)
		fmt.Printf("Joined:     %s\n", p.DateJoined)
		if p.Bio != "" {
			fmt.Printf("\n%s\n", p.Bio)
		}
		return nil
	},
}

// stockpilot profile:set
var profileSetCmd = &cobra.Command{
	Use:   "profile:set",
	Short: "Edit the user profile; only the flags you pass change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		mgr := profile.FromConfig()
		p := mgr.Current(cmd.Context())

		set := func(flag string, dest *string, value string) {
			if cmd.Flags().Changed(flag) {
				*dest = value
			}
		}
		set("name", &p.Name, profileSetFlags.name)
		set("email", &p.Email, profileSetFlags.email)
		set("phone", &p.Phone, profileSetFlags.phone)
		set("role", &p.Role, profileSetFlags.role)
		set("department", &p.Department, profileSetFlags.department)
		set("bio", &p.Bio, profileSetFlags.bio)
		set("location", &p.Location, profileSetFlags.location)

		if err := mgr.Save(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Println("Profile saved.")
		return nil
	},
}
