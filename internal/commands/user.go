package commands

import (
	"fmt"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/spf13/cobra"
)

func newCreateUserCommand() *cobra.Command {
	var req models.UserRequest
	var satkerID int

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a local user with a bcrypt password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if satkerID > 0 {
				req.SatkerID = &satkerID
			}

			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			users := service.NewUserService(repository.NewUserRepository(db), utils.GetLogger())
			user, err := users.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s, %s)\n", user.ID, user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 6 characters (required)")
	cmd.Flags().StringVar(&req.Role, "role", models.RoleOpProv, "op_prov, supervisor, op_satker or viewer")
	cmd.Flags().IntVar(&satkerID, "satker", 0, "satker id, required for op_satker")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
