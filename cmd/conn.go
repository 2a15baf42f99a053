package cmd

import (
	"fmt"

	"toolkit/core/database"
	"toolkit/core/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	connPing    bool
	connColumns string
)

// connCmd prints or opens a named connection string.
var connCmd = &cobra.Command{
	Use:   "conn [name]",
	Short: "Print, ping or inspect the connection string registered under a name",
	Long: `Prints connection_strings.<name> from the settings store, which may also be
supplied as TOOLKIT_CONNECTION_STRINGS_<NAME>.

With --ping or --columns the connection string is opened as a MySQL DSN.`,
	Example: `  toolkit conn main
  toolkit conn main --ping
  toolkit conn main --columns orders`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		store, err := s.settings()
		if err != nil {
			return err
		}
		dsn, ok := store.ConnectionString(args[0])
		if !ok {
			return fmt.Errorf("connection string %q is not defined", args[0])
		}
		if !connPing && connColumns == "" {
			fmt.Fprintln(cmd.OutOrStdout(), dsn)
			return nil
		}

		db, err := database.Open(cmd.Context(), dsn, s.cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)
		s.log.Info("Database reachable", zap.String("connection", args[0]))

		if connColumns == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}

		columns, err := database.GetTableColumns(db, connColumns)
		if err != nil {
			return err
		}
		tbl, err := table.FromRecords(columns)
		if err != nil {
			return err
		}
		return table.Write(cmd.OutOrStdout(), tbl)
	},
}

func init() {
	connCmd.Flags().BoolVar(&connPing, "ping", false, "open the connection and verify it responds")
	connCmd.Flags().StringVar(&connColumns, "columns", "", "list the columns of a table")
	RootCmd.AddCommand(connCmd)
}
