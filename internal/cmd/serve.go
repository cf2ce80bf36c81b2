package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/colorconv-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdin/stdout",
	Long: `Run the MCP server over stdin/stdout.

This is also what the root command does when no subcommand is given, so MCP
clients can launch the binary directly.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, conv, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting MCP server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
		zap.String("backend", conv.Kernel().Name()),
		zap.Stringer("policy", conv.Policy()),
	)

	srv := server.New(
		server.WithConverter(conv),
		server.WithLogger(logger),
		server.WithVersion(Version),
	)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
