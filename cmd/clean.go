package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/enigmavision/internal/logger"
)

var skipConfirm bool

// Log file operations, swapped out in tests.
var (
	listLogs  = logger.ListLogs
	clearLogs = logger.ClearLogs
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove debug log files",
	Long: `Removes every enigmavision debug log from /tmp.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	logs, err := listLogs()
	if err != nil {
		return fmt.Errorf("error finding log files: %w", err)
	}

	if len(logs) == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will remove:")
	for _, p := range logs {
		fmt.Printf("  - %s\n", p)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// The running process may still hold the log open
	logger.Close()

	logsCleared, err := clearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Printf("Cleaned: %d log file(s) removed\n", logsCleared)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
