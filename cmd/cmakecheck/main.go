package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cmakecheck/internal/driver"
	"cmakecheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cmakecheck",
	Short: "Static checker for CMake build scripts",
	Long:  `cmakecheck finds common configuration mistakes in CMakeLists.txt and *.cmake scripts`,
}

// exitStatus carries the check outcome (finding count or a distinguished
// failure code) out of cobra's Execute.
var exitStatus int

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(driver.ExitRunError)
	}
	os.Exit(exitStatus)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
