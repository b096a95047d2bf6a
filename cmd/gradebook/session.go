package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/GIUSEPPESAN21/gradebook"
	"github.com/GIUSEPPESAN21/gradebook/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// sessionCmd starts an interactive gradebook session.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive session",
	Long: `Start an interactive gradebook session on the terminal.

The session reads one command per line and prints the result. All
roster state is held in memory and discarded when the session ends.

Commands:
  add <name> <grade>     add a student
  set <name> <grade>     modify a student's grade (limited attempts)
  remove <name>          delete a student
  list                   show the roster
  stats                  show aggregate statistics
  search <term>          filter the roster by name substring
  attempts <name>        show a student's modification budget
  export [file]          write the CSV report
  reset                  clear the roster
  help                   show this list
  quit                   end the session

Example:
  gradebook session
  gradebook session -c config.yaml`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
}

// buildGradebook assembles a Gradebook from the optional config file.
func buildGradebook(configFile string, logger *slog.Logger) (*gradebook.Gradebook, error) {
	var opts []gradebook.Option

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		opts = config.Options(cfg)
	}
	opts = append(opts, gradebook.WithLogger(logger))

	gb, err := gradebook.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gradebook: %w", err)
	}
	return gb, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	// a local .env may supply values for ${VAR} expansion in the config
	_ = godotenv.Load()

	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	gb, err := buildGradebook(configFile, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	min, max := gb.GradeRange()
	fmt.Fprintf(out, "%s — grades %v to %v, pass at %v, %d modifications per student\n",
		gb.Title(), min, max, gb.PassThreshold(), gb.ModificationLimit())
	fmt.Fprintln(out, `Type "help" for commands, "quit" to end the session.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		if execLine(gb, scanner.Text(), out) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Fprintln(out, "Session ended. Roster discarded.")
	return nil
}

// execLine dispatches one session command and reports whether the session
// should end.
func execLine(gb *gradebook.Gradebook, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "add":
		doAdd(gb, args, out)
	case "set", "modify":
		doSet(gb, args, out)
	case "remove", "delete":
		doRemove(gb, args, out)
	case "list":
		doList(gb, out)
	case "stats":
		doStats(gb, out)
	case "search":
		doSearch(gb, strings.Join(args, " "), out)
	case "attempts":
		doAttempts(gb, strings.Join(args, " "), out)
	case "export":
		doExport(gb, args, out)
	case "reset":
		gb.Reset()
		fmt.Fprintln(out, "Roster cleared.")
	case "help":
		printHelp(out)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "Unknown command %q. Type \"help\" for the command list.\n", command)
	}
	return false
}

// splitNameGrade splits trailing-grade commands: every argument but the
// last is the (possibly multi-word) name, the last is the grade.
func splitNameGrade(args []string) (string, float64, error) {
	if len(args) < 2 {
		return "", 0, fmt.Errorf("expected <name> <grade>")
	}
	name := strings.Join(args[:len(args)-1], " ")
	grade, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid grade %q", args[len(args)-1])
	}
	return name, grade, nil
}

// checkRange is the presentation layer's input validation: grades are
// range-checked here before they reach the store.
func checkRange(gb *gradebook.Gradebook, grade float64, out io.Writer) bool {
	min, max := gb.GradeRange()
	if grade < min || grade > max {
		fmt.Fprintf(out, "Grade must be between %v and %v.\n", min, max)
		return false
	}
	return true
}

func doAdd(gb *gradebook.Gradebook, args []string, out io.Writer) {
	name, grade, err := splitNameGrade(args)
	if err != nil {
		fmt.Fprintf(out, "Usage: add <name> <grade> (%v)\n", err)
		return
	}
	if !checkRange(gb, grade, out) {
		return
	}

	student, err := gb.Add(name, grade)
	if err != nil {
		fmt.Fprintf(out, "Cannot add: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Added %s with grade %v (%s).\n", student.Name, student.Grade, student.Status)
}

func doSet(gb *gradebook.Gradebook, args []string, out io.Writer) {
	name, grade, err := splitNameGrade(args)
	if err != nil {
		fmt.Fprintf(out, "Usage: set <name> <grade> (%v)\n", err)
		return
	}
	if !checkRange(gb, grade, out) {
		return
	}

	res, err := gb.Modify(name, grade)
	if err != nil {
		fmt.Fprintf(out, "Cannot modify: %v\n", err)
		return
	}
	if !res.Changed {
		fmt.Fprintf(out, "No change: %s already has grade %v. Budget untouched (%d remaining).\n",
			res.Student.Name, res.Student.Grade, res.Remaining)
		return
	}
	fmt.Fprintf(out, "Updated %s to %v (%s). %d of %d modifications left.\n",
		res.Student.Name, res.Student.Grade, res.Student.Status, res.Remaining, gb.ModificationLimit())
}

func doRemove(gb *gradebook.Gradebook, args []string, out io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: remove <name>")
		return
	}

	student, err := gb.Delete(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(out, "Cannot remove: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Removed %s.\n", student.Name)
}

func doList(gb *gradebook.Gradebook, out io.Writer) {
	students := gb.Students()
	if len(students) == 0 {
		fmt.Fprintln(out, "No students on the roster yet. Use \"add <name> <grade>\".")
		return
	}

	for i, s := range students {
		fmt.Fprintf(out, "%3d. %-25s %8v  %s\n", i+1, s.Name, s.Grade, s.Status)
	}
}

func doStats(gb *gradebook.Gradebook, out io.Writer) {
	stats := gb.Stats()
	if stats.Count == 0 {
		fmt.Fprintln(out, "No students on the roster yet.")
		return
	}

	fmt.Fprintf(out, "Students: %d\n", stats.Count)
	fmt.Fprintf(out, "Average:  %.2f\n", stats.Average)
	fmt.Fprintf(out, "High:     %v\n", stats.High)
	fmt.Fprintf(out, "Low:      %v\n", stats.Low)
	fmt.Fprintf(out, "Passed:   %d\n", stats.Passed)
	fmt.Fprintf(out, "Failed:   %d\n", stats.Failed)
}

func doSearch(gb *gradebook.Gradebook, term string, out io.Writer) {
	matches := gb.Search(term)
	if len(matches) == 0 {
		fmt.Fprintf(out, "No students matching %q.\n", term)
		return
	}

	for _, s := range matches {
		fmt.Fprintf(out, "%-25s %8v  %s\n", s.Name, s.Grade, s.Status)
	}
}

func doAttempts(gb *gradebook.Gradebook, name string, out io.Writer) {
	if name == "" {
		fmt.Fprintln(out, "Usage: attempts <name>")
		return
	}

	used, remaining, err := gb.Attempts(name)
	if err != nil {
		fmt.Fprintf(out, "Cannot look up attempts: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Modifications used: %d of %d (%d remaining).\n", used, gb.ModificationLimit(), remaining)
}

func doExport(gb *gradebook.Gradebook, args []string, out io.Writer) {
	filename := gb.ExportFilename()
	if len(args) > 0 {
		filename = args[0]
	}

	data, err := gb.ExportCSV()
	if err != nil {
		fmt.Fprintf(out, "Cannot export: %v\n", err)
		return
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Fprintf(out, "Cannot write %s: %v\n", filename, err)
		return
	}
	fmt.Fprintf(out, "Wrote %d students to %s.\n", gb.Len(), filename)
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  add <name> <grade>     add a student
  set <name> <grade>     modify a student's grade (limited attempts)
  remove <name>          delete a student
  list                   show the roster
  stats                  show aggregate statistics
  search <term>          filter the roster by name substring
  attempts <name>        show a student's modification budget
  export [file]          write the CSV report
  reset                  clear the roster
  help                   show this list
  quit                   end the session
`)
}
