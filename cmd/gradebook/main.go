// Package main provides the CLI entry point for gradebook-go.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/necbot/gradebook-go/internal/server"
	"github.com/necbot/gradebook-go/pkg/gradebook"
)

var (
	outputPath string
	pretty     bool
	studentID  string
	accessCode string
	secret     string
	course     string
	port       int
	envFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gradebook",
		Short: "Query student grades from a multi-sheet gradebook workbook",
		Long: `gradebook-go normalizes a multi-sheet .xlsx gradebook (header aliases,
credentials sheet, stacked grade sheets) and answers per-student grade
queries with per-course summaries and assessment details.`,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Show sheet classification, row counts, and cohort statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	queryCmd := &cobra.Command{
		Use:   "query [workbook.xlsx]",
		Short: "Authenticate a student and print their grades",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}
	queryCmd.Flags().StringVar(&studentID, "student", "", "Student ID")
	queryCmd.Flags().StringVar(&accessCode, "code", "", "Access code")
	queryCmd.Flags().StringVar(&secret, "secret", "", "Per-row secret/PIN")
	queryCmd.Flags().StringVar(&course, "course", "", "Course filter (exact name)")
	queryCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	queryCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	queryCmd.MarkFlagRequired("student")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for the web UI",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	rootCmd.AddCommand(inspectCmd, queryCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadWorkbook(path string) (*gradebook.Gradebook, error) {
	book, err := gradebook.Load(path, gradebook.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("loading workbook failed: %w", err)
	}
	return book, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	book, err := loadWorkbook(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Report gradebook.LoadReport `json:"report"`
		Stats  interface{}          `json:"course_stats"`
	}{
		Report: book.LoadReport(),
		Stats:  book.CourseStats(),
	}
	return writeJSON(out)
}

func runQuery(cmd *cobra.Command, args []string) error {
	book, err := loadWorkbook(args[0])
	if err != nil {
		return err
	}

	if _, err := book.Authenticate(studentID, accessCode, secret); err != nil {
		var authErr *gradebook.AuthError
		if errors.As(err, &authErr) {
			return errors.New(authErr.GenericMessage())
		}
		return err
	}

	result, err := book.Query(studentID, course)
	if err != nil {
		// An ambiguity error names the course choices; pass it through.
		return err
	}
	return writeJSON(result)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.LoadConfig(envFile)
	if port != 0 {
		cfg.Port = port
	}

	srv := server.New(cfg).HTTPServer()
	log.Printf("gradebook API listening on %s (%s)", srv.Addr, cfg.Environment)
	return srv.ListenAndServe()
}

func writeJSON(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
