// Command schoolcli is a developer console for the data-access layer: log
// in, fetch any feature area, and export report cards, all through the same
// code path the app screens use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/noah-isme/sma-mobile-sdk/internal/app"
	"github.com/noah-isme/sma-mobile-sdk/internal/client"
	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	"github.com/noah-isme/sma-mobile-sdk/pkg/export"
	"github.com/noah-isme/sma-mobile-sdk/pkg/logger"
)

func main() {
	var (
		action      string
		accountType string
		username    string
		password    string
		studentID   string
		term        string
		output      string
	)

	flag.StringVar(&action, "action", "", "one of: login, homework, grades, attendance, timetable, health, pickups, messages, export-report")
	flag.StringVar(&accountType, "type", "parent", "account type for login (teacher|parent|student)")
	flag.StringVar(&username, "user", "", "username for login")
	flag.StringVar(&password, "pass", "", "password for login")
	flag.StringVar(&studentID, "student", "", "child student id for parent proxy access")
	flag.StringVar(&term, "term", "", "term filter for grades")
	flag.StringVar(&output, "out", "report.pdf", "output file for export-report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	a, err := app.New(cfg, logr)
	if err != nil {
		log.Fatalf("failed to wire client: %v", err)
	}

	ctx := context.Background()

	if action == "login" {
		result, err := a.Client.Login(ctx, credstore.AccountType(accountType), username, password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if !result.Success {
			fmt.Printf("login rejected: %s\n", result.Message)
			os.Exit(1)
		}
		fmt.Printf("logged in as %s (%s)\n", result.DisplayName, result.UserID)
		return
	}

	params := proxy.NavParams{}
	if studentID != "" {
		params["useParentProxy"] = true
		params["studentId"] = studentID
	}
	rc, err := a.Client.Context(ctx, params)
	if err != nil {
		log.Fatalf("no usable session: %v", err)
	}

	switch action {
	case "homework":
		result, err := a.Client.ListHomework(ctx, rc, client.HomeworkFilter{})
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		if !result.Success {
			fmt.Printf("backend rejected the request: %s\n", result.Message)
			os.Exit(1)
		}
		for _, item := range result.Homework {
			fmt.Printf("#%d [%s] %s (due %s)\n", item.ID, item.Subject, item.Title, item.DueDate)
		}

	case "grades":
		result, err := a.Client.ListGrades(ctx, rc, term)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		if !result.Success {
			fmt.Printf("backend rejected the request: %s\n", result.Message)
			os.Exit(1)
		}
		for _, grade := range result.Grades {
			fmt.Printf("%s term %s: %.0f\n", grade.Subject, grade.Term, grade.Score)
		}

	case "attendance":
		result, err := a.Client.ListAttendance(ctx, rc, "", "")
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		for _, record := range result.Records {
			fmt.Printf("%s: %s %s\n", record.Date, record.Status, record.Note)
		}

	case "timetable":
		result, err := a.Client.GetTimetable(ctx, rc, "")
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		for _, entry := range result.Entries {
			fmt.Printf("%s %s-%s %s (%s)\n", entry.Day, entry.StartTime, entry.EndTime, entry.Subject, entry.Room)
		}

	case "health":
		result, err := a.Client.ListHealthRecords(ctx, rc)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		for _, record := range result.Records {
			fmt.Printf("%s [%s] %s\n", record.Date, record.Category, record.Description)
		}

	case "pickups":
		result, err := a.Client.ListPickupRequests(ctx, rc)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		for _, request := range result.Requests {
			fmt.Printf("#%d %s for %s: %s\n", request.ID, request.GuardianName, request.StudentName, request.Status)
		}

	case "messages":
		result, err := a.Client.ListMessages(ctx, rc, 0, 0)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		for _, msg := range result.Messages {
			fmt.Printf("from %s: %s\n", msg.From, msg.Subject)
		}

	case "export-report":
		result, err := a.Client.ListGrades(ctx, rc, term)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		if !result.Success {
			fmt.Printf("backend rejected the request: %s\n", result.Message)
			os.Exit(1)
		}
		dataset := export.GradeReport("Report Card", term, result.Grades)
		pdf, err := export.NewPDFExporter().Render(dataset, "Report Card")
		if err != nil {
			log.Fatalf("render failed: %v", err)
		}
		if err := os.WriteFile(output, pdf, 0o644); err != nil {
			log.Fatalf("write failed: %v", err)
		}
		fmt.Printf("wrote %s\n", output)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
