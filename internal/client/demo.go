package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
)

// Demo mode short-circuits every fetch before the network layer so the app
// stays fully navigable in app-store review and sales demos. Fixture data
// is deliberately small and stable.

func okFixture() normalize.Result {
	return normalize.Result{Success: true}
}

func (c *Client) demoLogin(ctx context.Context, accountType credstore.AccountType, username string) (LoginResult, error) {
	session := credstore.Session{
		AccountType: accountType,
		AuthCode:    "demo-" + string(accountType),
		UserID:      "demo-1",
		Username:    username,
		DisplayName: "Demo " + string(accountType),
	}
	if err := c.store.Save(ctx, session); err != nil {
		c.logger.Warn("failed to persist demo session", zap.Error(err))
	}
	return LoginResult{
		Result:      okFixture(),
		AuthCode:    session.AuthCode,
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
	}, nil
}

var demoHomework = []HomeworkItem{
	{ID: 1, Subject: "Mathematics", Title: "Quadratic equations worksheet", DueDate: "2026-09-04", Status: "open"},
	{ID: 2, Subject: "English", Title: "Book report: chapter 3", DueDate: "2026-09-07", Status: "open"},
}

var demoGrades = []Grade{
	{ID: 1, Subject: "Mathematics", Term: "1", Type: "quiz", Score: 86, MaxScore: 100},
	{ID: 2, Subject: "Physics", Term: "1", Type: "exam", Score: 74, MaxScore: 100},
}

var demoAttendance = []AttendanceRecord{
	{ID: 1, Date: "2026-08-24", Status: "present"},
	{ID: 2, Date: "2026-08-25", Status: "late", Note: "arrived 09:10"},
}

var demoTimetable = []TimetableEntry{
	{ID: 1, Day: "Monday", StartTime: "08:00", EndTime: "08:45", Subject: "Mathematics", Room: "B12"},
	{ID: 2, Day: "Monday", StartTime: "08:50", EndTime: "09:35", Subject: "English", Room: "A03"},
}

var demoHealth = []HealthRecord{
	{ID: 1, Date: "2026-08-20", Category: "visit", Description: "Headache, rested 30 minutes"},
}

var demoPickups = []PickupRequest{
	{ID: 1, StudentID: "demo-1", StudentName: "Demo Student", GuardianName: "Demo Guardian", RequestedAt: "2026-08-28T14:05:00Z", Status: "pending"},
}

var demoMessages = []Message{
	{ID: 1, From: "Ms. Carter", Subject: "Field trip forms", Body: "Please return the signed form by Friday.", SentAt: "2026-08-27T10:12:00Z"},
}
