package client

import "github.com/noah-isme/sma-mobile-sdk/internal/normalize"

// HomeworkItem is one assignment as rendered in the homework list.
type HomeworkItem struct {
	ID          int    `json:"id"`
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status,omitempty"`
}

// HomeworkResult carries the homework list fetch outcome.
type HomeworkResult struct {
	normalize.Result
	Homework []HomeworkItem
}

// Grade is one graded component for a subject.
type Grade struct {
	ID       int     `json:"id"`
	Subject  string  `json:"subject"`
	Term     string  `json:"term,omitempty"`
	Type     string  `json:"type,omitempty"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score,omitempty"`
}

// GradesResult carries the grade list fetch outcome.
type GradesResult struct {
	normalize.Result
	Grades []Grade
}

// AttendanceRecord is one day's attendance entry.
type AttendanceRecord struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// AttendanceResult carries the attendance fetch outcome.
type AttendanceResult struct {
	normalize.Result
	Records []AttendanceRecord
}

// TimetableEntry is one scheduled lesson.
type TimetableEntry struct {
	ID        int    `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher,omitempty"`
	Room      string `json:"room,omitempty"`
}

// TimetableResult carries the timetable fetch outcome.
type TimetableResult struct {
	normalize.Result
	Entries []TimetableEntry
}

// HealthRecord is one medical visit or health note.
type HealthRecord struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	RecordedBy  string `json:"recorded_by,omitempty"`
}

// HealthResult carries the health record fetch outcome.
type HealthResult struct {
	normalize.Result
	Records []HealthRecord
}

// PickupRequest is one pending or processed pickup.
type PickupRequest struct {
	ID           int    `json:"id"`
	StudentID    string `json:"student_id"`
	StudentName  string `json:"student_name,omitempty"`
	GuardianName string `json:"guardian_name,omitempty"`
	RequestedAt  string `json:"requested_at,omitempty"`
	Status       string `json:"status"`
}

// PickupListResult carries the pickup request list fetch outcome.
type PickupListResult struct {
	normalize.Result
	Requests []PickupRequest
}

// Message is one thread entry between a parent/student and a teacher.
type Message struct {
	ID       int    `json:"id"`
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Body     string `json:"body"`
	SentAt   string `json:"sent_at,omitempty"`
	Read     bool   `json:"read,omitempty"`
}

// MessagesResult carries the message list fetch outcome.
type MessagesResult struct {
	normalize.Result
	Messages []Message
}

// LoginResult carries a login attempt outcome. On success the session has
// already been persisted to the credential store.
type LoginResult struct {
	normalize.Result
	AuthCode    string
	UserID      string
	DisplayName string
}
