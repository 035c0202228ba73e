package gateway

import "github.com/gin-gonic/gin"

// Fixture data keyed by student id. Student "7" is the child of parent "20"
// in the seed accounts; student "8" exists so multi-child flows have a
// second target.

func homeworkFor(studentID string) []gin.H {
	switch studentID {
	case "7":
		return []gin.H{
			{"id": 1, "subject": "Mathematics", "title": "Quadratic equations worksheet", "due_date": "2026-09-04", "status": "open"},
			{"id": 2, "subject": "English", "title": "Book report: chapter 3", "due_date": "2026-09-07", "status": "open"},
		}
	case "8":
		return []gin.H{
			{"id": 3, "subject": "Biology", "title": "Cell structure diagram", "due_date": "2026-09-05", "status": "open"},
		}
	}
	return []gin.H{}
}

func gradesFor(studentID, term string) []gin.H {
	if studentID != "7" && studentID != "8" {
		return []gin.H{}
	}
	grades := []gin.H{
		{"id": 1, "subject": "Mathematics", "term": "1", "type": "quiz", "score": 86, "max_score": 100},
		{"id": 2, "subject": "Physics", "term": "1", "type": "exam", "score": 74, "max_score": 100},
		{"id": 3, "subject": "Mathematics", "term": "2", "type": "exam", "score": 91, "max_score": 100},
	}
	if term == "" {
		return grades
	}
	filtered := make([]gin.H, 0, len(grades))
	for _, grade := range grades {
		if grade["term"] == term {
			filtered = append(filtered, grade)
		}
	}
	return filtered
}

func attendanceFor(studentID, from, to string) []gin.H {
	if studentID != "7" && studentID != "8" {
		return []gin.H{}
	}
	records := []gin.H{
		{"id": 1, "date": "2026-08-24", "status": "present"},
		{"id": 2, "date": "2026-08-25", "status": "late", "note": "arrived 09:10"},
		{"id": 3, "date": "2026-08-26", "status": "present"},
	}
	filtered := make([]gin.H, 0, len(records))
	for _, record := range records {
		date := record["date"].(string)
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func timetableFor(studentID string) []gin.H {
	if studentID != "7" && studentID != "8" {
		return []gin.H{}
	}
	return []gin.H{
		{"id": 1, "day": "Monday", "start_time": "08:00", "end_time": "08:45", "subject": "Mathematics", "teacher": "Ms. Carter", "room": "B12"},
		{"id": 2, "day": "Monday", "start_time": "08:50", "end_time": "09:35", "subject": "English", "teacher": "Mr. Holt", "room": "A03"},
		{"id": 3, "day": "Tuesday", "start_time": "08:00", "end_time": "08:45", "subject": "Physics", "teacher": "Dr. Rao", "room": "C01"},
	}
}

func healthFor(studentID string) []gin.H {
	if studentID != "7" {
		return []gin.H{}
	}
	return []gin.H{
		{"id": 1, "date": "2026-08-20", "category": "visit", "description": "Headache, rested 30 minutes", "recorded_by": "Nurse Alvarez"},
	}
}

func pickupsFor(actor *Account) []gin.H {
	if actor.AccountType != "teacher" && actor.AccountType != "parent" {
		return []gin.H{}
	}
	return []gin.H{
		{"id": 1, "student_id": "7", "student_name": "Minh Nguyen", "guardian_name": "Linh Nguyen", "requested_at": "2026-08-28T14:05:00Z", "status": "pending"},
	}
}

func messagesFor(actor *Account) []gin.H {
	return []gin.H{
		{"id": 1, "from": "Ms. Carter", "to": actor.DisplayName, "subject": "Field trip forms", "body": "Please return the signed form by Friday.", "sent_at": "2026-08-27T10:12:00Z", "read": false},
	}
}
