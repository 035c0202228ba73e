package client

// endpoint describes one backend route and its quirks. Parameter naming is
// inconsistent across the backend (authCode vs auth_code) and must match
// each endpoint exactly; the table keeps that knowledge in one place
// instead of scattering string literals through the fetch functions.
type endpoint struct {
	path      string
	authParam string
	// studentParam names the on-behalf-of-child id parameter where the
	// endpoint supports parent proxy access.
	studentParam string
	// textPair marks legacy endpoints replying with "status|message" text.
	textPair bool
}

var (
	epLogin             = endpoint{path: "/api/login", authParam: ""}
	epAddStudentAccount = endpoint{path: "/api/parent/add-student", authParam: "authCode"}
	epHomeworkList      = endpoint{path: "/api/homework/list", authParam: "authCode", studentParam: "student_id"}
	epHomeworkSubmit    = endpoint{path: "/api/homework/submit", authParam: "authCode"}
	epGradesList        = endpoint{path: "/api/grades", authParam: "auth_code", studentParam: "student_id"}
	epAttendanceList    = endpoint{path: "/api/attendance", authParam: "auth_code", studentParam: "student_id"}
	epTimetable         = endpoint{path: "/api/timetable", authParam: "authCode", studentParam: "student_id"}
	epHealthList        = endpoint{path: "/api/health-records", authParam: "auth_code", studentParam: "student_id"}
	epHealthCreate      = endpoint{path: "/api/health-records/create", authParam: "auth_code"}
	epPickupList        = endpoint{path: "/api/pickup/list", authParam: "authCode"}
	epPickupProcess     = endpoint{path: "/api/pickup/process", authParam: "authCode", textPair: true}
	epMessagesList      = endpoint{path: "/api/messages", authParam: "authCode"}
	epMessageSend       = endpoint{path: "/api/messages/send", authParam: "authCode"}
)
