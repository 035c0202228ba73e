package gateway

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginBody struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	AccountType string `json:"account_type" binding:"required"`
}

// handleLogin mimics the legacy login convention: bad credentials come back
// as the bare sentinel 0 under HTTP 200, not a structured error.
func (g *Gateway) handleLogin(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.String(http.StatusOK, "0")
		return
	}

	account := g.accounts.authenticate(body.Username, body.Password, body.AccountType)
	if account == nil {
		c.String(http.StatusOK, "0")
		return
	}

	code, err := g.issueAuthCode(account)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"auth_code":    code,
		"user_id":      account.UserID,
		"username":     account.Username,
		"display_name": account.DisplayName,
	})
}

func (g *Gateway) handleAddStudent(c *gin.Context) {
	parent := g.actor(c, "authCode")
	if parent == nil || parent.AccountType != "parent" {
		c.JSON(http.StatusOK, gin.H{"message": "Invalid credentials"})
		return
	}

	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "missing student credentials"})
		return
	}

	student := g.accounts.authenticate(body.Username, body.Password, "student")
	if student == nil {
		c.String(http.StatusOK, "0")
		return
	}

	code, err := g.issueAuthCode(student)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"auth_code":    code,
		"user_id":      student.UserID,
		"username":     student.Username,
		"display_name": student.DisplayName,
	})
}

func (g *Gateway) handleHomeworkList(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"homework_assignments": homeworkFor(g.targetStudentID(c, actor)),
	})
}

func (g *Gateway) handleHomeworkSubmit(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	var body struct {
		HomeworkID int `json:"homework_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "missing homework_id"})
		return
	}

	key := fmt.Sprintf("%s:%d", actor.UserID, body.HomeworkID)
	if g.markSubmitted(key) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "already submitted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "submission received"})
}

// handleGrades replies without any success flag, the way the oldest grade
// deployment does: the payload alone signals success.
func (g *Gateway) handleGrades(c *gin.Context) {
	actor := g.actor(c, "auth_code")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"grades": gradesFor(g.targetStudentID(c, actor), c.Query("term"))},
	})
}

func (g *Gateway) handleAttendance(c *gin.Context) {
	actor := g.actor(c, "auth_code")
	if actor == nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid auth code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": attendanceFor(g.targetStudentID(c, actor), c.Query("from"), c.Query("to")),
	})
}

func (g *Gateway) handleTimetable(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{"timetable": timetableFor(g.targetStudentID(c, actor))})
}

func (g *Gateway) handleHealthRecords(c *gin.Context) {
	actor := g.actor(c, "auth_code")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"health_records": gin.H{
			"medical_visits": healthFor(g.targetStudentID(c, actor)),
		},
	})
}

func (g *Gateway) handleHealthCreate(c *gin.Context) {
	actor := g.actor(c, "auth_code")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}
	if actor.AccountType != "teacher" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "only staff may create health records"})
		return
	}

	var body struct {
		StudentID   string `json:"student_id" binding:"required"`
		Date        string `json:"date" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "incomplete health record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "record created"})
}

func (g *Gateway) handlePickupList(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requests": pickupsFor(actor)})
}

// handlePickupProcess is the one surviving plain-text endpoint: replies are
// "ok|<message>" or "error|<message>".
func (g *Gateway) handlePickupProcess(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "error|Invalid token")
		return
	}
	if actor.AccountType != "teacher" {
		c.String(http.StatusOK, "error|Only staff can process pickups")
		return
	}

	requestID := c.Query("request_id")
	if requestID == "" {
		c.String(http.StatusOK, "error|Missing request id")
		return
	}
	if g.markProcessed(requestID) {
		c.String(http.StatusOK, "error|Already processed")
		return
	}

	c.String(http.StatusOK, "ok|Pickup processed")
}

func (g *Gateway) handleMessages(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messagesFor(actor)})
}

func (g *Gateway) handleMessageSend(c *gin.Context) {
	actor := g.actor(c, "authCode")
	if actor == nil {
		c.String(http.StatusOK, "0")
		return
	}

	var body struct {
		To   string `json:"to" binding:"required"`
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "recipient and body are required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "message sent"})
}
