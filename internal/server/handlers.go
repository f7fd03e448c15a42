package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necbot/gradebook-go/pkg/gradebook"
	"github.com/necbot/gradebook-go/pkg/gradebook/fetch"
)

func bookFrom(c *gin.Context) *gradebook.Gradebook {
	return c.MustGet("gradebook").(*gradebook.Gradebook)
}

// uploadWorkbook loads a multipart .xlsx upload into a new session.
func (s *Server) uploadWorkbook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	file, _, err := c.Request.FormFile("workbook")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing workbook file field"})
		return
	}
	defer file.Close()

	book, err := gradebook.LoadReader(file, gradebook.DefaultOptions())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "problem reading workbook, is it a valid .xlsx file?"})
		return
	}
	s.respondLoaded(c, book)
}

// fetchWorkbook downloads a workbook from a cloud-share link into a new
// session.
func (s *Server) fetchWorkbook(c *gin.Context) {
	var body struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	data, err := fetch.Download(c.Request.Context(), body.URL)
	if err != nil {
		var httpErr *fetch.HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": httpErr.Error() + `; if this is SharePoint/OneDrive, set link permissions to "anyone with the link"`,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "problem fetching workbook"})
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "workbook too large"})
		return
	}

	book, err := gradebook.LoadReader(bytes.NewReader(data), gradebook.DefaultOptions())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "problem reading workbook, is it a valid .xlsx file?"})
		return
	}
	s.respondLoaded(c, book)
}

func (s *Server) respondLoaded(c *gin.Context, book *gradebook.Gradebook) {
	report := book.LoadReport()
	log.Printf("workbook loaded: %d rows from %d sheet(s), %d dropped, credentials=%q",
		report.Rows, len(report.GradeSheets), report.Dropped, report.CredentialsSheet)

	c.JSON(http.StatusOK, gin.H{
		"session_id": s.createSession(book),
		"report":     report,
	})
}

// loadReport re-exposes the load report for an existing session.
func (s *Server) loadReport(c *gin.Context) {
	c.JSON(http.StatusOK, bookFrom(c).LoadReport())
}

// courseStats returns per-course cohort statistics (instructor surface).
func (s *Server) courseStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": bookFrom(c).CourseStats()})
}

type loginRequest struct {
	StudentID  string `json:"student_id" binding:"required"`
	AccessCode string `json:"access_code"`
	Secret     string `json:"secret"`
}

// login authenticates a student and returns their distinct course set. The
// error message is identical for every rejection reason; the specific
// reason is only logged server-side.
func (s *Server) login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}

	res, err := bookFrom(c).Authenticate(body.StudentID, body.AccessCode, body.Secret)
	if err != nil {
		s.rejectLogin(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type gradesRequest struct {
	loginRequest
	Course string `json:"course"`
}

// grades authenticates and queries in one call, mirroring the "log in and
// show my grades" flow of the UI.
func (s *Server) grades(c *gin.Context) {
	var body gradesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}

	book := bookFrom(c)
	if _, err := book.Authenticate(body.StudentID, body.AccessCode, body.Secret); err != nil {
		s.rejectLogin(c, err)
		return
	}

	result, err := book.Query(body.StudentID, body.Course)
	if err != nil {
		var ambiguous *gradebook.AmbiguousCourseError
		if errors.As(err, &ambiguous) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "course selection required",
				"courses": ambiguous.Courses,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) rejectLogin(c *gin.Context, err error) {
	var authErr *gradebook.AuthError
	if errors.As(err, &authErr) {
		log.Printf("login rejected for session %s: %s", c.GetString("session_id"), authErr.Reason)
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.GenericMessage()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
}
