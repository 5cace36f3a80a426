package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/controllers"
)

// SetupRouter configures all application routes. The paths match the
// public wire contract exactly; there is no version prefix.
func SetupRouter(
	router *gin.Engine,
	subjectController *controllers.SubjectController,
	announcementController *controllers.AnnouncementController,
	materialController *controllers.MaterialController,
	assignmentController *controllers.AssignmentController,
	reminderController *controllers.ReminderController,
	feedController *controllers.FeedController,
) {
	// Subject routes, with child-resource collections nested under the
	// subject id
	subjects := router.Group("/subject")
	{
		subjects.GET("", subjectController.GetAllSubjects)
		subjects.POST("", subjectController.CreateSubject)
		subjects.GET("/:id", subjectController.GetSubjectByID)
		subjects.PUT("/:id", subjectController.UpdateSubject)
		subjects.DELETE("/:id", subjectController.DeleteSubject)

		subjects.GET("/:id/announcement", announcementController.GetAnnouncementsBySubject)
		subjects.POST("/:id/announcement", announcementController.CreateAnnouncement)

		subjects.GET("/:id/materials", materialController.GetMaterialsBySubject)
		subjects.POST("/:id/materials", materialController.CreateMaterial)

		subjects.GET("/:id/assignments", assignmentController.GetAssignmentsBySubject)
		subjects.POST("/:id/assignments", assignmentController.CreateAssignment)

		subjects.GET("/:id/reminders", reminderController.GetRemindersBySubject)
		subjects.POST("/:id/reminders", reminderController.CreateReminder)
	}

	// Announcement routes, with comments nested under the announcement id
	announcements := router.Group("/announcement")
	{
		announcements.GET("", announcementController.GetAllAnnouncements)
		announcements.GET("/:id", announcementController.GetAnnouncementByID)
		announcements.PUT("/:id", announcementController.UpdateAnnouncement)
		announcements.DELETE("/:id", announcementController.DeleteAnnouncement)

		announcements.GET("/:id/comments", announcementController.GetComments)
		announcements.POST("/:id/comments", announcementController.AddComment)
	}

	// Flat listings and id-addressed deletes for the remaining resources
	router.GET("/material", materialController.GetAllMaterials)
	router.DELETE("/material/:id", materialController.DeleteMaterial)

	router.GET("/assignment", assignmentController.GetAllAssignments)
	router.DELETE("/assignment/:id", assignmentController.DeleteAssignment)

	router.GET("/reminder", reminderController.GetAllReminders)
	router.DELETE("/reminder/:id", reminderController.DeleteReminder)

	// Feed routes
	feed := router.Group("/feed")
	{
		feed.GET("/latest", feedController.GetLatestFeed)
		feed.GET("/upcoming-deadlines", feedController.GetUpcomingDeadlines)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
